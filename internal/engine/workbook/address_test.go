package workbook

import "testing"

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{256, "IV"},
		{0, ""},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.col); got != tt.want {
			t.Errorf("ColumnName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestAddressClamp(t *testing.T) {
	tests := []struct {
		in   Address
		want Address
	}{
		{Address{Row: 0, Col: 0}, Address{Row: 1, Col: 1}},
		{Address{Row: -5, Col: 300}, Address{Row: 1, Col: 256}},
		{Address{Row: 70000, Col: 3}, Address{Row: 65536, Col: 3}},
		{Address{Row: 10, Col: 10}, Address{Row: 10, Col: 10}},
	}

	for _, tt := range tests {
		got := tt.in.Clamp()
		if got != tt.want {
			t.Errorf("%+v.Clamp() = %+v, want %+v", tt.in, got, tt.want)
		}
		if !got.Valid() {
			t.Errorf("%+v.Clamp() is not valid", tt.in)
		}
	}
}

func TestAddressOffsetClampsAtEdges(t *testing.T) {
	a := Address{Row: 1, Col: 1}
	if got := a.Offset(-1, -1); got != a {
		t.Errorf("Offset past top-left = %v, want %v", got, a)
	}
	corner := Address{Row: MaxRows, Col: MaxColumns}
	if got := corner.Offset(1, 1); got != corner {
		t.Errorf("Offset past bottom-right = %v, want %v", got, corner)
	}
}

func TestRectFrom(t *testing.T) {
	r := RectFrom(Address{Row: 5, Col: 2}, Address{Row: 3, Col: 4})
	want := Rect{Top: 3, Left: 2, Bottom: 5, Right: 4}
	if r != want {
		t.Fatalf("RectFrom() = %+v, want %+v", r, want)
	}
	if r.Rows() != 3 || r.Cols() != 3 || r.Cells() != 9 {
		t.Errorf("shape = %dx%d (%d cells), want 3x3 (9)", r.Rows(), r.Cols(), r.Cells())
	}
	if !r.Contains(Address{Row: 4, Col: 3}) {
		t.Error("Contains(C4) = false")
	}
	if r.Contains(Address{Row: 6, Col: 3}) {
		t.Error("Contains(C6) = true")
	}
	if r.String() != "B3:D5" {
		t.Errorf("String() = %q, want B3:D5", r.String())
	}
}

func TestRectClip(t *testing.T) {
	r := Rect{Top: 65535, Left: 255, Bottom: 65540, Right: 260}
	c, ok := r.Clip()
	if !ok {
		t.Fatal("Clip() reported empty")
	}
	if c.Rows() != 2 || c.Cols() != 2 {
		t.Errorf("clipped shape = %dx%d, want 2x2", c.Rows(), c.Cols())
	}

	if _, ok := (Rect{Top: 70000, Left: 1, Bottom: 70001, Right: 1}).Clip(); ok {
		t.Error("Clip() of fully out-of-range rect should be empty")
	}
}

func TestRectEachOrder(t *testing.T) {
	var got []string
	Rect{Top: 1, Left: 1, Bottom: 2, Right: 2}.Each(func(a Address) {
		got = append(got, a.String())
	})
	want := []string{"A1", "B1", "A2", "B2"}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
