package workbook

import "testing"

func TestColumnWidthDefault(t *testing.T) {
	s := NewDefault().Sheet(0)
	if got := s.ColumnWidth(1); got != DefaultColumnWidth {
		t.Errorf("ColumnWidth() = %d, want %d", got, DefaultColumnWidth)
	}
}

func TestExpandColumnsStopsAtMax(t *testing.T) {
	wb := NewDefault()
	s := wb.Sheet(0)

	var last WidthChange
	for i := 0; i < 100; i++ {
		last = ExpandColumns(s, 2, 2)
		if w := s.ColumnWidth(2); w < MinColumnWidth || w > MaxColumnWidth {
			t.Fatalf("width %d out of bounds after %d expands", w, i+1)
		}
	}
	if s.ColumnWidth(2) != MaxColumnWidth {
		t.Errorf("ColumnWidth() = %d, want %d", s.ColumnWidth(2), MaxColumnWidth)
	}
	if last.Changed {
		t.Error("expand past the maximum should be a no-op")
	}
	if !last.AtBound || last.Bound != MaxColumnWidth {
		t.Errorf("last change = %+v, want AtBound at %d", last, MaxColumnWidth)
	}
}

func TestReduceColumnsStopsAtMin(t *testing.T) {
	s := NewDefault().Sheet(0)

	for i := 0; i < 100; i++ {
		ReduceColumns(s, 1, 1)
		if w := s.ColumnWidth(1); w < MinColumnWidth || w > MaxColumnWidth {
			t.Fatalf("width %d out of bounds after %d reduces", w, i+1)
		}
	}
	if s.ColumnWidth(1) != MinColumnWidth {
		t.Errorf("ColumnWidth() = %d, want %d", s.ColumnWidth(1), MinColumnWidth)
	}
}

func TestExpandColumnsRange(t *testing.T) {
	wb := NewDefault()
	s := wb.Sheet(0)

	res := ExpandColumns(s, 4, 2)
	if !res.Changed {
		t.Fatal("ExpandColumns() reported no change")
	}
	for col := 2; col <= 4; col++ {
		if got := s.ColumnWidth(col); got != DefaultColumnWidth+ColumnWidthStep {
			t.Errorf("ColumnWidth(%d) = %d", col, got)
		}
	}
	if got := s.ColumnWidth(5); got != DefaultColumnWidth {
		t.Errorf("ColumnWidth(5) = %d, want default", got)
	}
	if !wb.Dirty() {
		t.Error("width change should mark workbook dirty")
	}
}

func TestSetColumnWidthDefaultForgetsOverride(t *testing.T) {
	s := NewDefault().Sheet(0)
	s.SetColumnWidth(3, 20)
	s.SetColumnWidth(3, DefaultColumnWidth)

	if len(s.CustomWidths()) != 0 {
		t.Errorf("CustomWidths() = %v, want empty", s.CustomWidths())
	}
}

func TestWidthPolicyNormalized(t *testing.T) {
	wb := NewDefault()
	wb.SetWidthPolicy(WidthPolicy{Default: 100, Step: 0, Min: 5, Max: 20})

	p := wb.WidthPolicy()
	if p.Default != 20 || p.Step != 1 {
		t.Errorf("normalized policy = %+v", p)
	}
	if got := wb.Sheet(0).ColumnWidth(1); got != 20 {
		t.Errorf("ColumnWidth() = %d, want 20", got)
	}
}

func TestApplyStyle(t *testing.T) {
	wb := NewDefault()
	s := wb.Sheet(0)
	s.SetValue(Address{Row: 1, Col: 1}, "keep")

	r := Rect{Top: 1, Left: 1, Bottom: 2, Right: 3}
	if n := ApplyStyle(s, r, TagAccentB); n != 6 {
		t.Errorf("ApplyStyle() = %d, want 6", n)
	}
	r.Each(func(a Address) {
		if s.Style(a) != TagAccentB {
			t.Errorf("Style(%s) = %v, want accent-b", a, s.Style(a))
		}
	})
	if s.Value(Address{Row: 1, Col: 1}) != "keep" {
		t.Error("styling must not change values")
	}

	ApplyStyle(s, r, TagNone)
	if s.Len() != 1 {
		t.Errorf("Len() after reset = %d, want 1 (the valued cell)", s.Len())
	}

	// Reset is idempotent and legal on empty cells.
	wb.MarkClean()
	ApplyStyle(s, Rect{Top: 10, Left: 10, Bottom: 12, Right: 12}, TagNone)
	if wb.Dirty() {
		t.Error("resetting empty cells should not dirty the workbook")
	}
}
