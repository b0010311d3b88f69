package workbook

import (
	"errors"
	"testing"
)

func TestNewDefault(t *testing.T) {
	wb := NewDefault()

	if wb.SheetCount() != 1 {
		t.Fatalf("SheetCount() = %d, want 1", wb.SheetCount())
	}
	if wb.Sheet(0).Name() != DefaultSheetName {
		t.Errorf("Name() = %q, want %q", wb.Sheet(0).Name(), DefaultSheetName)
	}
	if wb.Dirty() {
		t.Error("fresh workbook should not be dirty")
	}
}

func TestSetValueCreatesAndRemoves(t *testing.T) {
	wb := NewDefault()
	s := wb.Sheet(0)
	a := Address{Row: 3, Col: 2}

	if !s.SetValue(a, "hello") {
		t.Fatal("SetValue() = false")
	}
	if got := s.Value(a); got != "hello" {
		t.Errorf("Value() = %q, want hello", got)
	}
	if !wb.Dirty() {
		t.Error("SetValue should mark workbook dirty")
	}

	s.SetValue(a, "")
	if _, ok := s.Cell(a); ok {
		t.Error("clearing an unstyled cell should remove it")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSetValueRejectsOutOfRange(t *testing.T) {
	wb := NewDefault()
	s := wb.Sheet(0)

	if s.SetValue(Address{Row: 0, Col: 1}, "x") {
		t.Error("SetValue(row 0) = true")
	}
	if s.SetValue(Address{Row: 1, Col: MaxColumns + 1}, "x") {
		t.Error("SetValue(col 257) = true")
	}
	if s.Len() != 0 || wb.Dirty() {
		t.Error("rejected writes must not store cells or dirty the workbook")
	}
}

func TestSetValueSameTextIsNotAMutation(t *testing.T) {
	wb := NewDefault()
	s := wb.Sheet(0)
	s.SetValue(Address{Row: 1, Col: 1}, "x")
	wb.MarkClean()

	s.SetValue(Address{Row: 1, Col: 1}, "x")
	if wb.Dirty() {
		t.Error("rewriting identical text should not dirty the workbook")
	}
}

func TestStyleSurvivesClearedValue(t *testing.T) {
	s := NewDefault().Sheet(0)
	a := Address{Row: 1, Col: 1}

	s.SetValue(a, "Hi")
	s.SetStyle(a, TagHighlightA)
	s.SetValue(a, "")

	c, ok := s.Cell(a)
	if !ok {
		t.Fatal("styled cell should remain after value is cleared")
	}
	if c.Style != TagHighlightA || c.Value != "" {
		t.Errorf("cell = %+v, want empty value tagged highlight-a", c)
	}

	s.SetStyle(a, TagNone)
	if _, ok := s.Cell(a); ok {
		t.Error("cell with no value and no style should be removed")
	}
}

func TestUsedRange(t *testing.T) {
	s := NewDefault().Sheet(0)

	if r, c := s.UsedRange(); r != 0 || c != 0 {
		t.Errorf("empty UsedRange() = (%d, %d), want (0, 0)", r, c)
	}

	s.SetValue(Address{Row: 2, Col: 5}, "a")
	s.SetValue(Address{Row: 9, Col: 1}, "b")
	if r, c := s.UsedRange(); r != 9 || c != 5 {
		t.Errorf("UsedRange() = (%d, %d), want (9, 5)", r, c)
	}

	// Deleting a boundary cell shrinks to the true maximum.
	s.SetValue(Address{Row: 9, Col: 1}, "")
	if r, c := s.UsedRange(); r != 2 || c != 5 {
		t.Errorf("UsedRange() after delete = (%d, %d), want (2, 5)", r, c)
	}

	// Styled empty cells count.
	s.SetStyle(Address{Row: 4, Col: 7}, TagAccentA)
	if r, c := s.UsedRange(); r != 4 || c != 7 {
		t.Errorf("UsedRange() with styled cell = (%d, %d), want (4, 7)", r, c)
	}
}

func TestAddresses(t *testing.T) {
	s := NewDefault().Sheet(0)
	s.SetValue(Address{Row: 2, Col: 1}, "c")
	s.SetValue(Address{Row: 1, Col: 2}, "b")
	s.SetValue(Address{Row: 1, Col: 1}, "a")

	got := s.Addresses()
	want := []Address{{1, 1}, {1, 2}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("Addresses() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Addresses()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAddRemoveRenameSheet(t *testing.T) {
	wb := NewDefault()

	if _, err := wb.AddSheet("Data"); err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}
	if _, err := wb.AddSheet("data"); !errors.Is(err, ErrDuplicateSheet) {
		t.Errorf("AddSheet(duplicate) error = %v, want ErrDuplicateSheet", err)
	}
	if _, err := wb.AddSheet("a/b"); !errors.Is(err, ErrInvalidSheetName) {
		t.Errorf("AddSheet(a/b) error = %v, want ErrInvalidSheetName", err)
	}

	if err := wb.RenameSheet(1, "Summary"); err != nil {
		t.Fatalf("RenameSheet() error = %v", err)
	}
	if err := wb.RenameSheet(1, DefaultSheetName); !errors.Is(err, ErrDuplicateSheet) {
		t.Errorf("RenameSheet(duplicate) error = %v", err)
	}
	if err := wb.RenameSheet(5, "x"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("RenameSheet(5) error = %v, want ErrSheetNotFound", err)
	}

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != DefaultSheetName || names[1] != "Summary" {
		t.Errorf("SheetNames() = %v", names)
	}

	if err := wb.RemoveSheet(0); err != nil {
		t.Fatalf("RemoveSheet() error = %v", err)
	}
	if err := wb.RemoveSheet(0); !errors.Is(err, ErrLastSheet) {
		t.Errorf("RemoveSheet(last) error = %v, want ErrLastSheet", err)
	}
	if wb.Sheet(0).Name() != "Summary" {
		t.Errorf("remaining sheet = %q, want Summary", wb.Sheet(0).Name())
	}
}

func TestValidateSheetName(t *testing.T) {
	valid := []string{"Sheet1", "Q3 Results", "データ"}
	for _, name := range valid {
		if err := ValidateSheetName(name); err != nil {
			t.Errorf("ValidateSheetName(%q) error = %v", name, err)
		}
	}

	invalid := []string{"", "  ", "a:b", "x[1]", "'quoted'", "abcdefghijklmnopqrstuvwxyz0123456"}
	for _, name := range invalid {
		if err := ValidateSheetName(name); err == nil {
			t.Errorf("ValidateSheetName(%q) should fail", name)
		}
	}
}

func TestParseStyleTag(t *testing.T) {
	for tag := TagNone; tag.Valid(); tag++ {
		got, err := ParseStyleTag(tag.String())
		if err != nil {
			t.Fatalf("ParseStyleTag(%q) error = %v", tag.String(), err)
		}
		if got != tag {
			t.Errorf("ParseStyleTag(%q) = %v, want %v", tag.String(), got, tag)
		}
	}
	if _, err := ParseStyleTag("purple"); err == nil {
		t.Error("ParseStyleTag(purple) should fail")
	}
}
