package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

func at(row, col int) workbook.Address { return workbook.NewAddress(row, col) }

func TestLoadMissingFile(t *testing.T) {
	wb, err := Load(filepath.Join(t.TempDir(), "new.xlsx"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if wb.SheetCount() != 1 || wb.Sheet(0).Name() != "Sheet1" {
		t.Errorf("sheets = %v, want [Sheet1]", wb.SheetNames())
	}
	if wb.Dirty() {
		t.Error("fresh workbook should not be dirty")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Load() error = %v, want ErrMalformed", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "load" || opErr.Target != path {
		t.Errorf("error = %#v, want load OperationError", err)
	}
}

func TestRoundTrip(t *testing.T) {
	wb := workbook.NewDefault()
	s := wb.Sheet(0)
	s.SetValue(at(1, 1), "Hi")
	s.SetStyle(at(1, 1), workbook.TagHighlightA)
	s.SetValue(at(2, 1), "42")
	s.SetValue(at(3, 1), "007")
	numbers := []string{"0.30000000000000004", "1234567890123456", "100000000000000000000", "-1.5", "0", "1", "3.14"}
	for i, v := range numbers {
		s.SetValue(at(10+i, 1), v)
	}
	s.SetStyle(at(5, 4), workbook.TagAccentC) // style only
	s.SetCell(at(4, 2), workbook.Cell{Formula: "A2*2"})
	s.SetColumnWidth(2, 16)

	data, err := wb.AddSheet("Data")
	if err != nil {
		t.Fatal(err)
	}
	data.SetValue(at(1, 1), "second")
	data.SetStyle(at(1, 1), workbook.TagAccentA)
	data.SetStyle(at(2, 1), workbook.TagAccentB)
	data.SetStyle(at(3, 1), workbook.TagHighlightB)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := Save(wb, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !wb.Dirty() {
		t.Error("Save must not touch the dirty flag")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if names := got.SheetNames(); len(names) != 2 || names[0] != "Sheet1" || names[1] != "Data" {
		t.Fatalf("SheetNames() = %v", names)
	}

	g := got.Sheet(0)
	checks := []struct {
		addr  workbook.Address
		value string
		style workbook.StyleTag
	}{
		{at(1, 1), "Hi", workbook.TagHighlightA},
		{at(2, 1), "42", workbook.TagNone},
		{at(3, 1), "007", workbook.TagNone},
		{at(5, 4), "", workbook.TagAccentC},
	}
	for _, c := range checks {
		if v := g.Value(c.addr); v != c.value {
			t.Errorf("%v value = %q, want %q", c.addr, v, c.value)
		}
		if st := g.Style(c.addr); st != c.style {
			t.Errorf("%v style = %v, want %v", c.addr, st, c.style)
		}
	}
	for i, want := range numbers {
		if v := g.Value(at(10+i, 1)); v != want {
			t.Errorf("A%d value = %q, want %q", 10+i, v, want)
		}
	}
	if cell, _ := g.Cell(at(4, 2)); cell.Formula != "A2*2" {
		t.Errorf("B4 formula = %q, want A2*2", cell.Formula)
	}
	if w := g.ColumnWidth(2); w != 16 {
		t.Errorf("column B width = %d, want 16", w)
	}
	if w := g.ColumnWidth(1); w != workbook.DefaultColumnWidth {
		t.Errorf("column A width = %d, want default", w)
	}

	d := got.Sheet(1)
	for addr, want := range map[workbook.Address]workbook.StyleTag{
		at(1, 1): workbook.TagAccentA,
		at(2, 1): workbook.TagAccentB,
		at(3, 1): workbook.TagHighlightB,
	} {
		if st := d.Style(addr); st != want {
			t.Errorf("Data!%v style = %v, want %v", addr, st, want)
		}
	}
	if got.Dirty() {
		t.Error("loaded workbook should not be dirty")
	}
}

func TestLoadPaletteColors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	yellow, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}}})
	if err != nil {
		t.Fatal(err)
	}
	red, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "FF0000"}})
	if err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Sheet1", "A1", "warn")
	f.SetCellStyle("Sheet1", "A1", "A1", yellow)
	f.SetCellValue("Sheet1", "B2", "err")
	f.SetCellStyle("Sheet1", "B2", "B2", red)

	path := filepath.Join(t.TempDir(), "palette.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}

	wb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st := wb.Sheet(0).Style(at(1, 1)); st != workbook.TagHighlightA {
		t.Errorf("A1 style = %v, want highlight-a", st)
	}
	if st := wb.Sheet(0).Style(at(2, 2)); st != workbook.TagAccentA {
		t.Errorf("B2 style = %v, want accent-a", st)
	}
}

func TestLoadDates(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Sheet1", "A1", 45292) // 2024-01-01
	f.SetCellStyle("Sheet1", "A1", "A1", dateStyle)

	path := filepath.Join(t.TempDir(), "dates.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	wb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v := wb.Sheet(0).Value(at(1, 1)); v != "2024-01-01" {
		t.Errorf("A1 = %q, want 2024-01-01", v)
	}
}

func TestSaveFailureLeavesTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing-dir", "book.xlsx")
	wb := workbook.NewDefault()
	wb.Sheet(0).SetValue(at(1, 1), "x")

	err := Save(wb, path)
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "save" {
		t.Fatalf("Save() error = %v, want save OperationError", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("failed save must not create the target")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestSaveRejectsEmptyWorkbook(t *testing.T) {
	err := Save(workbook.New(), filepath.Join(t.TempDir(), "x.xlsx"))
	if !errors.Is(err, ErrNoSheets) {
		t.Errorf("Save() error = %v, want ErrNoSheets", err)
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"42", true},
		{"-1.5", true},
		{"0.25", true},
		{"007", false},
		{"1e3", false},
		{"1,000", false},
		{"abc", false},
	}
	for _, tt := range tests {
		if _, ok := numeric(tt.in); ok != tt.ok {
			t.Errorf("numeric(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestCustomDateLayout(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"yyyy/mm/dd", layoutDate},
		{"d-mmm-yy", layoutDate},
		{"hh:mm:ss", layoutTime},
		{"[h]:mm", layoutTime},
		{"yyyy-mm-dd hh:mm", layoutDateTime},
		{"0.00", ""},
		{`[Red]0.00;"due"`, ""},
		{"General", ""},
	}
	for _, tt := range tests {
		if got := customDateLayout(tt.code); got != tt.want {
			t.Errorf("customDateLayout(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	for in, want := range map[string]string{
		"FFFFEF00": "FFEF00",
		"#ff00fe":  "FF00FE",
		"008001":   "008001",
	} {
		if got := normalizeColor(in); got != want {
			t.Errorf("normalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadFarCorner(t *testing.T) {
	wb := workbook.NewDefault()
	s := wb.Sheet(0)
	s.SetValue(at(1, 1), "first")
	s.SetValue(at(workbook.MaxRows, workbook.MaxColumns), "last")
	s.SetStyle(at(workbook.MaxRows, 1), workbook.TagAccentB)

	path := filepath.Join(t.TempDir(), "corner.xlsx")
	if err := Save(wb, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	idx, err := indexCells(path)
	if err != nil {
		t.Fatalf("indexCells() error = %v", err)
	}
	if n := len(idx["Sheet1"]); n != 3 {
		t.Errorf("indexed %d cells, want 3: %v", n, idx["Sheet1"])
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	g := got.Sheet(0)
	if v := g.Value(at(1, 1)); v != "first" {
		t.Errorf("A1 = %q, want first", v)
	}
	if v := g.Value(at(workbook.MaxRows, workbook.MaxColumns)); v != "last" {
		t.Errorf("IV65536 = %q, want last", v)
	}
	if st := g.Style(at(workbook.MaxRows, 1)); st != workbook.TagAccentB {
		t.Errorf("A65536 style = %v, want accent-b", st)
	}
	if r, c := g.UsedRange(); r != workbook.MaxRows || c != workbook.MaxColumns {
		t.Errorf("UsedRange() = (%d, %d)", r, c)
	}
}

func TestLoadBooleans(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", true)
	f.SetCellValue("Sheet1", "A2", 1)

	path := filepath.Join(t.TempDir(), "bools.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	wb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v := wb.Sheet(0).Value(at(1, 1)); v != "TRUE" {
		t.Errorf("A1 = %q, want TRUE", v)
	}
	if v := wb.Sheet(0).Value(at(2, 1)); v != "1" {
		t.Errorf("A2 = %q, want 1", v)
	}
}
