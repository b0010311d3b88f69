package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// Save writes wb to path. The file is written next to the target and
// renamed over it, so a failed save leaves any existing file untouched.
// The in-memory workbook is never modified; clearing the dirty flag is the
// caller's job.
func (x *XLSX) Save(wb *workbook.Workbook, path string) error {
	if wb.SheetCount() == 0 {
		return NewOperationError("save", path, ErrNoSheets)
	}

	f, err := encode(wb)
	if err != nil {
		return NewOperationError("save", path, err)
	}
	defer f.Close()

	if err := writeAtomic(f, path); err != nil {
		return NewOperationError("save", path, err)
	}
	return nil
}

func encode(wb *workbook.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()
	enc := &encoder{f: f, styles: make(map[workbook.StyleTag]int)}

	names := wb.SheetNames()
	if err := f.SetSheetName(f.GetSheetName(0), names[0]); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range names[1:] {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}
	for i, name := range names {
		if err := enc.sheet(wb.Sheet(i), name); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

type encoder struct {
	f      *excelize.File
	styles map[workbook.StyleTag]int
}

func (e *encoder) sheet(s *workbook.Sheet, name string) error {
	for _, addr := range s.Addresses() {
		cell, _ := s.Cell(addr)
		ref, err := excelize.CoordinatesToCellName(addr.Col, addr.Row)
		if err != nil {
			return err
		}
		if err := e.value(name, ref, cell.Value); err != nil {
			return err
		}
		if cell.IsFormula() {
			if err := e.f.SetCellFormula(name, ref, cell.Formula); err != nil {
				return err
			}
		}
		if cell.Style != workbook.TagNone {
			id, err := e.style(cell.Style)
			if err != nil {
				return err
			}
			if err := e.f.SetCellStyle(name, ref, ref, id); err != nil {
				return err
			}
		}
	}

	for col, w := range s.CustomWidths() {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := e.f.SetColWidth(name, colName, colName, float64(w)); err != nil {
			return err
		}
	}

	// Style-only cells must stay inside the declared dimension.
	if maxRow, maxCol := s.UsedRange(); maxRow > 0 && maxCol > 0 {
		last, err := excelize.CoordinatesToCellName(maxCol, maxRow)
		if err != nil {
			return err
		}
		if err := e.f.SetSheetDimension(name, "A1:"+last); err != nil {
			return err
		}
	}
	return nil
}

// value stores text, writing canonical numbers as numeric cells.
func (e *encoder) value(sheet, ref, text string) error {
	if text == "" {
		return nil
	}
	if n, ok := numeric(text); ok {
		return e.f.SetCellValue(sheet, ref, n)
	}
	return e.f.SetCellStr(sheet, ref, text)
}

func (e *encoder) style(tag workbook.StyleTag) (int, error) {
	if id, ok := e.styles[tag]; ok {
		return id, nil
	}
	st := styleForTag(tag)
	if st == nil {
		return 0, fmt.Errorf("no style for tag %s", tag)
	}
	id, err := e.f.NewStyle(st)
	if err != nil {
		return 0, err
	}
	e.styles[tag] = id
	return id, nil
}

// numeric reports whether text is a number that survives being stored as
// one: "42" and "-1.5" do, "007" and "1e3" do not.
func numeric(text string) (float64, bool) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if strconv.FormatFloat(n, 'f', -1, 64) != text {
		return 0, false
	}
	return n, true
}

func writeAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".xlgrid-*.xlsx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, info.Mode().Perm())
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
