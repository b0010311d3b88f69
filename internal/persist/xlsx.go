package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// defaultColWidth is the width excelize reports for a column with no override.
const defaultColWidth = 9.140625

// XLSX loads and saves workbooks in the Office Open XML format.
// It implements session.Saver.
type XLSX struct {
	// Policy bounds the column widths read from files.
	Policy workbook.WidthPolicy
}

// New returns an XLSX codec using policy for column widths.
func New(policy workbook.WidthPolicy) *XLSX {
	return &XLSX{Policy: policy}
}

// Load reads the workbook at path. A missing file yields a fresh workbook
// with one sheet named Sheet1. The result is not dirty.
func Load(path string) (*workbook.Workbook, error) {
	return New(workbook.DefaultWidthPolicy()).Load(path)
}

// Save writes wb to path with the default width policy.
func Save(wb *workbook.Workbook, path string) error {
	return New(workbook.DefaultWidthPolicy()).Save(wb, path)
}

// Load reads the workbook at path.
func (x *XLSX) Load(path string) (*workbook.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		wb := workbook.NewDefault()
		wb.SetWidthPolicy(x.Policy)
		wb.MarkClean()
		return wb, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewOperationError("load", path, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	defer f.Close()

	idx, err := indexCells(path)
	if err != nil {
		return nil, NewOperationError("load", path, fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	wb := workbook.New()
	wb.SetWidthPolicy(x.Policy)
	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, NewOperationError("load", path, fmt.Errorf("%w: no worksheets", ErrMalformed))
	}
	styles := make(map[int]styleInfo)
	for _, name := range names {
		sheet, err := wb.AddSheet(name)
		if err != nil {
			return nil, NewOperationError("load", path, fmt.Errorf("%w: %v", ErrMalformed, err))
		}
		r := &sheetReader{f: f, name: name, styles: styles}
		if err := r.read(sheet, idx[name]); err != nil {
			return nil, NewOperationError("load", path, fmt.Errorf("%w: sheet %q: %v", ErrMalformed, name, err))
		}
	}
	wb.MarkClean()
	return wb, nil
}

type styleInfo struct {
	tag        workbook.StyleTag
	dateLayout string
	// formatted is set for styles with an explicit number format; their
	// values are read as displayed.
	formatted bool
}

type sheetReader struct {
	f      *excelize.File
	name   string
	styles map[int]styleInfo
}

// read loads the cells listed in addrs and the custom column widths.
func (r *sheetReader) read(sheet *workbook.Sheet, addrs []workbook.Address) error {
	for _, a := range addrs {
		cell, err := r.cell(a)
		if err != nil {
			return err
		}
		if !cell.IsZero() {
			sheet.SetCell(a, cell)
		}
	}

	for col := 1; col <= workbook.MaxColumns; col++ {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		w, err := r.f.GetColWidth(r.name, colName)
		if err != nil {
			return err
		}
		if math.Abs(w-defaultColWidth) > 1e-6 {
			sheet.SetColumnWidth(col, int(math.Round(w)))
		}
	}
	return nil
}

func (r *sheetReader) cell(a workbook.Address) (workbook.Cell, error) {
	ref, err := excelize.CoordinatesToCellName(a.Col, a.Row)
	if err != nil {
		return workbook.Cell{}, err
	}
	info, err := r.style(ref)
	if err != nil {
		return workbook.Cell{}, err
	}
	formula, err := r.f.GetCellFormula(r.name, ref)
	if err != nil {
		return workbook.Cell{}, err
	}
	raw, err := r.f.GetCellValue(r.name, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return workbook.Cell{}, err
	}

	c := workbook.Cell{Formula: formula, Style: info.tag}
	switch {
	case raw == "":
	case info.dateLayout != "":
		c.Value = formatDate(raw, info.dateLayout)
	case info.formatted || raw == "0" || raw == "1":
		// Booleans are stored as 0 and 1 and shown as FALSE and TRUE.
		if c.Value, err = r.f.GetCellValue(r.name, ref); err != nil {
			return workbook.Cell{}, err
		}
	default:
		c.Value = raw
	}
	return c, nil
}

func (r *sheetReader) style(ref string) (styleInfo, error) {
	idx, err := r.f.GetCellStyle(r.name, ref)
	if err != nil || idx == 0 {
		return styleInfo{}, err
	}
	if info, ok := r.styles[idx]; ok {
		return info, nil
	}
	st, err := r.f.GetStyle(idx)
	if err != nil {
		return styleInfo{}, err
	}
	info := styleInfo{
		tag:        tagFromStyle(st),
		dateLayout: dateLayout(st),
		formatted:  st.NumFmt != 0 || st.CustomNumFmt != nil,
	}
	r.styles[idx] = info
	return info, nil
}

// formatDate renders an Excel serial date with layout. Values that are not
// serial numbers are returned unchanged.
func formatDate(raw, layout string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.Format(layout)
}
