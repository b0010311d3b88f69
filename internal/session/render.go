package session

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// formulaPending is shown for a formula cell with no cached result.
const formulaPending = "=..."

// RenderModel is a read-only snapshot of everything the screen shows.
type RenderModel struct {
	Path       string
	Dirty      bool
	SheetName  string
	SheetIndex int
	SheetCount int

	Mode         ModeKind
	Cursor       workbook.Address
	Selection    workbook.Rect
	HasSelection bool

	// Top and Left are the first visible row and column.
	Top     int
	Left    int
	Columns []ColumnView
	Rows    []RowView

	Edit     *EditView
	Selector *SelectorView

	// Status is the transient message; empty when there is none.
	Status string
}

// ColumnView is one visible column header.
type ColumnView struct {
	Index  int
	Letter string
	Width  int
}

// RowView is one visible grid row.
type RowView struct {
	Index int
	Cells []CellView
}

// CellView is one visible cell, already truncated to its column width.
type CellView struct {
	Text     string
	Style    workbook.StyleTag
	Formula  bool
	Selected bool
	Cursor   bool
}

// EditView describes the edit line while Editing.
type EditView struct {
	Target workbook.Address
	Text   string
	// Caret is the display column of the caret within Text.
	Caret int
}

// SelectorView describes the sheet chooser while in SheetSelect.
type SelectorView struct {
	Names     []string
	Highlight int
	Active    int
}

// StatusLine returns the status message, or the position and key hints.
func (m *RenderModel) StatusLine() string {
	if m.Status != "" {
		return m.Status
	}
	pos := m.Cursor.String()
	if m.HasSelection {
		pos += " [" + m.Selection.String() + "]"
	}
	return pos + " | ^W:Quit ^S:Save | WASD:Move | C/V:Copy/Paste | F2:Edit | F4:Sheets"
}

// Header returns the title line text.
func (m *RenderModel) Header() string {
	dirty := ""
	if m.Dirty {
		dirty = " [+]"
	}
	return fmt.Sprintf("File: %s%s | Sheet: %s (%d/%d)", m.Path, dirty, m.SheetName, m.SheetIndex+1, m.SheetCount)
}

// Model builds the render model for the current state.
func (s *Session) Model() *RenderModel {
	sheet := s.Sheet()
	view := s.View()

	m := &RenderModel{
		Path:       s.path,
		Dirty:      s.book.Dirty(),
		SheetName:  sheet.Name(),
		SheetIndex: s.active,
		SheetCount: s.book.SheetCount(),
		Mode:       s.mode.Kind(),
		Cursor:     view.Focus(),
		Top:        view.Top,
		Left:       view.Left,
		Status:     s.status,
	}
	m.Selection, m.HasSelection = view.Selection()
	target := view.Target()

	used := 0
	for col := view.Left; col <= workbook.MaxColumns; col++ {
		w := sheet.ColumnWidth(col)
		if len(m.Columns) > 0 && used+w+1 > s.viewWidth {
			break
		}
		used += w + 1
		m.Columns = append(m.Columns, ColumnView{Index: col, Letter: workbook.ColumnName(col), Width: w})
	}

	for row := view.Top; row < view.Top+s.viewRows && row <= workbook.MaxRows; row++ {
		rv := RowView{Index: row, Cells: make([]CellView, len(m.Columns))}
		for i, col := range m.Columns {
			a := workbook.Address{Row: row, Col: col.Index}
			cell, _ := sheet.Cell(a)
			rv.Cells[i] = CellView{
				Text:     DisplayText(cell, col.Width),
				Style:    cell.Style,
				Formula:  cell.IsFormula(),
				Selected: m.HasSelection && target.Contains(a),
				Cursor:   a == m.Cursor,
			}
		}
		m.Rows = append(m.Rows, rv)
	}

	switch mode := s.mode.(type) {
	case Editing:
		m.Edit = &EditView{
			Target: mode.Buffer.Target(),
			Text:   mode.Buffer.Text(),
			Caret:  mode.Buffer.CaretColumn(),
		}
	case SheetSelect:
		m.Selector = &SelectorView{
			Names:     s.book.SheetNames(),
			Highlight: mode.Index,
			Active:    s.active,
		}
	}
	return m
}

// DisplayText returns the text shown for cell in a column of width cells.
// Text wider than the column is cut and ends in '~'.
func DisplayText(cell workbook.Cell, width int) string {
	text := cell.Value
	if cell.IsFormula() && text == "" {
		text = formulaPending
	}
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) > width {
		return runewidth.Truncate(text, width, "~")
	}
	return text
}
