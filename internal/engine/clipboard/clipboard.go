// Package clipboard holds the in-process copy buffer for cell rectangles.
//
// A copy takes a detached snapshot of values and style tags; later edits of
// the source cells never reach it, and pasting never mutates it. Formulas
// are not carried: pasted cells hold the displayed value as plain text.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// Entry is one copied cell.
type Entry struct {
	Value string
	Style workbook.StyleTag
}

// Snapshot is a rectangular block of copied cells in row-major order.
type Snapshot struct {
	Rows  int
	Cols  int
	Cells [][]Entry
}

// Clipboard stores at most one snapshot.
type Clipboard struct {
	snap *Snapshot
}

// New returns an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Empty reports whether nothing has been copied yet.
func (c *Clipboard) Empty() bool {
	return c.snap == nil
}

// Shape returns the copied block's rows and columns (0, 0 when empty).
func (c *Clipboard) Shape() (rows, cols int) {
	if c.snap == nil {
		return 0, 0
	}
	return c.snap.Rows, c.snap.Cols
}

// Copy replaces the clipboard with the cells of r on s and returns the
// number of cells copied. The rectangle is clipped to the sheet bounds.
// On error the clipboard keeps its previous contents.
func (c *Clipboard) Copy(s *workbook.Sheet, r workbook.Rect) (int, error) {
	r, ok := r.Clip()
	if !ok {
		return 0, nil
	}
	src := make([][]workbook.Cell, r.Rows())
	for i := range src {
		row := make([]workbook.Cell, r.Cols())
		for j := range row {
			row[j], _ = s.Cell(workbook.Address{Row: r.Top + i, Col: r.Left + j})
		}
		src[i] = row
	}
	// Fields are matched by name, so formulas stay behind.
	var cells [][]Entry
	if err := deepcopy.Copy(&cells, &src); err != nil {
		return 0, fmt.Errorf("copy %s: %w", r, err)
	}
	c.snap = &Snapshot{Rows: r.Rows(), Cols: r.Cols(), Cells: cells}
	return r.Cells(), nil
}

// Paste writes the snapshot onto s with its top-left corner at at,
// overwriting values and styles. Cells past the sheet bounds are dropped.
// It returns the rectangle written and false when the clipboard is empty.
func (c *Clipboard) Paste(s *workbook.Sheet, at workbook.Address) (workbook.Rect, bool) {
	if c.snap == nil || !at.Valid() {
		return workbook.Rect{}, false
	}
	written := workbook.Rect{
		Top:    at.Row,
		Left:   at.Col,
		Bottom: at.Row + c.snap.Rows - 1,
		Right:  at.Col + c.snap.Cols - 1,
	}
	written, _ = written.Clip()
	written.Each(func(a workbook.Address) {
		e := c.snap.Cells[a.Row-at.Row][a.Col-at.Col]
		s.SetCell(a, workbook.Cell{Value: e.Value, Style: e.Style})
	})
	return written, true
}

// Text renders the snapshot as tab-separated rows for the system clipboard.
func (c *Clipboard) Text() string {
	if c.snap == nil {
		return ""
	}
	var sb strings.Builder
	for i, row := range c.snap.Cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, e := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(sanitize(e.Value))
		}
	}
	return sb.String()
}

func sanitize(v string) string {
	return strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ").Replace(v)
}
