package renderer

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/xlgrid/internal/renderer/backend"
	"github.com/dshills/xlgrid/internal/renderer/core"
	"github.com/dshills/xlgrid/internal/session"
)

// Screen rows used outside the grid: header, column letters and status.
const chromeRows = 3

// GutterWidth is the width of the row number column, separator included.
const GutterWidth = 6

// GridSize returns the grid rows and terminal columns available for cells
// on a terminal of the given size.
func GridSize(width, height int) (rows, cols int) {
	return max(height-chromeRows, 1), max(width-GutterWidth, 1)
}

// Renderer draws render models onto a backend.
type Renderer struct {
	mu      sync.Mutex
	backend backend.Backend
	theme   Theme
	frames  uint64
}

// New creates a renderer drawing to b.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// Backend returns the backend being drawn to.
func (r *Renderer) Backend() backend.Backend {
	return r.backend
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Render draws one full frame and shows it.
func (r *Renderer) Render(m *session.RenderModel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.Clear()
	r.backend.HideCursor()

	r.fillLine(0, width, r.theme.Header)
	r.drawText(0, 0, width, m.Header(), r.theme.Header)
	if height > 1 {
		r.drawColumnHeaders(m, width)
	}
	r.drawGrid(m, width, height)
	if height > 2 {
		r.drawBottomLine(m, width, height-1)
	}
	if m.Selector != nil {
		r.drawSelector(m.Selector, width, height)
	}

	r.backend.Show()
	r.frames++
}

func (r *Renderer) drawColumnHeaders(m *session.RenderModel, width int) {
	x := GutterWidth
	for _, col := range m.Columns {
		if x >= width {
			break
		}
		label := col.Letter
		pad := max((col.Width-runewidth.StringWidth(label))/2, 0)
		r.drawText(x+pad, 1, min(col.Width-pad, width-x-pad), label, r.theme.ColumnHeader)
		x += col.Width + 1
	}
}

func (r *Renderer) drawGrid(m *session.RenderModel, width, height int) {
	for i, row := range m.Rows {
		y := 2 + i
		if y >= height-1 {
			break
		}
		num := fmt.Sprintf("%*d ", GutterWidth-1, row.Index)
		r.drawText(0, y, GutterWidth, num, r.theme.RowNumber)

		x := GutterWidth
		for j, cell := range row.Cells {
			if x >= width || j >= len(m.Columns) {
				break
			}
			colWidth := min(m.Columns[j].Width, width-x)
			style := r.theme.CellStyle(cell.Cursor, cell.Selected, cell.Formula, cell.Style)
			r.fill(x, y, colWidth, style)
			r.drawText(x, y, colWidth, cell.Text, style)
			x += m.Columns[j].Width + 1
		}
	}
}

func (r *Renderer) drawBottomLine(m *session.RenderModel, width, y int) {
	if m.Edit == nil {
		r.fillLine(y, width, r.theme.Status)
		r.drawText(0, y, width, m.StatusLine(), r.theme.Status)
		return
	}

	prompt := m.Edit.Target.String() + "> "
	pw := runewidth.StringWidth(prompt)
	r.drawText(0, y, width, prompt, r.theme.Status)

	avail := width - pw - 1
	if avail <= 0 {
		return
	}
	text, caret := scrollToCaret(m.Edit.Text, m.Edit.Caret, avail)
	r.drawText(pw, y, avail+1, text, r.theme.Edit)
	r.backend.ShowCursor(pw+caret, y)
}

// scrollToCaret cuts text from the left until the caret column fits in
// width. It returns the visible text and the caret's column within it.
func scrollToCaret(text string, caret, width int) (string, int) {
	if caret <= width {
		return text, caret
	}
	skip := caret - width
	cut := 0
	for i, r := range text {
		if cut >= skip {
			return text[i:], caret - cut
		}
		cut += runewidth.RuneWidth(r)
	}
	return "", 0
}

func (r *Renderer) drawSelector(sel *session.SelectorView, width, height int) {
	inner := runewidth.StringWidth(" Sheets ")
	for _, name := range sel.Names {
		inner = max(inner, runewidth.StringWidth(name)+4)
	}
	boxW := min(inner+2, width)
	boxH := min(len(sel.Names)+2, height)
	left := max((width-boxW)/2, 0)
	top := max((height-boxH)/2, 0)

	r.backend.Fill(core.RectFromSize(top, left, boxH, boxW), core.NewStyledCell(' ', r.theme.Popup))
	for x := left; x < left+boxW; x++ {
		r.backend.SetCell(x, top, core.NewStyledCell('─', r.theme.Popup))
		r.backend.SetCell(x, top+boxH-1, core.NewStyledCell('─', r.theme.Popup))
	}
	for y := top; y < top+boxH; y++ {
		r.backend.SetCell(left, y, core.NewStyledCell('│', r.theme.Popup))
		r.backend.SetCell(left+boxW-1, y, core.NewStyledCell('│', r.theme.Popup))
	}
	r.backend.SetCell(left, top, core.NewStyledCell('┌', r.theme.Popup))
	r.backend.SetCell(left+boxW-1, top, core.NewStyledCell('┐', r.theme.Popup))
	r.backend.SetCell(left, top+boxH-1, core.NewStyledCell('└', r.theme.Popup))
	r.backend.SetCell(left+boxW-1, top+boxH-1, core.NewStyledCell('┘', r.theme.Popup))
	r.drawText(left+1, top, boxW-2, " Sheets ", r.theme.Popup)

	for i, name := range sel.Names {
		y := top + 1 + i
		if y >= top+boxH-1 {
			break
		}
		marker := "  "
		if i == sel.Active {
			marker = "* "
		}
		style := r.theme.Popup
		if i == sel.Highlight {
			style = r.theme.PopupFocus
			r.fill(left+1, y, boxW-2, style)
		}
		r.drawText(left+1, y, boxW-2, marker+name, style)
	}
}

// drawText writes s at (x, y), clipped to maxWidth columns. Wide runes
// that would straddle the limit are dropped.
func (r *Renderer) drawText(x, y, maxWidth int, s string, style core.Style) int {
	end := x + maxWidth
	for _, ch := range s {
		w := core.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > end {
			break
		}
		r.backend.SetCell(x, y, core.Cell{Rune: ch, Width: w, Style: style})
		if w == 2 {
			r.backend.SetCell(x+1, y, core.Cell{Style: style})
		}
		x += w
	}
	return x
}

func (r *Renderer) fill(x, y, width int, style core.Style) {
	r.backend.Fill(core.RectFromSize(y, x, 1, width), core.NewStyledCell(' ', style))
}

func (r *Renderer) fillLine(y, width int, style core.Style) {
	r.fill(0, y, width, style)
}
