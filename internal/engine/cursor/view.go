package cursor

import "github.com/dshills/xlgrid/internal/engine/workbook"

// Direction is a single-cell movement.
type Direction uint8

// Movement directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// JumpTarget is a named cursor destination.
type JumpTarget uint8

// Jump targets.
const (
	RowStart       JumpTarget = iota // column A of the focus row
	ColumnStart                      // row 1 of the focus column
	LastUsedColumn                   // used-range column on the focus row
	LastUsedCell                     // used-range corner
	DocumentStart                    // A1
)

// View is the per-sheet cursor state: selection plus scroll origin.
// The zero value is not valid; use NewView.
type View struct {
	sel Selection

	// Top and Left are the first visible row and column.
	Top  int
	Left int
}

// NewView returns a view with the cursor at A1 and no scrolling.
func NewView() *View {
	return &View{sel: NewCursorSelection(Address{Row: 1, Col: 1}), Top: 1, Left: 1}
}

// Focus returns the focus cell.
func (v *View) Focus() Address {
	return v.sel.Head
}

// Anchor returns the selection anchor. It equals Focus when nothing is selected.
func (v *View) Anchor() Address {
	return v.sel.Anchor
}

// SelectionState returns the raw anchor/head pair.
func (v *View) SelectionState() Selection {
	return v.sel
}

// Move moves the focus one cell in dir, clamped to the sheet bounds.
// Without extend any selection collapses. With extend the anchor stays put.
func (v *View) Move(dir Direction, extend bool) {
	dr, dc := dir.delta()
	next := v.sel.Head.Offset(dr, dc)
	if extend {
		v.sel = v.sel.Extend(next)
		return
	}
	v.sel = v.sel.MoveTo(next)
}

// MoveTo places a bare cursor at a (clamped).
func (v *View) MoveTo(a Address) {
	v.sel = v.sel.MoveTo(a)
}

// Jump moves the focus to target and collapses the selection.
// usedRow and usedCol are the sheet's used-range bounds (0 when empty).
func (v *View) Jump(target JumpTarget, usedRow, usedCol int) {
	f := v.sel.Head
	switch target {
	case RowStart:
		f.Col = 1
	case ColumnStart:
		f.Row = 1
	case LastUsedColumn:
		f.Col = max(usedCol, 1)
	case LastUsedCell:
		f = Address{Row: max(usedRow, 1), Col: max(usedCol, 1)}
	case DocumentStart:
		f = Address{Row: 1, Col: 1}
		v.Top, v.Left = 1, 1
	}
	v.sel = v.sel.MoveTo(f)
}

// ClearSelection collapses the selection onto the focus cell.
func (v *View) ClearSelection() {
	v.sel = v.sel.Collapse()
}

// Selection returns the selected rectangle. A degenerate selection reports false.
func (v *View) Selection() (Rect, bool) {
	if v.sel.IsEmpty() {
		return Rect{}, false
	}
	return v.sel.Rect(), true
}

// Target returns the selection rectangle, or the focus cell when nothing is selected.
func (v *View) Target() Rect {
	return v.sel.Rect()
}

// Follow scrolls so the focus lies inside a window of rows visible rows.
// fits reports whether columns left..col fit the available width.
func (v *View) Follow(rows int, fits func(left, col int) bool) {
	rows = max(rows, 1)
	f := v.sel.Head

	v.Top = max(v.Top, 1)
	if f.Row < v.Top {
		v.Top = f.Row
	} else if f.Row >= v.Top+rows {
		v.Top = f.Row - rows + 1
	}

	v.Left = max(v.Left, 1)
	if f.Col < v.Left {
		v.Left = f.Col
		return
	}
	for v.Left < f.Col && fits != nil && !fits(v.Left, f.Col) {
		v.Left++
	}
}

// Restore sets focus and scroll from saved state, clamped to the sheet bounds.
func (v *View) Restore(focus Address, top, left int) {
	v.sel = NewCursorSelection(focus)
	v.Top = min(max(top, 1), workbook.MaxRows)
	v.Left = min(max(left, 1), workbook.MaxColumns)
}
