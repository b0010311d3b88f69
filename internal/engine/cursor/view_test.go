package cursor

import (
	"testing"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

func TestNewView(t *testing.T) {
	v := NewView()
	if v.Focus() != (Address{Row: 1, Col: 1}) {
		t.Errorf("Focus() = %v, want A1", v.Focus())
	}
	if _, ok := v.Selection(); ok {
		t.Error("new view should have no selection")
	}
}

func TestMoveClampsAtEdges(t *testing.T) {
	v := NewView()

	v.Move(Up, false)
	v.Move(Left, false)
	if v.Focus() != (Address{Row: 1, Col: 1}) {
		t.Errorf("Focus() after moving past origin = %v", v.Focus())
	}

	v.MoveTo(Address{Row: workbook.MaxRows, Col: workbook.MaxColumns})
	for i := 0; i < 3; i++ {
		v.Move(Down, false)
		v.Move(Right, false)
	}
	want := Address{Row: workbook.MaxRows, Col: workbook.MaxColumns}
	if v.Focus() != want {
		t.Errorf("Focus() after moving past corner = %v, want %v", v.Focus(), want)
	}
}

func TestMoveCollapsesSelection(t *testing.T) {
	v := NewView()
	v.Move(Right, true)
	if _, ok := v.Selection(); !ok {
		t.Fatal("extend should create a selection")
	}

	v.Move(Down, false)
	if _, ok := v.Selection(); ok {
		t.Error("plain move should collapse the selection")
	}
	if v.Focus() != (Address{Row: 2, Col: 2}) {
		t.Errorf("Focus() = %v, want B2", v.Focus())
	}
}

func TestExtendKeepsAnchor(t *testing.T) {
	v := NewView()
	v.MoveTo(Address{Row: 3, Col: 3})

	v.Move(Down, true)
	v.Move(Down, true)
	v.Move(Right, true)

	if v.Anchor() != (Address{Row: 3, Col: 3}) {
		t.Errorf("Anchor() = %v, want C3", v.Anchor())
	}
	r, ok := v.Selection()
	if !ok {
		t.Fatal("Selection() reported none")
	}
	if r.String() != "C3:D5" {
		t.Errorf("Selection() = %s, want C3:D5", r)
	}
}

func TestExtendBackToAnchorCollapses(t *testing.T) {
	v := NewView()
	v.MoveTo(Address{Row: 5, Col: 5})

	v.Move(Right, true)
	v.Move(Left, true)

	if _, ok := v.Selection(); ok {
		t.Error("selection back at the anchor should be degenerate")
	}
	if v.Target() != workbook.CellRect(Address{Row: 5, Col: 5}) {
		t.Errorf("Target() = %v, want E5", v.Target())
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name   string
		target JumpTarget
		usedR  int
		usedC  int
		want   Address
	}{
		{"row start", RowStart, 10, 10, Address{Row: 7, Col: 1}},
		{"column start", ColumnStart, 10, 10, Address{Row: 1, Col: 4}},
		{"last used column", LastUsedColumn, 10, 12, Address{Row: 7, Col: 12}},
		{"last used cell", LastUsedCell, 20, 9, Address{Row: 20, Col: 9}},
		{"last used cell empty sheet", LastUsedCell, 0, 0, Address{Row: 1, Col: 1}},
		{"document start", DocumentStart, 10, 10, Address{Row: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			v.MoveTo(Address{Row: 7, Col: 4})
			v.Move(Right, true)

			v.Jump(tt.target, tt.usedR, tt.usedC)
			if v.Focus() != tt.want {
				t.Errorf("Focus() = %v, want %v", v.Focus(), tt.want)
			}
			if _, ok := v.Selection(); ok {
				t.Error("jump should collapse the selection")
			}
		})
	}
}

func TestClearSelection(t *testing.T) {
	v := NewView()
	v.Move(Down, true)
	v.ClearSelection()

	if _, ok := v.Selection(); ok {
		t.Error("ClearSelection() left a selection")
	}
	if v.Focus() != (Address{Row: 2, Col: 1}) {
		t.Errorf("Focus() = %v, want A2", v.Focus())
	}
}

func TestFollowVertical(t *testing.T) {
	v := NewView()
	v.MoveTo(Address{Row: 30, Col: 1})
	v.Follow(10, nil)
	if v.Top != 21 {
		t.Errorf("Top = %d, want 21", v.Top)
	}

	v.MoveTo(Address{Row: 5, Col: 1})
	v.Follow(10, nil)
	if v.Top != 5 {
		t.Errorf("Top = %d, want 5", v.Top)
	}
}

func TestFollowHorizontal(t *testing.T) {
	// Three columns fit at a time.
	fits := func(left, col int) bool { return col-left < 3 }

	v := NewView()
	v.MoveTo(Address{Row: 1, Col: 8})
	v.Follow(10, fits)
	if v.Left != 6 {
		t.Errorf("Left = %d, want 6", v.Left)
	}

	v.MoveTo(Address{Row: 1, Col: 2})
	v.Follow(10, fits)
	if v.Left != 2 {
		t.Errorf("Left = %d, want 2", v.Left)
	}
}

func TestSelectionString(t *testing.T) {
	s := NewCursorSelection(Address{Row: 1, Col: 1})
	if s.String() != "Cursor(A1)" {
		t.Errorf("String() = %q", s.String())
	}
	s = s.Extend(Address{Row: 2, Col: 2})
	if s.String() != "Selection(A1->B2)" {
		t.Errorf("String() = %q", s.String())
	}
}
