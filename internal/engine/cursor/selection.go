package cursor

import (
	"fmt"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// Address is an alias for workbook.Address for convenience.
type Address = workbook.Address

// Rect is an alias for workbook.Rect for convenience.
type Rect = workbook.Rect

// Selection represents a rectangular range of selected cells.
// Anchor is where the selection started; Head is the focus cell.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Address // Where selection started
	Head   Address // Focus cell (where editing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Address) Selection {
	return Selection{Anchor: anchor.Clamp(), Head: head.Clamp()}
}

// NewCursorSelection creates a selection representing just a cursor (no extent).
func NewCursorSelection(a Address) Selection {
	a = a.Clamp()
	return Selection{Anchor: a, Head: a}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Rect returns the selected rectangle (always normalized).
func (s Selection) Rect() Rect {
	return workbook.RectFrom(s.Anchor, s.Head)
}

// Cursor returns the head position.
func (s Selection) Cursor() Address {
	return s.Head
}

// Extend returns a selection with the same anchor and a new head.
func (s Selection) Extend(head Address) Selection {
	return Selection{Anchor: s.Anchor, Head: head.Clamp()}
}

// MoveTo returns a bare cursor at a, dropping any extent.
func (s Selection) MoveTo(a Address) Selection {
	return NewCursorSelection(a)
}

// Collapse returns a bare cursor at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%s)", s.Head)
	}
	return fmt.Sprintf("Selection(%s->%s)", s.Anchor, s.Head)
}
