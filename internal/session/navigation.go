package session

import "github.com/dshills/xlgrid/internal/engine/cursor"

// Move moves the cursor one cell. With extend the selection grows from its
// anchor; without it any selection collapses.
func (s *Session) Move(dir cursor.Direction, extend bool) {
	s.View().Move(dir, extend)
	s.follow()
}

// Jump moves the cursor to a named destination and collapses the selection.
func (s *Session) Jump(target cursor.JumpTarget) {
	usedRow, usedCol := s.Sheet().UsedRange()
	s.View().Jump(target, usedRow, usedCol)
	s.follow()
}

// ClearSelection collapses the selection onto the cursor.
func (s *Session) ClearSelection() {
	s.View().ClearSelection()
}
