package session

import (
	"github.com/dshills/xlgrid/internal/engine/cursor"
	"github.com/dshills/xlgrid/internal/engine/editbuf"
)

// BeginEdit enters Editing on the cursor cell, seeded with its text.
// Formula cells are read-only: the formula is shown in the status line and
// the mode stays Browse. Returns whether editing started.
func (s *Session) BeginEdit() bool {
	if _, ok := s.mode.(Browse); !ok {
		return false
	}
	focus := s.View().Focus()
	cell, _ := s.Sheet().Cell(focus)
	if cell.IsFormula() {
		s.status = "Formula (read-only): =" + cell.Formula
		return false
	}
	s.mode = Editing{Buffer: editbuf.New(focus, cell.Value)}
	return true
}

// EditBuffer returns the in-progress edit, or nil outside Editing.
func (s *Session) EditBuffer() *editbuf.Buffer {
	if e, ok := s.mode.(Editing); ok {
		return e.Buffer
	}
	return nil
}

// EditInsert types text at the caret.
func (s *Session) EditInsert(text string) {
	if b := s.EditBuffer(); b != nil {
		b.Insert(text)
	}
}

// EditBackspace deletes before the caret.
func (s *Session) EditBackspace() {
	if b := s.EditBuffer(); b != nil {
		b.Backspace()
	}
}

// EditDelete deletes at the caret.
func (s *Session) EditDelete() {
	if b := s.EditBuffer(); b != nil {
		b.Delete()
	}
}

// EditLeft moves the caret one cluster left.
func (s *Session) EditLeft() {
	if b := s.EditBuffer(); b != nil {
		b.Left()
	}
}

// EditRight moves the caret one cluster right.
func (s *Session) EditRight() {
	if b := s.EditBuffer(); b != nil {
		b.Right()
	}
}

// EditHome moves the caret to the start of the text.
func (s *Session) EditHome() {
	if b := s.EditBuffer(); b != nil {
		b.Home()
	}
}

// EditEnd moves the caret to the end of the text.
func (s *Session) EditEnd() {
	if b := s.EditBuffer(); b != nil {
		b.End()
	}
}

// CommitEdit writes the working text to the edited cell, returns to Browse
// and moves the cursor one cell in dir.
func (s *Session) CommitEdit(dir cursor.Direction) {
	b := s.EditBuffer()
	if b == nil {
		return
	}
	s.Sheet().SetValue(b.Target(), b.Text())
	s.mode = Browse{}
	s.Move(dir, false)
}

// CancelEdit discards the working text and returns to Browse.
func (s *Session) CancelEdit() {
	if s.EditBuffer() == nil {
		return
	}
	s.mode = Browse{}
}
