// Package editor provides handlers for the single-cell edit line.
package editor

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/engine/cursor"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

var commits = map[keymap.Action]cursor.Direction{
	keymap.ActionCommitDown:  cursor.Down,
	keymap.ActionCommitRight: cursor.Right,
	keymap.ActionCommitLeft:  cursor.Left,
}

// Handler implements the "edit" namespace.
type Handler struct{}

// NewHandler creates a new edit handler.
func NewHandler() *Handler { return &Handler{} }

// Namespace returns the edit namespace.
func (h *Handler) Namespace() string { return "edit" }

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action keymap.Action) bool {
	if _, ok := commits[action]; ok {
		return true
	}
	switch action {
	case keymap.ActionCancelEdit, keymap.ActionBackspace, keymap.ActionDeleteChar,
		keymap.ActionCaretLeft, keymap.ActionCaretRight, keymap.ActionCaretHome, keymap.ActionCaretEnd:
		return true
	}
	return false
}

// Handle processes an edit action. Outside Editing every action is a no-op.
func (h *Handler) Handle(action keymap.Action, s *session.Session) handler.Result {
	if s.EditBuffer() == nil {
		return handler.NoOp()
	}
	if dir, ok := commits[action]; ok {
		s.CommitEdit(dir)
		return handler.Success()
	}
	switch action {
	case keymap.ActionCancelEdit:
		s.CancelEdit()
	case keymap.ActionBackspace:
		s.EditBackspace()
	case keymap.ActionDeleteChar:
		s.EditDelete()
	case keymap.ActionCaretLeft:
		s.EditLeft()
	case keymap.ActionCaretRight:
		s.EditRight()
	case keymap.ActionCaretHome:
		s.EditHome()
	case keymap.ActionCaretEnd:
		s.EditEnd()
	default:
		return handler.Errorf("unknown edit action: %s", action)
	}
	return handler.Success()
}
