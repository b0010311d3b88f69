// Package cursor provides handlers for cursor movement and range selection.
package cursor

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/engine/cursor"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

var moves = map[keymap.Action]cursor.Direction{
	keymap.ActionCursorUp:    cursor.Up,
	keymap.ActionCursorDown:  cursor.Down,
	keymap.ActionCursorLeft:  cursor.Left,
	keymap.ActionCursorRight: cursor.Right,
}

var jumps = map[keymap.Action]cursor.JumpTarget{
	keymap.ActionRowStart:       cursor.RowStart,
	keymap.ActionColumnStart:    cursor.ColumnStart,
	keymap.ActionLastUsedColumn: cursor.LastUsedColumn,
	keymap.ActionLastUsedCell:   cursor.LastUsedCell,
	keymap.ActionDocumentStart:  cursor.DocumentStart,
}

// Handler implements the "cursor" namespace: single steps and jumps.
// Moving always collapses any selection.
type Handler struct{}

// NewHandler creates a new cursor handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the cursor namespace.
func (h *Handler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action keymap.Action) bool {
	if _, ok := moves[action]; ok {
		return true
	}
	_, ok := jumps[action]
	return ok
}

// Handle processes a cursor action.
func (h *Handler) Handle(action keymap.Action, s *session.Session) handler.Result {
	if dir, ok := moves[action]; ok {
		s.Move(dir, false)
		return handler.Success()
	}
	if target, ok := jumps[action]; ok {
		s.Jump(target)
		return handler.Success()
	}
	return handler.Errorf("unknown cursor action: %s", action)
}
