package cursor

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/engine/cursor"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

var extends = map[keymap.Action]cursor.Direction{
	keymap.ActionExtendUp:    cursor.Up,
	keymap.ActionExtendDown:  cursor.Down,
	keymap.ActionExtendLeft:  cursor.Left,
	keymap.ActionExtendRight: cursor.Right,
}

// SelectionHandler implements the "selection" namespace. Extending keeps
// the anchor fixed and moves the head.
type SelectionHandler struct{}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler() *SelectionHandler {
	return &SelectionHandler{}
}

// Namespace returns the selection namespace.
func (h *SelectionHandler) Namespace() string {
	return "selection"
}

// CanHandle returns true if this handler can process the action.
func (h *SelectionHandler) CanHandle(action keymap.Action) bool {
	_, ok := extends[action]
	return ok || action == keymap.ActionClearSelect
}

// Handle processes a selection action.
func (h *SelectionHandler) Handle(action keymap.Action, s *session.Session) handler.Result {
	if action == keymap.ActionClearSelect {
		if _, ok := s.View().Selection(); !ok {
			return handler.NoOp()
		}
		s.ClearSelection()
		return handler.Success()
	}
	dir, ok := extends[action]
	if !ok {
		return handler.Errorf("unknown selection action: %s", action)
	}
	s.Move(dir, true)
	return handler.Success()
}
