package sheet

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// SelectorHandler implements the "selector" namespace.
type SelectorHandler struct{}

// NewSelectorHandler creates a new selector handler.
func NewSelectorHandler() *SelectorHandler { return &SelectorHandler{} }

// Namespace returns the selector namespace.
func (h *SelectorHandler) Namespace() string { return "selector" }

// CanHandle returns true if this handler can process the action.
func (h *SelectorHandler) CanHandle(action keymap.Action) bool {
	switch action {
	case keymap.ActionSelectorUp, keymap.ActionSelectorDown,
		keymap.ActionSelectorConfirm, keymap.ActionSelectorCancel:
		return true
	}
	return false
}

// Handle processes a selector action.
func (h *SelectorHandler) Handle(action keymap.Action, s *session.Session) handler.Result {
	if s.Mode().Kind() != session.KindSheetSelect {
		return handler.NoOp()
	}
	switch action {
	case keymap.ActionSelectorUp:
		s.SelectorMove(-1)
	case keymap.ActionSelectorDown:
		s.SelectorMove(1)
	case keymap.ActionSelectorConfirm:
		s.SelectorConfirm()
	case keymap.ActionSelectorCancel:
		s.SelectorCancel()
	default:
		return handler.Errorf("unknown selector action: %s", action)
	}
	return handler.Success()
}
