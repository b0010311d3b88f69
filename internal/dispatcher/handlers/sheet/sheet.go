// Package sheet provides handlers for switching between worksheets and
// for the sheet selector popup.
package sheet

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// Handler implements the "sheet" namespace.
type Handler struct{}

// NewHandler creates a new sheet handler.
func NewHandler() *Handler { return &Handler{} }

// Namespace returns the sheet namespace.
func (h *Handler) Namespace() string { return "sheet" }

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action keymap.Action) bool {
	switch action {
	case keymap.ActionSheetNext, keymap.ActionSheetPrev, keymap.ActionSheetSelector:
		return true
	}
	return false
}

// Handle processes a sheet action. Switching past either end is a no-op.
func (h *Handler) Handle(action keymap.Action, s *session.Session) handler.Result {
	switch action {
	case keymap.ActionSheetNext:
		return handler.From(s.SwitchSheet(1))
	case keymap.ActionSheetPrev:
		return handler.From(s.SwitchSheet(-1))
	case keymap.ActionSheetSelector:
		s.OpenSelector()
		return handler.From(s.Mode().Kind() == session.KindSheetSelect)
	}
	return handler.Errorf("unknown sheet action: %s", action)
}
