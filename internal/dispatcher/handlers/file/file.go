// Package file provides handlers for saving the workbook and leaving the
// application.
package file

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// Handler implements the "file" namespace.
type Handler struct{}

// NewHandler creates a new file handler.
func NewHandler() *Handler { return &Handler{} }

// Namespace returns the file namespace.
func (h *Handler) Namespace() string { return "file" }

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(action keymap.Action) bool {
	return action == keymap.ActionSave
}

// Handle saves the workbook. A failed save leaves the dirty flag set and
// reports the error.
func (h *Handler) Handle(action keymap.Action, s *session.Session) handler.Result {
	if action != keymap.ActionSave {
		return handler.Errorf("unknown file action: %s", action)
	}
	if err := s.Save(); err != nil {
		return handler.Error(err).WithMessage(s.Status())
	}
	return handler.Success().WithMessage(s.Status())
}

// AppHandler implements the "app" namespace.
type AppHandler struct{}

// NewAppHandler creates a new app handler.
func NewAppHandler() *AppHandler { return &AppHandler{} }

// Namespace returns the app namespace.
func (h *AppHandler) Namespace() string { return "app" }

// CanHandle returns true if this handler can process the action.
func (h *AppHandler) CanHandle(action keymap.Action) bool {
	return action == keymap.ActionQuit
}

// Handle requests the end of the session.
func (h *AppHandler) Handle(action keymap.Action, _ *session.Session) handler.Result {
	if action != keymap.ActionQuit {
		return handler.Errorf("unknown app action: %s", action)
	}
	return handler.QuitRequested()
}
