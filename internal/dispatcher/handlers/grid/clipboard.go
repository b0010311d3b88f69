package grid

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// ClipboardHandler implements the "clipboard" namespace.
type ClipboardHandler struct{}

// NewClipboardHandler creates a new clipboard handler.
func NewClipboardHandler() *ClipboardHandler { return &ClipboardHandler{} }

// Namespace returns the clipboard namespace.
func (h *ClipboardHandler) Namespace() string { return "clipboard" }

// CanHandle returns true if this handler can process the action.
func (h *ClipboardHandler) CanHandle(action keymap.Action) bool {
	return action == keymap.ActionCopy || action == keymap.ActionPaste
}

// Handle copies the selection or pastes at the cursor.
func (h *ClipboardHandler) Handle(action keymap.Action, s *session.Session) handler.Result {
	switch action {
	case keymap.ActionCopy:
		return handler.From(s.Copy() > 0).WithMessage(s.Status())
	case keymap.ActionPaste:
		_, ok := s.Paste()
		return handler.From(ok).WithMessage(s.Status())
	}
	return handler.Errorf("unknown clipboard action: %s", action)
}
