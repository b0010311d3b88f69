package grid

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// ColumnHandler implements the "column" namespace.
type ColumnHandler struct{}

// NewColumnHandler creates a new column handler.
func NewColumnHandler() *ColumnHandler { return &ColumnHandler{} }

// Namespace returns the column namespace.
func (h *ColumnHandler) Namespace() string { return "column" }

// CanHandle returns true if this handler can process the action.
func (h *ColumnHandler) CanHandle(action keymap.Action) bool {
	return action == keymap.ActionWiden || action == keymap.ActionNarrow
}

// Handle widens or narrows every column spanned by the selection.
func (h *ColumnHandler) Handle(action keymap.Action, s *session.Session) handler.Result {
	var change workbook.WidthChange
	switch action {
	case keymap.ActionWiden:
		change = s.Widen()
	case keymap.ActionNarrow:
		change = s.Narrow()
	default:
		return handler.Errorf("unknown column action: %s", action)
	}
	return handler.From(change.Changed).WithMessage(s.Status())
}
