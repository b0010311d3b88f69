package grid

import (
	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// CellHandler implements the "cell" namespace.
type CellHandler struct{}

// NewCellHandler creates a new cell handler.
func NewCellHandler() *CellHandler { return &CellHandler{} }

// Namespace returns the cell namespace.
func (h *CellHandler) Namespace() string { return "cell" }

// CanHandle returns true if this handler can process the action.
func (h *CellHandler) CanHandle(action keymap.Action) bool {
	return action == keymap.ActionEdit
}

// Handle processes a cell action. Editing a formula cell is refused with
// the formula shown as the status message.
func (h *CellHandler) Handle(action keymap.Action, s *session.Session) handler.Result {
	if action != keymap.ActionEdit {
		return handler.Errorf("unknown cell action: %s", action)
	}
	return handler.From(s.BeginEdit()).WithMessage(s.Status())
}

var styleTags = map[keymap.Action]workbook.StyleTag{
	keymap.ActionStyleNone:       workbook.TagNone,
	keymap.ActionStyleHighlightA: workbook.TagHighlightA,
	keymap.ActionStyleAccentA:    workbook.TagAccentA,
	keymap.ActionStyleAccentB:    workbook.TagAccentB,
	keymap.ActionStyleHighlightB: workbook.TagHighlightB,
	keymap.ActionStyleAccentC:    workbook.TagAccentC,
}

// StyleHandler implements the "style" namespace: it tags the selection,
// or the cursor cell, with one of the fixed style tags.
type StyleHandler struct{}

// NewStyleHandler creates a new style handler.
func NewStyleHandler() *StyleHandler { return &StyleHandler{} }

// Namespace returns the style namespace.
func (h *StyleHandler) Namespace() string { return "style" }

// CanHandle returns true if this handler can process the action.
func (h *StyleHandler) CanHandle(action keymap.Action) bool {
	_, ok := styleTags[action]
	return ok
}

// Handle processes a style action.
func (h *StyleHandler) Handle(action keymap.Action, s *session.Session) handler.Result {
	tag, ok := styleTags[action]
	if !ok {
		return handler.Errorf("unknown style action: %s", action)
	}
	n := s.Mark(tag)
	return handler.From(n > 0).WithMessage(s.Status())
}

