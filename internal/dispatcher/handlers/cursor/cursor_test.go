package cursor

import (
	"testing"

	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

func TestHandlerMoves(t *testing.T) {
	s := session.New(nil, session.Options{})
	h := NewHandler()

	for _, a := range []keymap.Action{keymap.ActionCursorDown, keymap.ActionCursorDown, keymap.ActionCursorRight} {
		if !h.CanHandle(a) {
			t.Fatalf("CanHandle(%s) = false", a)
		}
		if res := h.Handle(a, s); !res.IsOK() {
			t.Fatalf("Handle(%s) = %v", a, res.Status)
		}
	}
	if got := s.View().Focus(); got != workbook.NewAddress(3, 2) {
		t.Errorf("Focus() = %v, want B3", got)
	}

	h.Handle(keymap.ActionDocumentStart, s)
	if got := s.View().Focus(); got != workbook.NewAddress(1, 1) {
		t.Errorf("Focus() after documentStart = %v, want A1", got)
	}
}

func TestHandlerJumpsToLastUsed(t *testing.T) {
	s := session.New(nil, session.Options{})
	s.Sheet().SetValue(workbook.NewAddress(4, 6), "x")

	NewHandler().Handle(keymap.ActionLastUsedCell, s)
	if got := s.View().Focus(); got != workbook.NewAddress(4, 6) {
		t.Errorf("Focus() = %v, want F4", got)
	}
}

func TestHandlerRejectsForeignAction(t *testing.T) {
	h := NewHandler()
	if h.CanHandle(keymap.ActionSave) {
		t.Error("cursor handler should not accept file.save")
	}
	if res := h.Handle(keymap.ActionSave, session.New(nil, session.Options{})); !res.IsError() {
		t.Errorf("Handle(file.save) status = %v, want error", res.Status)
	}
}

func TestSelectionHandler(t *testing.T) {
	s := session.New(nil, session.Options{})
	h := NewSelectionHandler()

	if res := h.Handle(keymap.ActionClearSelect, s); res.Status.String() != "no-op" {
		t.Errorf("clear without selection = %v, want no-op", res.Status)
	}

	h.Handle(keymap.ActionExtendDown, s)
	h.Handle(keymap.ActionExtendRight, s)
	r, ok := s.View().Selection()
	if !ok || r.String() != "A1:B2" {
		t.Fatalf("Selection() = %v, %v; want A1:B2", r, ok)
	}

	if res := h.Handle(keymap.ActionClearSelect, s); !res.IsOK() {
		t.Errorf("clear status = %v", res.Status)
	}
	if _, ok := s.View().Selection(); ok {
		t.Error("selection should be cleared")
	}
	if got := s.View().Focus(); got != workbook.NewAddress(2, 2) {
		t.Errorf("Focus() after clear = %v, want B2", got)
	}
}
