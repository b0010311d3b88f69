package sheet

import (
	"testing"

	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

func threeSheets(t *testing.T) *workbook.Workbook {
	t.Helper()
	wb := workbook.NewDefault()
	for _, name := range []string{"Data", "Notes"} {
		if _, err := wb.AddSheet(name); err != nil {
			t.Fatalf("AddSheet(%q) error = %v", name, err)
		}
	}
	return wb
}

func TestSheetSwitchDoesNotWrap(t *testing.T) {
	s := session.New(threeSheets(t), session.Options{})
	h := NewHandler()

	if res := h.Handle(keymap.ActionSheetPrev, s); res.IsOK() {
		t.Error("prev on first sheet should be a no-op")
	}
	h.Handle(keymap.ActionSheetNext, s)
	h.Handle(keymap.ActionSheetNext, s)
	if s.ActiveIndex() != 2 {
		t.Fatalf("ActiveIndex() = %d, want 2", s.ActiveIndex())
	}
	if res := h.Handle(keymap.ActionSheetNext, s); res.IsOK() {
		t.Error("next on last sheet should be a no-op")
	}
}

func TestSelectorFlow(t *testing.T) {
	s := session.New(threeSheets(t), session.Options{})
	sel := NewSelectorHandler()

	if res := sel.Handle(keymap.ActionSelectorDown, s); res.IsOK() {
		t.Error("selector actions outside the popup should be no-ops")
	}

	if res := NewHandler().Handle(keymap.ActionSheetSelector, s); !res.IsOK() {
		t.Fatalf("open selector status = %v", res.Status)
	}
	sel.Handle(keymap.ActionSelectorDown, s)
	sel.Handle(keymap.ActionSelectorDown, s)
	sel.Handle(keymap.ActionSelectorDown, s)
	sel.Handle(keymap.ActionSelectorConfirm, s)

	if s.Mode().Kind() != session.KindBrowse {
		t.Errorf("mode = %v, want browse", s.Mode().Kind())
	}
	if s.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex() = %d, want 2 (clamped)", s.ActiveIndex())
	}

	NewHandler().Handle(keymap.ActionSheetSelector, s)
	sel.Handle(keymap.ActionSelectorUp, s)
	sel.Handle(keymap.ActionSelectorCancel, s)
	if s.ActiveIndex() != 2 || s.Mode().Kind() != session.KindBrowse {
		t.Errorf("cancel changed state: index %d mode %v", s.ActiveIndex(), s.Mode().Kind())
	}
}
