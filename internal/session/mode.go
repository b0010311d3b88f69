package session

import (
	"github.com/dshills/xlgrid/internal/engine/editbuf"
	"github.com/dshills/xlgrid/internal/input/keymap"
)

// ModeKind identifies the active mode variant.
type ModeKind uint8

// Mode kinds.
const (
	KindBrowse ModeKind = iota
	KindEditing
	KindSheetSelect
)

// String returns the keymap mode name for the kind.
func (k ModeKind) String() string {
	switch k {
	case KindBrowse:
		return keymap.ModeBrowse
	case KindEditing:
		return keymap.ModeEdit
	case KindSheetSelect:
		return keymap.ModeSelect
	default:
		return "unknown"
	}
}

// Mode is the closed set of session states: Browse, Editing or SheetSelect.
type Mode interface {
	Kind() ModeKind
	isMode()
}

// Browse is the default navigation mode.
type Browse struct{}

// Kind implements Mode.
func (Browse) Kind() ModeKind { return KindBrowse }
func (Browse) isMode()        {}

// Editing owns the single in-progress cell edit.
type Editing struct {
	Buffer *editbuf.Buffer
}

// Kind implements Mode.
func (Editing) Kind() ModeKind { return KindEditing }
func (Editing) isMode()        {}

// SheetSelect is the sheet chooser with its highlighted index.
type SheetSelect struct {
	Index int
}

// Kind implements Mode.
func (SheetSelect) Kind() ModeKind { return KindSheetSelect }
func (SheetSelect) isMode()        {}
