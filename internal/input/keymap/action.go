package keymap

// Action names a command the dispatcher knows how to execute.
type Action string

// ActionNone unbinds a key in an override table.
const ActionNone Action = "none"

// Browse mode actions.
const (
	ActionQuit  Action = "app.quit"
	ActionSave  Action = "file.save"
	ActionCopy  Action = "clipboard.copy"
	ActionPaste Action = "clipboard.paste"

	ActionCursorUp    Action = "cursor.up"
	ActionCursorDown  Action = "cursor.down"
	ActionCursorLeft  Action = "cursor.left"
	ActionCursorRight Action = "cursor.right"

	ActionExtendUp    Action = "selection.up"
	ActionExtendDown  Action = "selection.down"
	ActionExtendLeft  Action = "selection.left"
	ActionExtendRight Action = "selection.right"
	ActionClearSelect Action = "selection.clear"

	ActionRowStart       Action = "cursor.rowStart"
	ActionColumnStart    Action = "cursor.columnStart"
	ActionLastUsedColumn Action = "cursor.lastUsedColumn"
	ActionDocumentStart  Action = "cursor.documentStart"
	ActionLastUsedCell   Action = "cursor.lastUsedCell"

	ActionEdit Action = "cell.edit"

	ActionStyleNone       Action = "style.none"
	ActionStyleHighlightA Action = "style.highlightA"
	ActionStyleAccentA    Action = "style.accentA"
	ActionStyleAccentB    Action = "style.accentB"
	ActionStyleHighlightB Action = "style.highlightB"
	ActionStyleAccentC    Action = "style.accentC"

	ActionWiden  Action = "column.widen"
	ActionNarrow Action = "column.narrow"

	ActionSheetNext     Action = "sheet.next"
	ActionSheetPrev     Action = "sheet.prev"
	ActionSheetSelector Action = "sheet.selector"
)

// Edit mode actions. Printable runes are text input and need no binding.
const (
	ActionCommitDown  Action = "edit.commitDown"
	ActionCommitRight Action = "edit.commitRight"
	ActionCommitLeft  Action = "edit.commitLeft"
	ActionCancelEdit  Action = "edit.cancel"

	ActionBackspace  Action = "edit.backspace"
	ActionDeleteChar Action = "edit.delete"
	ActionCaretLeft  Action = "edit.left"
	ActionCaretRight Action = "edit.right"
	ActionCaretHome  Action = "edit.home"
	ActionCaretEnd   Action = "edit.end"
)

// Sheet selector actions.
const (
	ActionSelectorUp      Action = "selector.up"
	ActionSelectorDown    Action = "selector.down"
	ActionSelectorConfirm Action = "selector.confirm"
	ActionSelectorCancel  Action = "selector.cancel"
)

// Mode names as used in configuration tables.
const (
	ModeBrowse = "browse"
	ModeEdit   = "edit"
	ModeSelect = "select"
)

// Modes lists every mode name.
func Modes() []string {
	return []string{ModeBrowse, ModeEdit, ModeSelect}
}

var modeActions = map[string][]Action{
	ModeBrowse: {
		ActionQuit, ActionSave, ActionCopy, ActionPaste,
		ActionCursorUp, ActionCursorDown, ActionCursorLeft, ActionCursorRight,
		ActionExtendUp, ActionExtendDown, ActionExtendLeft, ActionExtendRight, ActionClearSelect,
		ActionRowStart, ActionColumnStart, ActionLastUsedColumn, ActionDocumentStart, ActionLastUsedCell,
		ActionEdit,
		ActionStyleNone, ActionStyleHighlightA, ActionStyleAccentA,
		ActionStyleAccentB, ActionStyleHighlightB, ActionStyleAccentC,
		ActionWiden, ActionNarrow,
		ActionSheetNext, ActionSheetPrev, ActionSheetSelector,
	},
	ModeEdit: {
		ActionCommitDown, ActionCommitRight, ActionCommitLeft, ActionCancelEdit,
		ActionBackspace, ActionDeleteChar, ActionCaretLeft, ActionCaretRight, ActionCaretHome, ActionCaretEnd,
	},
	ModeSelect: {
		ActionSelectorUp, ActionSelectorDown, ActionSelectorConfirm, ActionSelectorCancel,
	},
}

// Actions returns the actions valid in mode, or nil for an unknown mode.
func Actions(mode string) []Action {
	src := modeActions[mode]
	if src == nil {
		return nil
	}
	out := make([]Action, len(src))
	copy(out, src)
	return out
}

// ValidAction reports whether a may be bound in mode.
func ValidAction(mode string, a Action) bool {
	for _, known := range modeActions[mode] {
		if known == a {
			return true
		}
	}
	return false
}
