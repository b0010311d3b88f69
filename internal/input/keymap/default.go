package keymap

// DefaultKeymaps returns the built-in keymap of every mode.
func DefaultKeymaps() []*Keymap {
	return []*Keymap{
		DefaultBrowseKeymap(),
		DefaultEditKeymap(),
		DefaultSelectKeymap(),
	}
}

// DefaultBrowseKeymap returns default browse mode bindings.
func DefaultBrowseKeymap() *Keymap {
	return &Keymap{
		Name:   "default-browse",
		Mode:   ModeBrowse,
		Source: "default",
		Bindings: []Binding{
			// Application
			{Keys: "C-w", Action: ActionQuit, Description: "Quit", Category: "File"},
			{Keys: "C-s", Action: ActionSave, Description: "Save workbook", Category: "File"},

			// Clipboard
			{Keys: "c", Action: ActionCopy, Description: "Copy selection", Category: "Clipboard"},
			{Keys: "F5", Action: ActionCopy, Description: "Copy selection", Category: "Clipboard"},
			{Keys: "v", Action: ActionPaste, Description: "Paste at cursor", Category: "Clipboard"},
			{Keys: "F6", Action: ActionPaste, Description: "Paste at cursor", Category: "Clipboard"},

			// Movement
			{Keys: "w", Action: ActionCursorUp, Description: "Move up", Category: "Movement"},
			{Keys: "s", Action: ActionCursorDown, Description: "Move down", Category: "Movement"},
			{Keys: "a", Action: ActionCursorLeft, Description: "Move left", Category: "Movement"},
			{Keys: "d", Action: ActionCursorRight, Description: "Move right", Category: "Movement"},
			{Keys: "Up", Action: ActionCursorUp, Description: "Move up", Category: "Movement"},
			{Keys: "Down", Action: ActionCursorDown, Description: "Move down", Category: "Movement"},
			{Keys: "Left", Action: ActionCursorLeft, Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: ActionCursorRight, Description: "Move right", Category: "Movement"},
			{Keys: "Enter", Action: ActionCursorDown, Description: "Move down", Category: "Movement"},
			{Keys: "S-Enter", Action: ActionCursorUp, Description: "Move up", Category: "Movement"},
			{Keys: "Tab", Action: ActionCursorRight, Description: "Move right", Category: "Movement"},
			{Keys: "S-Tab", Action: ActionCursorLeft, Description: "Move left", Category: "Movement"},

			// Selection
			{Keys: "W", Action: ActionExtendUp, Description: "Extend selection up", Category: "Selection"},
			{Keys: "S", Action: ActionExtendDown, Description: "Extend selection down", Category: "Selection"},
			{Keys: "A", Action: ActionExtendLeft, Description: "Extend selection left", Category: "Selection"},
			{Keys: "D", Action: ActionExtendRight, Description: "Extend selection right", Category: "Selection"},
			{Keys: "S-Up", Action: ActionExtendUp, Description: "Extend selection up", Category: "Selection"},
			{Keys: "S-Down", Action: ActionExtendDown, Description: "Extend selection down", Category: "Selection"},
			{Keys: "S-Left", Action: ActionExtendLeft, Description: "Extend selection left", Category: "Selection"},
			{Keys: "S-Right", Action: ActionExtendRight, Description: "Extend selection right", Category: "Selection"},
			{Keys: "Esc", Action: ActionClearSelect, Description: "Clear selection", Category: "Selection"},

			// Jumps
			{Keys: "Home", Action: ActionRowStart, Description: "Go to row start", Category: "Movement"},
			{Keys: "End", Action: ActionLastUsedColumn, Description: "Go to last used column", Category: "Movement"},
			{Keys: "C-Up", Action: ActionColumnStart, Description: "Go to column start", Category: "Movement"},
			{Keys: "C-Home", Action: ActionDocumentStart, Description: "Go to A1", Category: "Movement"},
			{Keys: "C-End", Action: ActionLastUsedCell, Description: "Go to last used cell", Category: "Movement"},

			// Editing
			{Keys: "F2", Action: ActionEdit, Description: "Edit cell", Category: "Editing"},

			// Styles
			{Keys: "1", Action: ActionStyleNone, Description: "Clear mark", Category: "Style"},
			{Keys: "2", Action: ActionStyleHighlightA, Description: "Yellow background", Category: "Style"},
			{Keys: "3", Action: ActionStyleAccentA, Description: "Red text", Category: "Style"},
			{Keys: "4", Action: ActionStyleAccentB, Description: "Green text", Category: "Style"},
			{Keys: "5", Action: ActionStyleHighlightB, Description: "Blue background", Category: "Style"},
			{Keys: "6", Action: ActionStyleAccentC, Description: "Magenta text", Category: "Style"},

			// Columns
			{Keys: "e", Action: ActionWiden, Description: "Widen column", Category: "Columns"},
			{Keys: "r", Action: ActionNarrow, Description: "Narrow column", Category: "Columns"},

			// Sheets
			{Keys: "PgDn", Action: ActionSheetNext, Description: "Next sheet", Category: "Sheets"},
			{Keys: "PgUp", Action: ActionSheetPrev, Description: "Previous sheet", Category: "Sheets"},
			{Keys: "F4", Action: ActionSheetSelector, Description: "Choose sheet", Category: "Sheets"},
		},
	}
}

// DefaultEditKeymap returns default edit mode bindings.
func DefaultEditKeymap() *Keymap {
	return &Keymap{
		Name:   "default-edit",
		Mode:   ModeEdit,
		Source: "default",
		Bindings: []Binding{
			{Keys: "Enter", Action: ActionCommitDown, Description: "Commit and move down", Category: "Commit"},
			{Keys: "Tab", Action: ActionCommitRight, Description: "Commit and move right", Category: "Commit"},
			{Keys: "S-Tab", Action: ActionCommitLeft, Description: "Commit and move left", Category: "Commit"},
			{Keys: "Esc", Action: ActionCancelEdit, Description: "Discard edit", Category: "Commit"},

			{Keys: "Backspace", Action: ActionBackspace, Description: "Delete before caret", Category: "Text"},
			{Keys: "Delete", Action: ActionDeleteChar, Description: "Delete at caret", Category: "Text"},
			{Keys: "Left", Action: ActionCaretLeft, Description: "Caret left", Category: "Text"},
			{Keys: "Right", Action: ActionCaretRight, Description: "Caret right", Category: "Text"},
			{Keys: "Home", Action: ActionCaretHome, Description: "Caret to start", Category: "Text"},
			{Keys: "End", Action: ActionCaretEnd, Description: "Caret to end", Category: "Text"},
		},
	}
}

// DefaultSelectKeymap returns default sheet selector bindings.
func DefaultSelectKeymap() *Keymap {
	return &Keymap{
		Name:   "default-select",
		Mode:   ModeSelect,
		Source: "default",
		Bindings: []Binding{
			{Keys: "w", Action: ActionSelectorUp, Description: "Previous sheet", Category: "Selector"},
			{Keys: "Up", Action: ActionSelectorUp, Description: "Previous sheet", Category: "Selector"},
			{Keys: "s", Action: ActionSelectorDown, Description: "Next sheet", Category: "Selector"},
			{Keys: "Down", Action: ActionSelectorDown, Description: "Next sheet", Category: "Selector"},
			{Keys: "Enter", Action: ActionSelectorConfirm, Description: "Open sheet", Category: "Selector"},
			{Keys: "Esc", Action: ActionSelectorCancel, Description: "Close selector", Category: "Selector"},
		},
	}
}
