// Package keymap provides key binding management for the grid editor.
//
// The keymap system maps single key presses to named actions. Each editor
// mode (browse, edit, select) has its own keymap; there are no multi-key
// sequences and no global layer, so a key means exactly one thing per mode.
//
// # Key Concepts
//
// Action: A named command such as "cursor.down" or "file.save". The set of
// actions is closed; Validate rejects unknown names.
//
// Binding: Maps a key specification to an action.
//
// Registry: Holds one parsed keymap per mode and resolves events.
//
// # Overrides
//
// User configuration layers on top of the defaults. Binding a key to the
// special action "none" removes it:
//
//	reg := keymap.NewDefaultRegistry()
//	err := reg.Override(keymap.ModeBrowse, map[string]string{
//	    "q":   "app.quit",
//	    "F5":  "none",
//	})
//
// # Usage
//
//	b, ok := reg.Lookup(keymap.ModeBrowse, ev)
//	if ok {
//	    // Execute b.Action
//	}
package keymap
