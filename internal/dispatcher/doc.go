// Package dispatcher routes key events to the handlers that carry them out.
//
// A key event is resolved in two steps:
//
//  1. The keymap registry maps the event to an action for the session's
//     current mode (browse, edit or select). Unbound keys are ignored,
//     except printable runes in edit mode, which are typed into the cell.
//
//  2. The router sends the action to the handler that owns its namespace
//     prefix, so "cursor.down" goes to the cursor handler and
//     "clipboard.paste" to the clipboard handler.
//
// Dispatch is total: every (mode, event) pair yields a Result, and a
// handler panic is recovered into an error result when RecoverFromPanic is
// set.
//
// # Usage
//
//	d := dispatcher.NewWithDefaults()
//	res := d.Dispatch(sess, ev)
//	if res.Quit && res.Unsaved {
//	    // confirm before leaving
//	}
package dispatcher
