// Package cursor provides cursor and selection management for the grid.
//
// The cursor package handles:
//
//   - Cell selections with an anchor/head model via the Selection type
//   - Per-sheet view state (focus, selection, scroll origin) via View
//   - Clamped movement, extension and jumps inside the sheet bounds
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The cell where the selection started
//   - Head: The focus cell (where editing and movement happen)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected range. Extending from a bare cursor pins the anchor to the prior
// focus; further extension moves only the head.
//
// Basic usage:
//
//	v := cursor.NewView()
//	v.Move(cursor.Right, false)  // focus B1
//	v.Move(cursor.Down, true)    // select B1:B2
//	r := v.Target()              // B1:B2
//
// Thread Safety:
//
// Selection is an immutable value type. View is not thread-safe; the session
// owns one View per sheet and mutates it from the event loop only.
package cursor
