// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers and timestamp
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "W", "1", "Enter", "Escape", "F5"
//   - With modifiers: "Ctrl+S", "Shift+Up", "Ctrl+Home"
//   - Short form: "C-s", "S-Tab", "<C-End>"
//
// Specifications appear in the [keys] tables of the configuration file and
// in the default keymaps. Binding lookups go through Event.Normalize so that
// a terminal reporting Shift on an uppercase rune still matches "W".
package key
