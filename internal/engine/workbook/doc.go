// Package workbook provides the in-memory document model for the grid editor.
//
// A Workbook owns an ordered list of Sheets. Each Sheet stores its cells
// sparsely, keyed by Address, together with per-column display widths and
// a lazily maintained used range.
//
// # Addressing
//
// Addresses are 1-based and bounded by the classic XLS limits:
//
//   - Rows 1 through 65536
//   - Columns 1 through 256 (A through IV)
//
// Out-of-range addresses are never stored. Navigation code clamps with
// Address.Clamp; the sheet setters ignore invalid addresses and report it.
//
// # Styles
//
// A cell may carry one StyleTag from a closed set of six visual marks.
// Tags are tracked independently of the cell value, so a cleared cell can
// remain "empty but styled" until its tag is reset to TagNone.
//
// # Dirty Tracking
//
// Every effective mutation of a sheet marks its owning Workbook dirty.
// Persistence code clears the flag after a successful save.
package workbook
