// Package persist reads and writes workbooks as .xlsx files and keeps the
// per-file view state between runs.
//
// Only what the grid model carries survives a round trip: sheet names and
// order, cell text, formulas, the fixed style tags and custom column
// widths. Style tags are stored as fill and font colors and decoded back
// from them, so marks made in other spreadsheet programs with the same
// colors are recognised too.
package persist
