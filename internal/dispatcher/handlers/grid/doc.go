// Package grid provides handlers for actions that change cells or columns:
// entering edit mode, style tags, column widths and the clipboard.
package grid
