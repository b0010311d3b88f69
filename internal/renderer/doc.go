// Package renderer draws a session's render model onto a terminal.
//
// The screen is laid out top to bottom as:
//
//	File: book.xlsx [+] | Sheet: Sheet1 (1/2)      header
//	          A          B          C              column letters
//	    1 value      42                            grid rows
//	    2 ...
//	A1 | ^W:Quit ^S:Save | ...                     status or edit line
//
// Row numbers occupy a fixed gutter on the left. The sheet selector is a
// bordered popup centered over the grid.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultTheme())
//	rows, width := renderer.GridSize(b.Size())
//	s.SetViewport(rows, width)
//	r.Render(s.Model())
package renderer
