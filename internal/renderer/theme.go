package renderer

import (
	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/renderer/core"
)

// Theme holds the styles used to draw the grid.
type Theme struct {
	Header       core.Style
	ColumnHeader core.Style
	RowNumber    core.Style
	Cell         core.Style
	Cursor       core.Style
	Selection    core.Style
	Formula      core.Style
	Status       core.Style
	Edit         core.Style
	Popup        core.Style
	PopupFocus   core.Style

	// Tags maps each style tag to its cell style.
	Tags map[workbook.StyleTag]core.Style
}

// DefaultTheme returns the standard color scheme.
func DefaultTheme() Theme {
	base := core.DefaultStyle()
	return Theme{
		Header:       base.Reverse().Bold(),
		ColumnHeader: base.Bold(),
		RowNumber:    base.Dim(),
		Cell:         base,
		Cursor:       base.WithForeground(core.ColorBlack).WithBackground(core.ColorWhite).Bold(),
		Selection:    base.WithForeground(core.ColorWhite).WithBackground(core.ColorNavy),
		Formula:      base.WithForeground(core.ColorGray),
		Status:       base.Reverse(),
		Edit:         base.Bold(),
		Popup:        base.Reverse(),
		PopupFocus:   base.WithForeground(core.ColorWhite).WithBackground(core.ColorNavy).Bold(),
		Tags: map[workbook.StyleTag]core.Style{
			workbook.TagHighlightA: base.WithForeground(core.ColorBlack).WithBackground(core.ColorYellow),
			workbook.TagAccentA:    base.WithForeground(core.ColorRed),
			workbook.TagAccentB:    base.WithForeground(core.ColorGreen),
			workbook.TagHighlightB: base.WithForeground(core.ColorBlack).WithBackground(core.ColorLightBlue),
			workbook.TagAccentC:    base.WithForeground(core.ColorMagenta),
		},
	}
}

// CellStyle picks the style for one grid cell. Cursor wins over selection,
// selection over formula, formula over the cell's tag. A formula cell still
// shows a background tag's color behind the formula foreground.
func (t Theme) CellStyle(cursor, selected, formula bool, tag workbook.StyleTag) core.Style {
	switch {
	case cursor:
		return t.Cursor
	case selected:
		return t.Selection
	case formula:
		if s, ok := t.Tags[tag]; ok && tag.IsBackground() {
			return t.Formula.WithBackground(s.Background)
		}
		return t.Formula
	}
	if s, ok := t.Tags[tag]; ok {
		return s
	}
	return t.Cell
}
