package persist

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// Colors written for each tag. They are one step off the pure palette
// colors so that readers which map exact palette values to indexed colors
// keep them as RGB.
var tagColors = map[workbook.StyleTag]struct{ fill, font string }{
	workbook.TagHighlightA: {fill: "FFEF00", font: "000001"},
	workbook.TagAccentA:    {font: "FF0001"},
	workbook.TagAccentB:    {font: "008001"},
	workbook.TagHighlightB: {fill: "0000FE", font: "FFFFFE"},
	workbook.TagAccentC:    {font: "FF00FE"},
}

var fillTags = map[string]workbook.StyleTag{
	"FFFF00": workbook.TagHighlightA,
	"FFEF00": workbook.TagHighlightA,
	"0000FF": workbook.TagHighlightB,
	"0000FE": workbook.TagHighlightB,
	"00BFFF": workbook.TagHighlightB,
}

var fontTags = map[string]workbook.StyleTag{
	"FF0000": workbook.TagAccentA,
	"FF0001": workbook.TagAccentA,
	"008000": workbook.TagAccentB,
	"008001": workbook.TagAccentB,
	"00FF00": workbook.TagAccentB,
	"FF00FF": workbook.TagAccentC,
	"FF00FE": workbook.TagAccentC,
}

// normalizeColor reduces "#RRGGBB", "AARRGGBB" and lower-case forms to
// upper-case "RRGGBB".
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	return c
}

// tagFromStyle decodes a style tag. A recognised fill wins over the font color.
func tagFromStyle(st *excelize.Style) workbook.StyleTag {
	if st == nil {
		return workbook.TagNone
	}
	if st.Fill.Type == "pattern" || len(st.Fill.Color) > 0 {
		for _, c := range st.Fill.Color {
			if tag, ok := fillTags[normalizeColor(c)]; ok {
				return tag
			}
		}
	}
	if st.Font != nil {
		if tag, ok := fontTags[normalizeColor(st.Font.Color)]; ok {
			return tag
		}
	}
	return workbook.TagNone
}

// styleForTag builds the excelize style that encodes tag.
func styleForTag(tag workbook.StyleTag) *excelize.Style {
	colors, ok := tagColors[tag]
	if !ok {
		return nil
	}
	st := &excelize.Style{Font: &excelize.Font{Color: colors.font}}
	if colors.fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colors.fill}}
	}
	return st
}

// Go layouts for date cells, normalised to ISO order.
const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04:05"
	layoutDateTime = "2006-01-02 15:04:05"
)

// builtinDateLayouts covers the built-in number formats that show dates or times.
var builtinDateLayouts = map[int]string{
	14: layoutDate, 15: layoutDate, 16: layoutDate, 17: layoutDate,
	18: layoutTime, 19: layoutTime, 20: layoutTime, 21: layoutTime,
	22: layoutDateTime,
	45: layoutTime, 46: layoutTime, 47: layoutTime,
}

// dateLayout returns the layout for a date or time number format, or "".
func dateLayout(st *excelize.Style) string {
	if st == nil {
		return ""
	}
	if st.CustomNumFmt != nil {
		return customDateLayout(*st.CustomNumFmt)
	}
	return builtinDateLayouts[st.NumFmt]
}

func customDateLayout(code string) string {
	lower := strings.ToLower(stripLiterals(code))
	if lower == "" || lower == "general" || lower == "@" {
		return ""
	}
	hasTime := strings.Contains(lower, "h") || strings.Contains(lower, "am/pm") || strings.Contains(lower, "s")
	hasDate := strings.Contains(lower, "y") || strings.Contains(lower, "d")
	switch {
	case hasTime && hasDate:
		return layoutDateTime
	case hasTime:
		return layoutTime
	case hasDate || strings.Contains(lower, "m"):
		return layoutDate
	}
	return ""
}

// stripLiterals removes quoted text, bracketed sections such as colors and
// locales, and backslash escapes from a number format code.
func stripLiterals(code string) string {
	var b strings.Builder
	inQuote, inBracket, escaped := false, false, false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
