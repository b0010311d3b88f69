package workbook

import (
	"fmt"
	"strings"
)

// StyleTag is one of the fixed visual marks a cell can carry.
type StyleTag uint8

const (
	// TagNone is the default (cleared) style.
	TagNone StyleTag = iota
	// TagHighlightA is a yellow background, for items needing attention.
	TagHighlightA
	// TagAccentA is red text, for errors and warnings.
	TagAccentA
	// TagAccentB is green text, for items that are done.
	TagAccentB
	// TagHighlightB is a blue background, for a first category.
	TagHighlightB
	// TagAccentC is magenta text, for a second category.
	TagAccentC

	tagCount
)

var tagNames = [tagCount]string{
	TagNone:       "none",
	TagHighlightA: "highlight-a",
	TagAccentA:    "accent-a",
	TagAccentB:    "accent-b",
	TagHighlightB: "highlight-b",
	TagAccentC:    "accent-c",
}

var tagLabels = [tagCount]string{
	TagNone:       "cleared",
	TagHighlightA: "yellow bg",
	TagAccentA:    "red text",
	TagAccentB:    "green text",
	TagHighlightB: "blue bg",
	TagAccentC:    "magenta text",
}

// Valid reports whether t is a known tag.
func (t StyleTag) Valid() bool {
	return t < tagCount
}

// String returns the config/action name of the tag.
func (t StyleTag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("StyleTag(%d)", t)
	}
	return tagNames[t]
}

// Label returns a short human description used in status messages.
func (t StyleTag) Label() string {
	if !t.Valid() {
		return "unknown"
	}
	return tagLabels[t]
}

// IsBackground reports whether the tag paints the cell background.
func (t StyleTag) IsBackground() bool {
	return t == TagHighlightA || t == TagHighlightB
}

// ParseStyleTag parses a tag name as returned by String.
func ParseStyleTag(s string) (StyleTag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tagNames {
		if name == s {
			return StyleTag(i), nil
		}
	}
	return TagNone, fmt.Errorf("unknown style tag %q", s)
}
