package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "W", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Shift+Up", "Ctrl+Shift+Home"
//   - Short form: "C-s", "S-Tab", optionally wrapped: "<C-s>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		spec = spec[1 : len(spec)-1]
	}

	// A lone separator character is a key, not a separator.
	if spec == "+" || spec == "-" {
		return NewRuneEvent(rune(spec[0]), ModNone), nil
	}

	sep := ""
	switch {
	case strings.Contains(spec, "+"):
		sep = "+"
	case strings.Contains(spec, "-"):
		sep = "-"
	}
	if sep == "" {
		return parseKeyWithModifiers(spec, ModNone)
	}

	parts := strings.Split(spec, sep)
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) >= 2 {
		// "C--" or "Ctrl++": the key itself is the separator.
		keyPart = sep
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	lowerKey := strings.ToLower(keyPart)
	switch lowerKey {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "backtab":
		return NewSpecialEvent(KeyTab, mods.With(ModShift)), nil
	}
	if key := KeyFromName(lowerKey); key != KeyNone {
		return NewSpecialEvent(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	r := runes[0]
	if mods.HasCtrl() {
		r = unicode.ToLower(r)
	} else if mods.HasShift() && unicode.IsLetter(r) {
		// "S-w" means "W".
		r = unicode.ToUpper(r)
	}
	return NewRuneEvent(r, mods).Normalize(), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.Normalize().String(), nil
}
