package keymap

import (
	"fmt"

	"github.com/dshills/xlgrid/internal/input/key"
)

// Keymap holds key bindings for a mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined ("default", "user").
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(mode string) *Keymap {
	k.Mode = mode
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys string, action Action) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// Validate checks that all bindings parse and name actions valid in the mode.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := key.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		if b.Action != ActionNone && !ValidAction(k.Mode, b.Action) {
			return fmt.Errorf("binding %d (%s): %w: %q in mode %q", i, b.Keys, ErrUnknownAction, b.Action, k.Mode)
		}
	}
	return nil
}

// ParsedKeymap is a keymap with pre-parsed key events indexed for lookup.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding
	index          map[key.Event]int
}

// Parse parses all bindings in the keymap. Later bindings for the same key
// replace earlier ones.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
		index:          make(map[key.Event]int, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", b.Keys, err)
		}
		ev = ev.Normalize()
		if i, ok := parsed.index[ev]; ok {
			parsed.ParsedBindings[i] = ParsedBinding{Binding: b, Event: ev}
			continue
		}
		parsed.index[ev] = len(parsed.ParsedBindings)
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{Binding: b, Event: ev})
	}

	return parsed, nil
}

// Lookup returns the binding for ev. Bindings to ActionNone do not match.
func (p *ParsedKeymap) Lookup(ev key.Event) (Binding, bool) {
	i, ok := p.index[ev.Normalize()]
	if !ok {
		return Binding{}, false
	}
	b := p.ParsedBindings[i].Binding
	if b.Action == ActionNone {
		return Binding{}, false
	}
	return b, true
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Mode:     k.Mode,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}
