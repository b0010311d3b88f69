package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/xlgrid/internal/input/key"
)

// Registry errors.
var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownAction = errors.New("unknown action")
)

// Registry manages the keymap of each mode and provides binding lookup.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds the parsed keymap by mode name.
	keymaps map[string]*ParsedKeymap
}

// NewRegistry creates an empty keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*ParsedKeymap),
	}
}

// NewDefaultRegistry creates a registry loaded with the built-in keymaps.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, km := range DefaultKeymaps() {
		if err := r.Register(km); err != nil {
			panic("keymap: invalid default keymap " + km.Name + ": " + err.Error())
		}
	}
	return r
}

// Register validates, parses and installs km as the keymap of its mode,
// replacing any previous one.
func (r *Registry) Register(km *Keymap) error {
	if _, ok := modeActions[km.Mode]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, km.Mode)
	}
	if err := km.Validate(); err != nil {
		return fmt.Errorf("keymap %s: %w", km.Name, err)
	}
	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("keymap %s: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps[km.Mode] = parsed
	return nil
}

// Override layers user bindings (key spec -> action name) on top of the
// keymap of mode. Binding to "none" removes a key.
func (r *Registry) Override(mode string, bindings map[string]string) error {
	if len(bindings) == 0 {
		return nil
	}

	r.mu.RLock()
	current, ok := r.keymaps[mode]
	r.mu.RUnlock()

	var km *Keymap
	if ok {
		km = current.Keymap.Clone()
	} else {
		km = NewKeymap(mode).ForMode(mode)
	}
	km.Source = "user"

	// Stable order so that duplicate specs resolve the same way every run.
	specs := make([]string, 0, len(bindings))
	for spec := range bindings {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	for _, spec := range specs {
		km.Add(spec, Action(bindings[spec]))
	}
	return r.Register(km)
}

// Lookup returns the binding for ev in mode.
func (r *Registry) Lookup(mode string, ev key.Event) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.keymaps[mode]
	if !ok {
		return Binding{}, false
	}
	return km.Lookup(ev)
}

// Bindings returns the active bindings of mode, sorted by category then keys.
// Unbound keys are omitted.
func (r *Registry) Bindings(mode string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.keymaps[mode]
	if !ok {
		return nil
	}
	out := make([]Binding, 0, len(km.ParsedBindings))
	for _, pb := range km.ParsedBindings {
		if pb.Action != ActionNone {
			out = append(out, pb.Binding)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}

// KeysFor returns the key specs bound to action in mode, in binding order.
func (r *Registry) KeysFor(mode string, action Action) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.keymaps[mode]
	if !ok {
		return nil
	}
	var keys []string
	for _, pb := range km.ParsedBindings {
		if pb.Action == action {
			keys = append(keys, pb.Keys)
		}
	}
	return keys
}
