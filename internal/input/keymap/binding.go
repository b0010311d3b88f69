package keymap

import "github.com/dshills/xlgrid/internal/input/key"

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "w", "W", "C-s", "<C-Home>", "Shift+Up"
	Keys string

	// Action is the command to execute.
	Action Action

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys string, action Action) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ParsedBinding is a binding with a pre-parsed key event.
type ParsedBinding struct {
	Binding
	Event key.Event
}

// Match checks if this binding matches the given event.
func (pb ParsedBinding) Match(ev key.Event) bool {
	return pb.Event.Equals(ev.Normalize())
}
