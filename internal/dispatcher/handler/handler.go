// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action against the session and returns a result.
	Handle(action keymap.Action, s *session.Session) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(action keymap.Action) bool
}

// NamespaceHandler handles every action under one namespace prefix,
// such as "cursor" for "cursor.up".
type NamespaceHandler interface {
	Handler

	// Namespace returns the prefix this handler owns.
	Namespace() string
}

// HandlerFunc is a function adapter for the Handler interface.
type HandlerFunc func(action keymap.Action, s *session.Session) Result

// Handle implements Handler.
func (f HandlerFunc) Handle(action keymap.Action, s *session.Session) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(action, s)
}

// CanHandle implements Handler. A HandlerFunc accepts every action;
// the caller must route correctly.
func (f HandlerFunc) CanHandle(keymap.Action) bool {
	return true
}
