package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/input/keymap"
)

// Router routes actions to handlers using namespace prefixes, so that
// "cursor.down" goes to the handler registered for "cursor".
type Router struct {
	mu sync.RWMutex

	namespaces map[string]handler.NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// Register registers h for every action in its namespace.
func (r *Router) Register(h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[h.Namespace()] = h
}

// Route finds the handler for an action. Returns nil if none is found.
func (r *Router) Route(action keymap.Action) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ns := extractNamespace(action); ns != "" {
		if h, ok := r.namespaces[ns]; ok && h.CanHandle(action) {
			return h
		}
	}
	return nil
}

// CanRoute returns true if the router can handle the action.
func (r *Router) CanRoute(action keymap.Action) bool {
	return r.Route(action) != nil
}

// Namespaces returns the registered namespace names, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extractNamespace extracts the namespace from "namespace.action" format.
// Returns empty string if no namespace separator is found.
func extractNamespace(action keymap.Action) string {
	idx := strings.Index(string(action), ".")
	if idx < 0 {
		return ""
	}
	return string(action[:idx])
}
