package dispatcher

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/dshills/xlgrid/internal/dispatcher/handler"
	"github.com/dshills/xlgrid/internal/dispatcher/handlers/cursor"
	"github.com/dshills/xlgrid/internal/dispatcher/handlers/editor"
	"github.com/dshills/xlgrid/internal/dispatcher/handlers/file"
	"github.com/dshills/xlgrid/internal/dispatcher/handlers/grid"
	"github.com/dshills/xlgrid/internal/dispatcher/handlers/sheet"
	"github.com/dshills/xlgrid/internal/input/key"
	"github.com/dshills/xlgrid/internal/input/keymap"
	"github.com/dshills/xlgrid/internal/session"
)

// ActionTextInput is reported for a printable key typed while editing.
// It has no binding; unbound printable runes in edit mode insert themselves.
const ActionTextInput keymap.Action = "edit.insert"

// Result is the outcome of dispatching one key event.
type Result struct {
	// Action is the action the key resolved to, empty when ignored.
	Action keymap.Action

	// Handled is false when the key had no meaning in the current mode.
	Handled bool

	// Status is the handler outcome.
	Status handler.ResultStatus

	// Quit is set when the user asked to leave.
	Quit bool

	// Unsaved is set with Quit when the workbook has unsaved changes.
	Unsaved bool

	// Err carries a handler failure such as a failed save.
	Err error
}

// Dispatcher turns key events into session operations. It resolves a key
// through the keymap for the session's current mode and routes the action
// to the namespace handler that owns it.
type Dispatcher struct {
	config  Config
	keys    *keymap.Registry
	router  *Router
	metrics *Metrics
}

// New creates a dispatcher over keys with every built-in handler registered.
func New(config Config, keys *keymap.Registry) *Dispatcher {
	d := &Dispatcher{
		config: config,
		keys:   keys,
		router: NewRouter(),
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	for _, h := range DefaultHandlers() {
		d.router.Register(h)
	}
	return d
}

// NewWithDefaults creates a dispatcher with the default keymaps and config.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig(), keymap.NewDefaultRegistry())
}

// DefaultHandlers returns one handler per action namespace.
func DefaultHandlers() []handler.NamespaceHandler {
	return []handler.NamespaceHandler{
		cursor.NewHandler(),
		cursor.NewSelectionHandler(),
		grid.NewCellHandler(),
		grid.NewStyleHandler(),
		grid.NewColumnHandler(),
		grid.NewClipboardHandler(),
		sheet.NewHandler(),
		sheet.NewSelectorHandler(),
		editor.NewHandler(),
		file.NewHandler(),
		file.NewAppHandler(),
	}
}

// Dispatch handles one key event against s. Every key clears the previous
// status message. Keys with no binding in the current mode are ignored,
// except printable runes while editing, which are typed into the cell.
func (d *Dispatcher) Dispatch(s *session.Session, ev key.Event) Result {
	s.ClearStatus()
	mode := s.Mode().Kind().String()

	b, ok := d.keys.Lookup(mode, ev)
	if !ok || !keymap.ValidAction(mode, b.Action) {
		if s.Mode().Kind() == session.KindEditing && ev.IsChar() {
			s.EditInsert(string(ev.Rune))
			return Result{Action: ActionTextInput, Handled: true, Status: handler.StatusOK}
		}
		if d.metrics != nil {
			d.metrics.RecordIgnored()
		}
		return Result{Status: handler.StatusNoOp}
	}

	h := d.router.Route(b.Action)
	if h == nil {
		return Result{
			Action: b.Action,
			Status: handler.StatusError,
			Err:    fmt.Errorf("%w: %s", ErrNoHandler, b.Action),
		}
	}

	start := time.Now()
	res := d.execute(h, b.Action, s)
	if d.metrics != nil {
		d.metrics.RecordDispatch(b.Action, time.Since(start), res.Status)
	}

	out := Result{
		Action:  b.Action,
		Handled: true,
		Status:  res.Status,
		Quit:    res.Quit,
		Err:     res.Error,
	}
	if res.Quit {
		out.Unsaved = s.Dirty()
	}
	return out
}

func (d *Dispatcher) execute(h handler.Handler, action keymap.Action, s *session.Session) (res handler.Result) {
	if !d.config.RecoverFromPanic {
		return h.Handle(action, s)
	}
	defer func() {
		if r := recover(); r != nil {
			if d.metrics != nil {
				d.metrics.RecordPanic(action)
			}
			res = handler.Error(&PanicError{Action: action, Value: r, Stack: string(debug.Stack())})
		}
	}()
	return h.Handle(action, s)
}

// Keys returns the keymap registry.
func (d *Dispatcher) Keys() *keymap.Registry {
	return d.keys
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}
