package dispatcher

import (
	"errors"
	"fmt"

	"github.com/dshills/xlgrid/internal/input/keymap"
)

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler was found for a bound action.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)

// PanicError is a recovered handler panic. Error omits the stack so the
// message fits the status line; log Stack separately.
type PanicError struct {
	Action keymap.Action
	Value  any
	Stack  string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrPanic, e.Action, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}
