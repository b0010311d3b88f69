package persist

import (
	"errors"
	"fmt"
)

// Persistence errors.
var (
	// ErrMalformed indicates a file that exists but cannot be read as a workbook.
	ErrMalformed = errors.New("malformed workbook")

	// ErrNoSheets indicates an attempt to save a workbook without sheets.
	ErrNoSheets = errors.New("workbook has no sheets")
)

// OperationError represents an error that occurred during a load or save.
type OperationError struct {
	Op     string // "load" or "save"
	Target string // file path
	Err    error  // underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
