package backend

import "errors"

// ErrQueueFull is returned by PostEvent when the event queue cannot accept
// another event.
var ErrQueueFull = errors.New("event queue full")
