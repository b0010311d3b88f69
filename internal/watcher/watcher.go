// Package watcher reports external changes to the open workbook file.
//
// The file's directory is watched rather than the file itself, because
// spreadsheet programs (and xlgrid's own save) replace the file by
// renaming a new one over it, which ends a watch on the old inode. Bursts
// of events are coalesced into one.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation set.
func (op Op) String() string {
	if op == 0 {
		return "NONE"
	}
	var parts []string
	for _, o := range []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
	} {
		if op.Has(o.op) {
			parts = append(parts, o.name)
		}
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is every operation seen in the coalesced burst.
	Op Op

	// Timestamp is when the last event of the burst occurred.
	Timestamp time.Time
}

// Config holds watcher options.
type Config struct {
	// Debounce is how long the file must be quiet before an event is sent.
	Debounce time.Duration

	// BufferSize is the capacity of the event channel.
	BufferSize int
}

// DefaultConfig returns the default watcher options.
func DefaultConfig() Config {
	return Config{
		Debounce:   150 * time.Millisecond,
		BufferSize: 8,
	}
}

// Option configures a watcher.
type Option func(*Config)

// WithDebounce sets the quiet period before an event is sent.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.Debounce = d
		}
	}
}
