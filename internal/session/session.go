// Package session implements the grid session controller: the workbook,
// per-sheet cursor state, clipboard, edit mode and the commands that act on
// them. It consumes named operations and produces a RenderModel; it knows
// nothing about terminals or file formats.
package session

import (
	"errors"

	"github.com/dshills/xlgrid/internal/engine/clipboard"
	"github.com/dshills/xlgrid/internal/engine/cursor"
	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// ErrNoPath is returned by Save when the session has no file path.
var ErrNoPath = errors.New("no file path")

// Saver persists a workbook to path.
type Saver interface {
	Save(wb *workbook.Workbook, path string) error
}

// Options configures a Session.
type Options struct {
	// Path is the workbook file path shown in the header and used by Save.
	Path string

	// Saver writes the workbook. Save fails with an error status when nil.
	Saver Saver

	// OnCopy, if set, receives the tab-separated text of every copy.
	OnCopy func(text string)
}

// Session is the controller for one open workbook.
// A Session is not safe for concurrent use; the event loop owns it.
type Session struct {
	book  *workbook.Workbook
	path  string
	saver Saver

	views  []*cursor.View
	active int
	mode   Mode

	clip   *clipboard.Clipboard
	onCopy func(string)

	status string

	// Drawable grid size: rows of cells and columns of terminal width.
	viewRows  int
	viewWidth int
}

// New creates a session over wb. A nil wb starts a fresh single-sheet workbook.
func New(wb *workbook.Workbook, opts Options) *Session {
	if wb == nil {
		wb = workbook.NewDefault()
	}
	s := &Session{
		book:      wb,
		path:      opts.Path,
		saver:     opts.Saver,
		mode:      Browse{},
		clip:      clipboard.New(),
		onCopy:    opts.OnCopy,
		viewRows:  20,
		viewWidth: 80,
	}
	s.views = make([]*cursor.View, wb.SheetCount())
	return s
}

// Workbook returns the document.
func (s *Session) Workbook() *workbook.Workbook {
	return s.book
}

// Path returns the workbook file path.
func (s *Session) Path() string {
	return s.path
}

// Dirty reports whether the workbook has unsaved changes.
func (s *Session) Dirty() bool {
	return s.book.Dirty()
}

// Mode returns the current mode variant.
func (s *Session) Mode() Mode {
	return s.mode
}

// ActiveIndex returns the index of the active sheet.
func (s *Session) ActiveIndex() int {
	return s.active
}

// Sheet returns the active sheet.
func (s *Session) Sheet() *workbook.Sheet {
	return s.book.Sheet(s.active)
}

// View returns the cursor state of the active sheet.
func (s *Session) View() *cursor.View {
	return s.viewAt(s.active)
}

// Clipboard returns the session clipboard.
func (s *Session) Clipboard() *clipboard.Clipboard {
	return s.clip
}

// Status returns the transient status message.
func (s *Session) Status() string {
	return s.status
}

// SetStatus replaces the status message.
func (s *Session) SetStatus(msg string) {
	s.status = msg
}

// ClearStatus drops the status message. Called on every key press.
func (s *Session) ClearStatus() {
	s.status = ""
}

// SetViewport sets the drawable grid size in cell rows and terminal columns
// (excluding the row number gutter) and re-scrolls to keep the cursor visible.
func (s *Session) SetViewport(rows, width int) {
	s.viewRows = max(rows, 1)
	s.viewWidth = max(width, 1)
	s.follow()
}

func (s *Session) viewAt(i int) *cursor.View {
	for len(s.views) < s.book.SheetCount() {
		s.views = append(s.views, nil)
	}
	if i < 0 || i >= len(s.views) {
		return cursor.NewView()
	}
	if s.views[i] == nil {
		s.views[i] = cursor.NewView()
	}
	return s.views[i]
}

// follow scrolls the active view so the cursor stays inside the viewport.
func (s *Session) follow() {
	sheet := s.Sheet()
	s.View().Follow(s.viewRows, func(left, col int) bool {
		used := 0
		for c := left; c <= col; c++ {
			used += sheet.ColumnWidth(c) + 1
		}
		return used <= s.viewWidth
	})
}
