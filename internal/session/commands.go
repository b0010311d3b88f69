package session

import (
	"fmt"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// Copy snapshots the selection (or cursor cell) into the clipboard.
func (s *Session) Copy() int {
	n, err := s.clip.Copy(s.Sheet(), s.View().Target())
	if err != nil {
		s.status = "Error: " + err.Error()
		return 0
	}
	s.status = fmt.Sprintf("Copied %d cell(s)", n)
	if s.onCopy != nil && n > 0 {
		s.onCopy(s.clip.Text())
	}
	return n
}

// Paste writes the clipboard at the cursor. Returns the rectangle written.
func (s *Session) Paste() (workbook.Rect, bool) {
	if s.clip.Empty() {
		s.status = "Clipboard is empty"
		return workbook.Rect{}, false
	}
	written, ok := s.clip.Paste(s.Sheet(), s.View().Focus())
	s.status = fmt.Sprintf("Pasted %dx%d cells", written.Rows(), written.Cols())
	return written, ok
}

// Mark applies tag to the selection (or cursor cell).
func (s *Session) Mark(tag workbook.StyleTag) int {
	n := workbook.ApplyStyle(s.Sheet(), s.View().Target(), tag)
	s.status = fmt.Sprintf("Marked %d cell(s): %s", n, tag.Label())
	return n
}

// Widen grows the selected columns (or the cursor column) by one step.
func (s *Session) Widen() workbook.WidthChange {
	r := s.View().Target()
	res := workbook.ExpandColumns(s.Sheet(), r.Left, r.Right)
	if res.AtBound {
		s.status = fmt.Sprintf("Column width at maximum (%d)", res.Bound)
	}
	s.follow()
	return res
}

// Narrow shrinks the selected columns (or the cursor column) by one step.
func (s *Session) Narrow() workbook.WidthChange {
	r := s.View().Target()
	res := workbook.ReduceColumns(s.Sheet(), r.Left, r.Right)
	if res.AtBound {
		s.status = fmt.Sprintf("Column width at minimum (%d)", res.Bound)
	}
	s.follow()
	return res
}

// Save writes the workbook through the Saver. On success the dirty flag is
// cleared; on failure the model and dirty flag are left as they were.
func (s *Session) Save() error {
	if s.path == "" {
		s.status = "Error: " + ErrNoPath.Error()
		return ErrNoPath
	}
	if s.saver == nil {
		err := fmt.Errorf("save %s: no saver configured", s.path)
		s.status = "Error: " + err.Error()
		return err
	}
	if err := s.saver.Save(s.book, s.path); err != nil {
		s.status = "Error: " + err.Error()
		return err
	}
	s.book.MarkClean()
	s.status = "Saved: " + s.path
	return nil
}
