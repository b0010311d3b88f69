package session

import "github.com/dshills/xlgrid/internal/engine/workbook"

// ViewState is the part of a session worth restoring on the next run:
// the active sheet and where each sheet's cursor was.
type ViewState struct {
	Active string               `json:"active"`
	Sheets map[string]SheetView `json:"sheets"`
}

// SheetView is one sheet's saved cursor and scroll origin.
type SheetView struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Top  int `json:"top"`
	Left int `json:"left"`
}

// ViewState captures the current view positions keyed by sheet name.
func (s *Session) ViewState() ViewState {
	vs := ViewState{
		Active: s.Sheet().Name(),
		Sheets: make(map[string]SheetView, s.book.SheetCount()),
	}
	for i, name := range s.book.SheetNames() {
		if i >= len(s.views) || s.views[i] == nil {
			continue
		}
		v := s.views[i]
		f := v.Focus()
		vs.Sheets[name] = SheetView{Row: f.Row, Col: f.Col, Top: v.Top, Left: v.Left}
	}
	return vs
}

// RestoreViewState applies a saved state. Sheets that no longer exist are
// ignored; positions are clamped to the sheet bounds.
func (s *Session) RestoreViewState(vs ViewState) {
	for name, sv := range vs.Sheets {
		_, idx := s.book.SheetByName(name)
		if idx < 0 {
			continue
		}
		s.viewAt(idx).Restore(workbook.Address{Row: sv.Row, Col: sv.Col}, sv.Top, sv.Left)
	}
	if _, idx := s.book.SheetByName(vs.Active); idx >= 0 {
		s.active = idx
	}
	s.follow()
}
