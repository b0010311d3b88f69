package session

// SwitchSheet activates the neighbouring sheet (delta -1 or +1).
// There is no wrap-around: at either end it is a no-op and returns false.
func (s *Session) SwitchSheet(delta int) bool {
	next := s.active + delta
	if delta == 0 || next < 0 || next >= s.book.SheetCount() {
		return false
	}
	s.activate(next)
	return true
}

// SwitchTo activates the sheet at index.
func (s *Session) SwitchTo(index int) bool {
	if index < 0 || index >= s.book.SheetCount() {
		return false
	}
	s.activate(index)
	return true
}

func (s *Session) activate(index int) {
	s.active = index
	s.follow()
}

// OpenSelector enters SheetSelect with the active sheet highlighted.
func (s *Session) OpenSelector() {
	if _, ok := s.mode.(Browse); !ok {
		return
	}
	s.mode = SheetSelect{Index: s.active}
}

// SelectorMove moves the highlight by delta, clamped to the sheet list.
func (s *Session) SelectorMove(delta int) {
	sel, ok := s.mode.(SheetSelect)
	if !ok {
		return
	}
	sel.Index = min(max(sel.Index+delta, 0), s.book.SheetCount()-1)
	s.mode = sel
}

// SelectorConfirm activates the highlighted sheet and returns to Browse.
func (s *Session) SelectorConfirm() {
	sel, ok := s.mode.(SheetSelect)
	if !ok {
		return
	}
	s.mode = Browse{}
	s.SwitchTo(sel.Index)
}

// SelectorCancel closes the selector without switching.
func (s *Session) SelectorCancel() {
	if _, ok := s.mode.(SheetSelect); ok {
		s.mode = Browse{}
	}
}
