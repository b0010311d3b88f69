package workbook

// ApplyStyle sets tag on every cell of r and returns the number of cells marked.
// The rectangle is clipped to the sheet bounds. TagNone resets cells to the
// default style and is legal on empty cells.
func ApplyStyle(s *Sheet, r Rect, tag StyleTag) int {
	if !tag.Valid() {
		return 0
	}
	r, ok := r.Clip()
	if !ok {
		return 0
	}
	if tag == TagNone {
		// Only stored cells can carry a tag; skip scanning empty space.
		for addr := range s.cells {
			if r.Contains(addr) {
				s.SetStyle(addr, TagNone)
			}
		}
		return r.Cells()
	}
	r.Each(func(a Address) {
		s.SetStyle(a, tag)
	})
	return r.Cells()
}
