package workbook

import "sort"

// Cell is the content of one grid position.
type Cell struct {
	// Value is the displayed text. For formula cells it holds the cached result.
	Value string

	// Formula is the formula text without the leading '=' (empty for plain cells).
	Formula string

	// Style is the visual mark applied to the cell.
	Style StyleTag
}

// IsZero reports whether the cell carries nothing worth storing.
func (c Cell) IsZero() bool {
	return c.Value == "" && c.Formula == "" && c.Style == TagNone
}

// IsFormula reports whether the cell holds a formula.
func (c Cell) IsFormula() bool {
	return c.Formula != ""
}

// Sheet is a single named grid of sparse cells.
type Sheet struct {
	name   string
	cells  map[Address]Cell
	widths map[int]int
	book   *Workbook

	// Used range bounds; stale is set when a boundary cell was removed.
	maxRow int
	maxCol int
	stale  bool
}

func newSheet(name string, book *Workbook) *Sheet {
	return &Sheet{
		name:   name,
		cells:  make(map[Address]Cell),
		widths: make(map[int]int),
		book:   book,
	}
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Cell returns the cell at addr and whether one is stored there.
func (s *Sheet) Cell(addr Address) (Cell, bool) {
	c, ok := s.cells[addr]
	return c, ok
}

// Value returns the text at addr, or "" for an empty cell.
func (s *Sheet) Value(addr Address) string {
	return s.cells[addr].Value
}

// Style returns the tag at addr, or TagNone for an empty cell.
func (s *Sheet) Style(addr Address) StyleTag {
	return s.cells[addr].Style
}

// Len returns the number of stored (non-empty or styled) cells.
func (s *Sheet) Len() int {
	return len(s.cells)
}

// SetValue writes plain text at addr, dropping any formula there.
// Writing "" to an unstyled cell removes it. Returns false if addr is invalid.
func (s *Sheet) SetValue(addr Address, value string) bool {
	if !addr.Valid() {
		return false
	}
	c := s.cells[addr]
	c.Value = value
	c.Formula = ""
	s.store(addr, c)
	return true
}

// SetStyle sets the tag at addr. TagNone on an empty cell is a legal no-op.
// Returns false if addr is invalid or tag unknown.
func (s *Sheet) SetStyle(addr Address, tag StyleTag) bool {
	if !addr.Valid() || !tag.Valid() {
		return false
	}
	c := s.cells[addr]
	c.Style = tag
	s.store(addr, c)
	return true
}

// SetCell replaces the whole cell at addr. Returns false if addr is invalid.
func (s *Sheet) SetCell(addr Address, c Cell) bool {
	if !addr.Valid() || !c.Style.Valid() {
		return false
	}
	s.store(addr, c)
	return true
}

// Clear removes the cell at addr, value and style.
func (s *Sheet) Clear(addr Address) {
	if _, ok := s.cells[addr]; ok {
		s.store(addr, Cell{})
	}
}

func (s *Sheet) store(addr Address, c Cell) {
	old, existed := s.cells[addr]
	if existed && old == c {
		return
	}
	if c.IsZero() {
		if !existed {
			return
		}
		delete(s.cells, addr)
		if addr.Row == s.maxRow || addr.Col == s.maxCol {
			s.stale = true
		}
	} else {
		s.cells[addr] = c
		if !s.stale {
			s.maxRow = max(s.maxRow, addr.Row)
			s.maxCol = max(s.maxCol, addr.Col)
		}
	}
	s.touch()
}

// UsedRange returns the largest row and column holding a stored cell,
// or (0, 0) for an empty sheet.
func (s *Sheet) UsedRange() (maxRow, maxCol int) {
	if s.stale {
		s.maxRow, s.maxCol = 0, 0
		for addr := range s.cells {
			s.maxRow = max(s.maxRow, addr.Row)
			s.maxCol = max(s.maxCol, addr.Col)
		}
		s.stale = false
	}
	return s.maxRow, s.maxCol
}

// Addresses returns every stored address in row-major order.
func (s *Sheet) Addresses() []Address {
	out := make([]Address, 0, len(s.cells))
	for addr := range s.cells {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ColumnWidth returns the display width of col.
func (s *Sheet) ColumnWidth(col int) int {
	if w, ok := s.widths[col]; ok {
		return w
	}
	return s.policy().Default
}

// SetColumnWidth stores a width for col, clamped to the width policy bounds.
// Setting the default width forgets the override.
func (s *Sheet) SetColumnWidth(col, width int) {
	if col < 1 || col > MaxColumns {
		return
	}
	p := s.policy()
	width = clamp(width, p.Min, p.Max)
	old, had := s.widths[col]
	switch {
	case width == p.Default && had:
		delete(s.widths, col)
	case width == p.Default:
		return
	case had && old == width:
		return
	default:
		s.widths[col] = width
	}
	s.touch()
}

// CustomWidths returns a copy of the explicit column widths.
func (s *Sheet) CustomWidths() map[int]int {
	out := make(map[int]int, len(s.widths))
	for col, w := range s.widths {
		out[col] = w
	}
	return out
}

func (s *Sheet) policy() WidthPolicy {
	if s.book == nil {
		return DefaultWidthPolicy()
	}
	return s.book.widths
}

func (s *Sheet) touch() {
	if s.book != nil {
		s.book.dirty = true
	}
}
