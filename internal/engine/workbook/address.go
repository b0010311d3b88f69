package workbook

import "strconv"

// Sheet bounds (XLS limits).
const (
	MaxRows    = 65536
	MaxColumns = 256 // A through IV
)

// Address identifies a cell by 1-based row and column.
type Address struct {
	Row int
	Col int
}

// NewAddress returns the address for row and col, clamped into the sheet bounds.
func NewAddress(row, col int) Address {
	return Address{Row: row, Col: col}.Clamp()
}

// Valid reports whether the address lies inside the sheet bounds.
func (a Address) Valid() bool {
	return a.Row >= 1 && a.Row <= MaxRows && a.Col >= 1 && a.Col <= MaxColumns
}

// Clamp returns the nearest valid address.
func (a Address) Clamp() Address {
	return Address{Row: clamp(a.Row, 1, MaxRows), Col: clamp(a.Col, 1, MaxColumns)}
}

// Offset returns the address moved by dr rows and dc columns, clamped.
func (a Address) Offset(dr, dc int) Address {
	return Address{Row: a.Row + dr, Col: a.Col + dc}.Clamp()
}

// Less orders addresses by row, then column.
func (a Address) Less(b Address) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// String returns the A1-style reference, e.g. "B7".
func (a Address) String() string {
	return ColumnName(a.Col) + strconv.Itoa(a.Row)
}

// ColumnName converts a 1-based column index to its letter name (1 -> "A", 27 -> "AA").
func ColumnName(col int) string {
	if col < 1 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// Rect is an inclusive, normalized cell rectangle (Top <= Bottom, Left <= Right).
type Rect struct {
	Top, Left, Bottom, Right int
}

// RectFrom returns the rectangle spanned by two opposite corners.
func RectFrom(a, b Address) Rect {
	return Rect{
		Top:    min(a.Row, b.Row),
		Left:   min(a.Col, b.Col),
		Bottom: max(a.Row, b.Row),
		Right:  max(a.Col, b.Col),
	}
}

// CellRect returns the single-cell rectangle at a.
func CellRect(a Address) Rect {
	return Rect{Top: a.Row, Left: a.Col, Bottom: a.Row, Right: a.Col}
}

// TopLeft returns the upper-left corner.
func (r Rect) TopLeft() Address { return Address{Row: r.Top, Col: r.Left} }

// BottomRight returns the lower-right corner.
func (r Rect) BottomRight() Address { return Address{Row: r.Bottom, Col: r.Right} }

// Rows returns the rectangle height.
func (r Rect) Rows() int { return r.Bottom - r.Top + 1 }

// Cols returns the rectangle width.
func (r Rect) Cols() int { return r.Right - r.Left + 1 }

// Cells returns the number of cells covered.
func (r Rect) Cells() int { return r.Rows() * r.Cols() }

// IsSingle reports whether the rectangle covers exactly one cell.
func (r Rect) IsSingle() bool { return r.Top == r.Bottom && r.Left == r.Right }

// Contains reports whether a lies inside the rectangle.
func (r Rect) Contains(a Address) bool {
	return a.Row >= r.Top && a.Row <= r.Bottom && a.Col >= r.Left && a.Col <= r.Right
}

// Clip returns the part of the rectangle inside the sheet bounds.
// The second result is false when nothing remains.
func (r Rect) Clip() (Rect, bool) {
	c := Rect{
		Top:    max(r.Top, 1),
		Left:   max(r.Left, 1),
		Bottom: min(r.Bottom, MaxRows),
		Right:  min(r.Right, MaxColumns),
	}
	if c.Top > c.Bottom || c.Left > c.Right {
		return Rect{}, false
	}
	return c, true
}

// Each calls fn for every address in row-major order.
func (r Rect) Each(fn func(Address)) {
	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			fn(Address{Row: row, Col: col})
		}
	}
}

// String returns the A1-style range, e.g. "A1:C3", or a single reference.
func (r Rect) String() string {
	if r.IsSingle() {
		return r.TopLeft().String()
	}
	return r.TopLeft().String() + ":" + r.BottomRight().String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
