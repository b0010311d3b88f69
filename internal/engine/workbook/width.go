package workbook

// Column width defaults, in terminal cells.
const (
	DefaultColumnWidth = 10
	ColumnWidthStep    = 2
	MinColumnWidth     = 3
	MaxColumnWidth     = 50
)

// WidthPolicy bounds column display widths.
type WidthPolicy struct {
	Default int
	Step    int
	Min     int
	Max     int
}

// DefaultWidthPolicy returns the built-in width bounds.
func DefaultWidthPolicy() WidthPolicy {
	return WidthPolicy{
		Default: DefaultColumnWidth,
		Step:    ColumnWidthStep,
		Min:     MinColumnWidth,
		Max:     MaxColumnWidth,
	}
}

// normalized repairs a policy so that Min <= Default <= Max and Step >= 1.
func (p WidthPolicy) normalized() WidthPolicy {
	if p.Min < 1 {
		p.Min = 1
	}
	if p.Max < p.Min {
		p.Max = p.Min
	}
	p.Default = clamp(p.Default, p.Min, p.Max)
	if p.Step < 1 {
		p.Step = 1
	}
	return p
}

// WidthChange reports the outcome of a width adjustment.
type WidthChange struct {
	// Changed is true if at least one column width changed.
	Changed bool
	// AtBound is true if any adjusted column ended at the bound.
	AtBound bool
	// Bound is the limit that was reached (Min or Max).
	Bound int
}

// ExpandColumns widens columns first..last by one step, clamped to the maximum.
func ExpandColumns(s *Sheet, first, last int) WidthChange {
	p := s.policy()
	return adjustColumns(s, first, last, p.Step, p.Max)
}

// ReduceColumns narrows columns first..last by one step, clamped to the minimum.
func ReduceColumns(s *Sheet, first, last int) WidthChange {
	p := s.policy()
	return adjustColumns(s, first, last, -p.Step, p.Min)
}

func adjustColumns(s *Sheet, first, last, delta, bound int) WidthChange {
	if first > last {
		first, last = last, first
	}
	first = clamp(first, 1, MaxColumns)
	last = clamp(last, 1, MaxColumns)

	res := WidthChange{Bound: bound}
	for col := first; col <= last; col++ {
		cur := s.ColumnWidth(col)
		next := cur + delta
		if delta > 0 {
			next = min(next, max(bound, cur))
		} else {
			next = max(next, min(bound, cur))
		}
		if next != cur {
			s.SetColumnWidth(col, next)
			res.Changed = true
		}
		if next == bound {
			res.AtBound = true
		}
	}
	return res
}
