package grid

// Span selects a run of indices along one axis. Endpoints may be omitted
// (open ends), negative (counted from the end), or beyond the axis, and are
// normalized against the axis length the way slice ranges are: clamped to
// valid bounds, with reversed or empty ranges yielding zero cells.
type Span struct {
	start, stop       int
	hasStart, hasStop bool
}

// All selects every index along the axis.
func All() Span {
	return Span{}
}

// From selects indices from start to the end of the axis.
func From(start int) Span {
	return Span{start: start, hasStart: true}
}

// To selects indices from the origin up to, but not including, stop.
func To(stop int) Span {
	return Span{stop: stop, hasStop: true}
}

// Between selects the half-open range [start, stop).
func Between(start, stop int) Span {
	return Span{start: start, stop: stop, hasStart: true, hasStop: true}
}

// resolve normalizes the span against an axis of length n, returning the
// clamped half-open range [lo, hi). outside is true when an explicit
// endpoint places the whole range beyond the axis, which fixed-size grids
// report as an error instead of clamping.
func (s Span) resolve(n int) (lo, hi int, outside bool) {
	lo = 0
	if s.hasStart {
		lo = s.start
		if lo < 0 {
			lo += n
		}
		if lo > n {
			outside = true
		}
	}
	hi = n
	if s.hasStop {
		hi = s.stop
		if hi < 0 {
			hi += n
		}
		if hi < 0 {
			outside = true
		}
	}
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if hi < 0 {
		hi = 0
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, outside
}

// extent returns the axis length implied by the span's explicit
// non-negative endpoints, used to grow auto-expanding axes before a write.
// Open ends and negative endpoints resolve against the current length and
// never force growth.
func (s Span) extent(n int) int {
	req := n
	if s.hasStart && s.start > req {
		req = s.start
	}
	if s.hasStop && s.stop > req {
		req = s.stop
	}
	return req
}

// axisSel is one axis of a selection: either a single index or a span.
type axisSel struct {
	point   int
	span    Span
	isPoint bool
}

// Sel addresses a set of target cells: a single cell, a whole row or
// column, a 1D slice of either, or a rectangular region. Target cells are
// always ordered row-major.
type Sel struct {
	row, col axisSel
}

// Pos addresses the single cell at (row, col).
func Pos(row, col int) Sel {
	return Sel{
		row: axisSel{point: row, isPoint: true},
		col: axisSel{point: col, isPoint: true},
	}
}

// Row addresses every cell of one row.
func Row(row int) Sel {
	return Sel{
		row: axisSel{point: row, isPoint: true},
		col: axisSel{span: All()},
	}
}

// Column addresses every cell of one column.
func Column(col int) Sel {
	return Sel{
		row: axisSel{span: All()},
		col: axisSel{point: col, isPoint: true},
	}
}

// RowSpan addresses a slice of one row.
func RowSpan(row int, cols Span) Sel {
	return Sel{
		row: axisSel{point: row, isPoint: true},
		col: axisSel{span: cols},
	}
}

// ColSpan addresses a slice of one column.
func ColSpan(rows Span, col int) Sel {
	return Sel{
		row: axisSel{span: rows},
		col: axisSel{point: col, isPoint: true},
	}
}

// Rect addresses a rectangular region.
func Rect(rows, cols Span) Sel {
	return Sel{
		row: axisSel{span: rows},
		col: axisSel{span: cols},
	}
}

// isCell reports whether the selection addresses exactly one coordinate,
// which changes text writes to use only the first character.
func (s Sel) isCell() bool {
	return s.row.isPoint && s.col.isPoint
}
