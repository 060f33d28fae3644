package grid

import "github.com/arthur-debert/hypergrid/pkg/errors"

// Set writes a value to the cells addressed by sel. Text is broadcast over
// the target cells in row-major order, cycling when shorter than the region
// and windowing when longer; attribute mappings merge into each cell.
// Writes addressing a single cell use only the first character of the text.
//
// Fixed-size axes validate bounds before any mutation and report
// OutOfBounds; auto-expanding axes grow to fit the selection instead. An
// empty selection is a no-op.
func (g *Grid) Set(sel Sel, v Value) error {
	if err := v.validate(); err != nil {
		return err
	}

	reqHeight, err := g.requiredAxis(sel.row, g.height, g.autoHeight, "row")
	if err != nil {
		return err
	}
	reqWidth, err := g.requiredAxis(sel.col, g.width, g.autoWidth, "column")
	if err != nil {
		return err
	}
	g.grow(reqHeight, reqWidth)

	rows := resolveIndices(sel.row, g.height)
	cols := resolveIndices(sel.col, g.width)
	if len(rows) == 0 || len(cols) == 0 {
		return nil
	}

	targets := make([]int, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			targets = append(targets, g.index(r, c))
		}
	}

	if v.hasText() {
		runes := []rune(v.text)
		if len(runes) == 0 {
			runes = []rune{g.fill}
		}
		if sel.isCell() {
			g.chars[targets[0]] = runes[0]
		} else {
			for i, idx := range targets {
				g.chars[idx] = runes[i%len(runes)]
			}
		}
	}

	if v.hasAttrs() {
		for _, idx := range targets {
			if g.attrs[idx] == nil {
				g.attrs[idx] = make(map[string]string, len(v.attrs))
			}
			for k, val := range v.attrs {
				g.attrs[idx][k] = val
			}
		}
	}

	return nil
}

// requiredAxis validates one selection axis against its current length and
// returns the length the axis must have before the write. Fixed axes reject
// out-of-range points and fully outside ranges; auto axes grow instead.
func (g *Grid) requiredAxis(a axisSel, n int, auto bool, name string) (int, error) {
	if a.isPoint {
		p := a.point
		if p < 0 {
			return n, errors.Newf(errors.ErrOutOfBounds, "%s index %d is negative", name, p).
				WithDetail("index", p)
		}
		if p < n {
			return n, nil
		}
		if auto {
			return p + 1, nil
		}
		return n, errors.Newf(errors.ErrOutOfBounds, "%s index %d out of range [0, %d)", name, p, n).
			WithDetail("index", p).
			WithDetail("size", n)
	}

	if auto {
		return a.span.extent(n), nil
	}
	if _, _, outside := a.span.resolve(n); outside {
		return n, errors.Newf(errors.ErrOutOfBounds, "%s range outside [0, %d)", name, n).
			WithDetail("size", n)
	}
	return n, nil
}

// resolveIndices expands one selection axis into concrete indices against
// the (possibly grown) axis length.
func resolveIndices(a axisSel, n int) []int {
	if a.isPoint {
		if a.point >= n {
			return nil
		}
		return []int{a.point}
	}
	lo, hi, _ := a.span.resolve(n)
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
