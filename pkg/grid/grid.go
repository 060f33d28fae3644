// Package grid implements a monospace character grid with range-based
// addressing, value broadcasting, and per-cell attribute mappings. A grid
// stores characters and attributes in two parallel row-major buffers that
// always share dimensions; renderers read the grid but never write back.
package grid

import (
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hypergrid/pkg/config"
	"github.com/arthur-debert/hypergrid/pkg/errors"
	"github.com/arthur-debert/hypergrid/pkg/logging"
)

// Grid is a rectangular surface of cells, each holding one character and
// one attribute mapping. Coordinates are (row, col) with the origin at the
// top left. A grid created with auto-expanding axes grows to the bounding
// box of every write; dimensions never shrink.
//
// A Grid is not safe for concurrent mutation. Renders are read-only and may
// run concurrently with each other, but not with writes.
type Grid struct {
	width, height         int
	autoWidth, autoHeight bool
	fill                  rune

	chars []rune
	attrs []map[string]string

	border        bool
	borderPadding int
	borderAttrs   map[string]string
	title         string

	curRow, curCol int

	log zerolog.Logger
}

// New creates a grid from construction options. When border and a title are
// both set, the width grows as needed so the decorated title fits the top
// frame line.
func New(opts config.Options) (*Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		autoWidth:     opts.AutoWidth(),
		autoHeight:    opts.AutoHeight(),
		fill:          opts.FillRune(),
		border:        opts.Border,
		borderPadding: opts.BorderPadding,
		title:         opts.Title,
		log:           logging.GetLogger("grid"),
	}
	if opts.BorderAttrs != nil {
		g.borderAttrs = make(map[string]string, len(opts.BorderAttrs))
		for k, v := range opts.BorderAttrs {
			g.borderAttrs[k] = v
		}
	}

	width, height := opts.Width, opts.Height
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	// The inline title format is "- TITLE -", flanked by one frame dash on
	// the left and at least one on the right, all inside the two corners.
	if g.border && g.title != "" {
		minInner := utf8.RuneCountInString(" "+g.title+" ") + 2
		if needed := minInner - 2*g.borderPadding; width < needed {
			width = needed
		}
	}

	g.width = width
	g.height = height
	g.chars = make([]rune, width*height)
	for i := range g.chars {
		g.chars[i] = g.fill
	}
	g.attrs = make([]map[string]string, width*height)

	g.log.Debug().
		Int("width", width).
		Int("height", height).
		Bool("autoWidth", g.autoWidth).
		Bool("autoHeight", g.autoHeight).
		Msg("Grid created")
	return g, nil
}

// MustNew is New for defaults known to be valid; it panics on error.
func MustNew(opts config.Options) *Grid {
	g, err := New(opts)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the current number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the current number of rows.
func (g *Grid) Height() int { return g.height }

// FillChar returns the character used for unwritten cells.
func (g *Grid) FillChar() rune { return g.fill }

// Border reports whether the grid renders with a frame.
func (g *Grid) Border() bool { return g.border }

// BorderPadding returns the fill rows/cols between content and frame.
func (g *Grid) BorderPadding() int { return g.borderPadding }

// BorderAttrs returns the attribute mapping applied to frame cells. The
// returned map is shared with the grid and must not be modified.
func (g *Grid) BorderAttrs() map[string]string { return g.borderAttrs }

// Title returns the frame title. When the grid renders with a border the
// title sits inline near the left corner of the top frame line, flanked by
// frame dashes, not centered.
func (g *Grid) Title() string { return g.title }

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// inBounds reports whether (row, col) addresses a stored cell.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the character and attribute mapping of one cell without bounds
// checking or copying; callers must stay within Width/Height. The returned
// map is shared with the grid and must not be modified. Unwritten cells
// return a nil map.
func (g *Grid) At(row, col int) (rune, map[string]string) {
	i := g.index(row, col)
	return g.chars[i], g.attrs[i]
}

// Get returns a copy of the character and attribute mapping at one cell.
func (g *Grid) Get(row, col int) (rune, map[string]string, error) {
	if !g.inBounds(row, col) {
		return 0, nil, errors.Newf(errors.ErrOutOfBounds, "position (%d, %d) out of bounds", row, col).
			WithDetail("row", row).
			WithDetail("col", col).
			WithDetail("width", g.width).
			WithDetail("height", g.height)
	}
	i := g.index(row, col)
	return g.chars[i], copyAttrs(g.attrs[i]), nil
}

// GetRow returns the characters of one row as a string together with a copy
// of each cell's attribute mapping.
func (g *Grid) GetRow(row int) (string, []map[string]string, error) {
	return g.GetRowSpan(row, All())
}

// GetCol returns the characters of one column, top to bottom, together with
// a copy of each cell's attribute mapping.
func (g *Grid) GetCol(col int) (string, []map[string]string, error) {
	return g.GetColSpan(All(), col)
}

// GetRowSpan returns a slice of one row. The span clamps to the grid.
func (g *Grid) GetRowSpan(row int, cols Span) (string, []map[string]string, error) {
	if row < 0 || row >= g.height {
		return "", nil, errors.Newf(errors.ErrOutOfBounds, "row %d out of range [0, %d)", row, g.height).
			WithDetail("row", row).
			WithDetail("height", g.height)
	}
	lo, hi, _ := cols.resolve(g.width)
	runes := make([]rune, 0, hi-lo)
	attrs := make([]map[string]string, 0, hi-lo)
	for c := lo; c < hi; c++ {
		i := g.index(row, c)
		runes = append(runes, g.chars[i])
		attrs = append(attrs, copyAttrs(g.attrs[i]))
	}
	return string(runes), attrs, nil
}

// GetColSpan returns a slice of one column. The span clamps to the grid.
func (g *Grid) GetColSpan(rows Span, col int) (string, []map[string]string, error) {
	if col < 0 || col >= g.width {
		return "", nil, errors.Newf(errors.ErrOutOfBounds, "column %d out of range [0, %d)", col, g.width).
			WithDetail("col", col).
			WithDetail("width", g.width)
	}
	lo, hi, _ := rows.resolve(g.height)
	runes := make([]rune, 0, hi-lo)
	attrs := make([]map[string]string, 0, hi-lo)
	for r := lo; r < hi; r++ {
		i := g.index(r, col)
		runes = append(runes, g.chars[i])
		attrs = append(attrs, copyAttrs(g.attrs[i]))
	}
	return string(runes), attrs, nil
}

// GetRect returns a rectangular region, one string per row, with a matching
// nested slice of attribute copies. Both spans clamp to the grid.
func (g *Grid) GetRect(rows, cols Span) ([]string, [][]map[string]string, error) {
	rlo, rhi, _ := rows.resolve(g.height)
	clo, chi, _ := cols.resolve(g.width)
	lines := make([]string, 0, rhi-rlo)
	attrs := make([][]map[string]string, 0, rhi-rlo)
	for r := rlo; r < rhi; r++ {
		runes := make([]rune, 0, chi-clo)
		rowAttrs := make([]map[string]string, 0, chi-clo)
		for c := clo; c < chi; c++ {
			i := g.index(r, c)
			runes = append(runes, g.chars[i])
			rowAttrs = append(rowAttrs, copyAttrs(g.attrs[i]))
		}
		lines = append(lines, string(runes))
		attrs = append(attrs, rowAttrs)
	}
	return lines, attrs, nil
}

// grow extends the grid to at least newHeight x newWidth, filling new cells
// with the fill character and empty attributes. Existing content keeps its
// coordinates.
func (g *Grid) grow(newHeight, newWidth int) {
	if newWidth <= g.width && newHeight <= g.height {
		return
	}
	if newWidth < g.width {
		newWidth = g.width
	}
	if newHeight < g.height {
		newHeight = g.height
	}

	chars := make([]rune, newWidth*newHeight)
	attrs := make([]map[string]string, newWidth*newHeight)
	for i := range chars {
		chars[i] = g.fill
	}
	for r := 0; r < g.height; r++ {
		copy(chars[r*newWidth:], g.chars[r*g.width:(r+1)*g.width])
		copy(attrs[r*newWidth:], g.attrs[r*g.width:(r+1)*g.width])
	}

	g.log.Debug().
		Int("fromWidth", g.width).
		Int("fromHeight", g.height).
		Int("toWidth", newWidth).
		Int("toHeight", newHeight).
		Msg("Grid expanded")

	g.width = newWidth
	g.height = newHeight
	g.chars = chars
	g.attrs = attrs
}

// copyAttrs returns an independent copy of a cell attribute mapping.
// Unwritten cells yield an empty, non-nil map.
func copyAttrs(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
