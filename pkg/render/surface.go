// Package render turns a grid into terminal escape-sequence output or a
// styled HTML document. Both backends walk the same effective surface: the
// stored cells, optionally wrapped at render time in a frame with padding
// and an inline title. Rendering never mutates the grid.
package render

import (
	"github.com/arthur-debert/hypergrid/pkg/grid"
)

// Frame characters used for the border.
const (
	cornerTopLeft     = '╭'
	cornerTopRight    = '╮'
	cornerBottomLeft  = '╰'
	cornerBottomRight = '╯'
	edgeHorizontal    = '─'
	edgeVertical      = '│'
)

// Surface is the cell sequence a renderer walks: either the grid content
// itself, or the content wrapped in a synthesized frame when the grid's
// border is enabled. Frame and padding cells are computed on demand; no
// second grid is materialized.
type Surface struct {
	g      *grid.Grid
	framed bool
	inset  int
	width  int
	height int

	top    []rune
	bottom []rune
	battrs map[string]string
}

// NewSurface builds the effective rendering surface for a grid. With a
// border the surface gains one frame line plus padding on every side;
// without one it is the stored content unchanged.
func NewSurface(g *grid.Grid) *Surface {
	s := &Surface{g: g, width: g.Width(), height: g.Height()}
	if !g.Border() {
		return s
	}
	s.framed = true
	s.inset = 1 + g.BorderPadding()
	s.width = g.Width() + 2*s.inset
	s.height = g.Height() + 2*s.inset
	s.battrs = g.BorderAttrs()
	s.top = topFrameLine(s.width, g.Title())
	s.bottom = frameLine(s.width, cornerBottomLeft, cornerBottomRight)
	return s
}

// Width returns the effective surface width.
func (s *Surface) Width() int { return s.width }

// Height returns the effective surface height.
func (s *Surface) Height() int { return s.height }

// Cell returns the character and attribute mapping at one surface
// position. Frame cells carry the grid's border attributes, padding cells
// the fill character with no attributes. The returned map is shared and
// must not be modified.
func (s *Surface) Cell(row, col int) (rune, map[string]string) {
	if !s.framed {
		return s.g.At(row, col)
	}
	switch {
	case row == 0:
		return s.top[col], s.battrs
	case row == s.height-1:
		return s.bottom[col], s.battrs
	case col == 0 || col == s.width-1:
		return edgeVertical, s.battrs
	}
	r, c := row-s.inset, col-s.inset
	if r < 0 || r >= s.g.Height() || c < 0 || c >= s.g.Width() {
		return s.g.FillChar(), nil
	}
	return s.g.At(r, c)
}

// frameLine builds a horizontal frame line with the given corner runes.
func frameLine(width int, left, right rune) []rune {
	line := make([]rune, width)
	for i := range line {
		line[i] = edgeHorizontal
	}
	if width > 0 {
		line[0] = left
	}
	if width > 1 {
		line[width-1] = right
	}
	return line
}

// topFrameLine builds the top frame line, overlaying a non-empty title
// inline after the first dash: "╭─ TITLE ────╮". Grid construction sizes
// the width so the title fits; anything longer is clipped before the
// closing corner.
func topFrameLine(width int, title string) []rune {
	line := frameLine(width, cornerTopLeft, cornerTopRight)
	if title == "" {
		return line
	}
	for i, r := range []rune(" " + title + " ") {
		pos := 2 + i
		if pos >= width-1 {
			break
		}
		line[pos] = r
	}
	return line
}
