package render

import (
	"maps"
	"strings"

	"github.com/arthur-debert/hypergrid/pkg/ansi"
	"github.com/arthur-debert/hypergrid/pkg/grid"
	"github.com/arthur-debert/hypergrid/pkg/logging"
)

// Terminal renders a surface as an ANSI escape-sequence string. Rows are
// independent: the active style starts empty on every row and a full reset
// ends every row, so styling never bleeds across a row boundary. Within a
// row, a cell whose privileged attribute set differs from the active one
// triggers a reset followed by exactly that set's codes. Passthrough
// attribute keys are ignored.
func Terminal(s *Surface) string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		if y == 0 {
			// Start the first line with a reset for safety.
			b.WriteString(ansi.ResetSeq)
		}
		var current map[string]string
		for x := 0; x < s.Width(); x++ {
			ch, attrs := s.Cell(y, x)
			if !maps.Equal(attrs, current) {
				b.WriteString(ansi.ResetSeq)
				b.WriteString(ansi.SGR(ansi.Codes(attrs)))
				current = attrs
			}
			b.WriteRune(ch)
		}
		b.WriteString(ansi.ResetSeq)
	}
	return b.String()
}

// Plain renders a surface as bare text, dropping all styling. Used when
// the output is not a capable terminal.
func Plain(s *Surface) string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < s.Width(); x++ {
			ch, _ := s.Cell(y, x)
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// ToTerminal renders a grid, border included, for terminal output.
func ToTerminal(g *grid.Grid) string {
	s := NewSurface(g)
	logger := logging.GetLogger("render")
	logger.Debug().
		Int("width", s.Width()).
		Int("height", s.Height()).
		Str("backend", "terminal").
		Msg("Rendering grid")
	return Terminal(s)
}
