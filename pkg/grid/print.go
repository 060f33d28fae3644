package grid

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/hypergrid/pkg/ansi"
)

// printOptions collects the named style options accepted by Print.
type printOptions struct {
	color      string
	background string
	bold       bool
	dim        bool
	underline  bool
	attrs      map[string]string
	newline    bool
}

// PrintOption configures a single Print call.
type PrintOption func(*printOptions)

// WithColor sets the foreground color by palette name ("red", "cyan", ...).
// Unknown names and "default" add no styling.
func WithColor(name string) PrintOption {
	return func(p *printOptions) { p.color = name }
}

// WithBackground sets the background color by palette name.
func WithBackground(name string) PrintOption {
	return func(p *printOptions) { p.background = name }
}

// WithBold renders the text bold.
func WithBold() PrintOption {
	return func(p *printOptions) { p.bold = true }
}

// WithDim renders the text dim.
func WithDim() PrintOption {
	return func(p *printOptions) { p.dim = true }
}

// WithUnderline renders the text underlined.
func WithUnderline() PrintOption {
	return func(p *printOptions) { p.underline = true }
}

// WithAttr attaches a passthrough attribute to every printed cell.
func WithAttr(key, value string) PrintOption {
	return func(p *printOptions) {
		if p.attrs == nil {
			p.attrs = make(map[string]string)
		}
		p.attrs[key] = value
	}
}

// WithNewline moves the cursor to the start of the next row after printing.
func WithNewline() PrintOption {
	return func(p *printOptions) { p.newline = true }
}

// cellAttrs translates the style options into a cell attribute mapping, or
// nil when the print carries no styling at all. Privileged classes come
// first in the class list, in foreground, background, bold, dim, underline
// order; class tokens from a passthrough "class" attribute follow.
func (p *printOptions) cellAttrs() map[string]string {
	var classes []string
	if cls, ok := ansi.ForegroundClass(p.color); ok {
		classes = append(classes, cls)
	}
	if cls, ok := ansi.BackgroundClass(p.background); ok {
		classes = append(classes, cls)
	}
	if p.bold {
		classes = append(classes, "ansi-bold")
	}
	if p.dim {
		classes = append(classes, "ansi-dim")
	}
	if p.underline {
		classes = append(classes, "ansi-underline")
	}

	if len(classes) == 0 && len(p.attrs) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(p.attrs)+1)
	for k, v := range p.attrs {
		attrs[k] = v
	}
	if extra := attrs[ansi.ClassAttr]; extra != "" {
		classes = append(classes, strings.Fields(extra)...)
	}
	if len(classes) > 0 {
		attrs[ansi.ClassAttr] = strings.Join(classes, " ")
	}
	return attrs
}

// Print writes text at the cursor and advances it, expanding auto axes as
// needed. A newline moves the cursor to column 0 of the next row. On a
// fixed-width grid text past the right edge is clipped, like any other
// range write, and the cursor stops at the edge until a newline.
func (g *Grid) Print(text string, opts ...PrintOption) error {
	var p printOptions
	for _, opt := range opts {
		opt(&p)
	}
	if p.newline {
		text += "\n"
	}
	attrs := p.cellAttrs()

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			n := utf8.RuneCountInString(line)
			sel := RowSpan(g.curRow, Between(g.curCol, g.curCol+n))
			var v Value
			if attrs != nil {
				v = Cell(line, attrs)
			} else {
				v = Text(line)
			}
			if err := g.Set(sel, v); err != nil {
				return err
			}
			g.curCol += n
			// On a fixed width the cursor stops at the edge, so later
			// prints stay clipping no-ops instead of failing bounds
			// checks with a fully outside range.
			if !g.autoWidth && g.curCol > g.width {
				g.curCol = g.width
			}
		}
		if i < len(lines)-1 {
			g.curRow++
			g.curCol = 0
		}
	}
	return nil
}

// Println prints text followed by a newline.
func (g *Grid) Println(text string, opts ...PrintOption) error {
	return g.Print(text+"\n", opts...)
}

// CursorPos returns the cursor's current row and column.
func (g *Grid) CursorPos() (row, col int) {
	return g.curRow, g.curCol
}
