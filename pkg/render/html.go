package render

import (
	"maps"
	"sort"
	"strings"

	"github.com/arthur-debert/hypergrid/pkg/grid"
	"github.com/arthur-debert/hypergrid/pkg/logging"
)

// DefaultBackground is the <pre> wrapper background when none is given.
const DefaultBackground = "#000000"

// HTML renders a surface as a styled HTML fragment: a single <pre> block
// containing one line per row, with maximal runs of identically-attributed
// cells grouped into <span> elements. Privileged class names are emitted as
// ordinary CSS classes; passthrough attributes are emitted verbatim on the
// span. Cells with no attributes render as bare escaped text.
func HTML(s *Surface, background string) string {
	if background == "" {
		background = DefaultBackground
	}

	var content strings.Builder
	for y := 0; y < s.Height(); y++ {
		var current map[string]string
		for x := 0; x < s.Width(); x++ {
			ch, attrs := s.Cell(y, x)
			if !maps.Equal(attrs, current) {
				if len(current) > 0 {
					content.WriteString("</span>")
				}
				if len(attrs) > 0 {
					content.WriteString("<span " + htmlAttrs(attrs) + ">")
				}
				current = attrs
			}
			content.WriteString(escapeRune(ch))
		}
		if len(current) > 0 {
			content.WriteString("</span>")
		}
		content.WriteByte('\n')
	}

	return `<pre style="` + preStyle(background) + `">` + strings.TrimSpace(content.String()) + `</pre>`
}

// ToHTML renders a grid, border included, as an HTML fragment.
func ToHTML(g *grid.Grid, background string) string {
	s := NewSurface(g)
	logger := logging.GetLogger("render")
	logger.Debug().
		Int("width", s.Width()).
		Int("height", s.Height()).
		Str("backend", "html").
		Msg("Rendering grid")
	return HTML(s, background)
}

// htmlAttrs serializes a cell attribute mapping as HTML attributes, keys
// sorted for stable output.
func htmlAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+`="`+escapeAttr(attrs[k])+`"`)
	}
	return strings.Join(parts, " ")
}

// escapeRune escapes the three markup metacharacters in cell content.
func escapeRune(r rune) string {
	switch r {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	}
	return string(r)
}

// escapeAttr escapes an attribute value, quotes included.
func escapeAttr(v string) string {
	v = strings.ReplaceAll(v, "&", "&amp;")
	v = strings.ReplaceAll(v, `"`, "&quot;")
	v = strings.ReplaceAll(v, "<", "&lt;")
	v = strings.ReplaceAll(v, ">", "&gt;")
	return v
}

// preStyle is the inline CSS of the wrapper block: monospace, preserved
// whitespace, and a retro glow.
func preStyle(background string) string {
	return `
            font-family: 'Consolas', 'Courier New', monospace;
            font-size: 14px;
            line-height: 1.1;
            background-color: ` + background + `;
            color: #FFFFFF;
            padding: 10px;
            border: 2px solid #555;
            box-shadow: 0 0 10px rgba(0, 255, 0, 0.5);
            white-space: pre;
            display: inline-block;
        `
}
