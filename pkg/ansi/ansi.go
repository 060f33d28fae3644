// Package ansi holds the privileged style vocabulary shared by both
// renderers: the closed set of class names that map to SGR codes on the
// terminal and double as CSS class names in HTML output.
package ansi

import "strings"

// SGR code fragments for the standard colors and text styles.
const (
	FgBlack   = "30"
	FgRed     = "31"
	FgGreen   = "32"
	FgYellow  = "33"
	FgBlue    = "34"
	FgMagenta = "35"
	FgCyan    = "36"
	FgWhite   = "37"

	BgBlack   = "40"
	BgRed     = "41"
	BgGreen   = "42"
	BgYellow  = "43"
	BgBlue    = "44"
	BgMagenta = "45"
	BgCyan    = "46"
	BgWhite   = "47"

	Bold      = "1"
	Dim       = "2"
	Underline = "4"
	Reset     = "0"
)

// ResetSeq is the full-reset escape sequence emitted at style boundaries.
const ResetSeq = "\x1b[" + Reset + "m"

// ClassAttr is the attribute key whose space-separated value carries
// privileged class tokens.
const ClassAttr = "class"

// classCodes maps every privileged class name to its SGR fragment.
var classCodes = map[string]string{
	"ansi-black":   FgBlack,
	"ansi-red":     FgRed,
	"ansi-green":   FgGreen,
	"ansi-yellow":  FgYellow,
	"ansi-blue":    FgBlue,
	"ansi-magenta": FgMagenta,
	"ansi-cyan":    FgCyan,
	"ansi-white":   FgWhite,

	"ansi-bg-black":   BgBlack,
	"ansi-bg-red":     BgRed,
	"ansi-bg-green":   BgGreen,
	"ansi-bg-yellow":  BgYellow,
	"ansi-bg-blue":    BgBlue,
	"ansi-bg-magenta": BgMagenta,
	"ansi-bg-cyan":    BgCyan,
	"ansi-bg-white":   BgWhite,

	"ansi-bold":      Bold,
	"ansi-dim":       Dim,
	"ansi-underline": Underline,
}

// classOrder fixes the emission order for SGR fragments: foreground colors,
// then background colors, then style flags. When a cell carries two colors
// from the same channel both are emitted in this order and the terminal
// applies the later one, so the result is deterministic.
var classOrder = []string{
	"ansi-black",
	"ansi-red",
	"ansi-green",
	"ansi-yellow",
	"ansi-blue",
	"ansi-magenta",
	"ansi-cyan",
	"ansi-white",
	"ansi-bg-black",
	"ansi-bg-red",
	"ansi-bg-green",
	"ansi-bg-yellow",
	"ansi-bg-blue",
	"ansi-bg-magenta",
	"ansi-bg-cyan",
	"ansi-bg-white",
	"ansi-bold",
	"ansi-dim",
	"ansi-underline",
}

// Code returns the SGR fragment for a privileged class name.
func Code(class string) (string, bool) {
	code, ok := classCodes[class]
	return code, ok
}

// Privileged reports whether class is part of the closed style vocabulary.
func Privileged(class string) bool {
	_, ok := classCodes[class]
	return ok
}

// Classes returns every privileged class name in emission order.
func Classes() []string {
	out := make([]string, len(classOrder))
	copy(out, classOrder)
	return out
}

// Codes extracts the SGR fragments for the privileged classes present in a
// cell attribute mapping, in emission order. Tokens outside the vocabulary
// and attribute keys other than "class" are ignored.
func Codes(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	classes := attrs[ClassAttr]
	if classes == "" {
		return nil
	}
	present := make(map[string]bool)
	for _, cls := range strings.Fields(classes) {
		if Privileged(cls) {
			present[cls] = true
		}
	}
	if len(present) == 0 {
		return nil
	}
	codes := make([]string, 0, len(present))
	for _, cls := range classOrder {
		if present[cls] {
			codes = append(codes, classCodes[cls])
		}
	}
	return codes
}

// SGR assembles an escape sequence from code fragments. An empty code list
// yields an empty string, not a bare introducer.
func SGR(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}
