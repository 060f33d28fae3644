package ansi

// ColorMapping pairs the terminal and HTML representations of a named color.
type ColorMapping struct {
	ANSI string
	HTML string
}

// Foreground maps color names accepted by the print surface to their
// foreground SGR code and the hex value used in generated stylesheets.
var Foreground = map[string]ColorMapping{
	"black":   {ANSI: FgBlack, HTML: "#000000"},
	"red":     {ANSI: FgRed, HTML: "#FF4444"},
	"green":   {ANSI: FgGreen, HTML: "#44FF44"},
	"yellow":  {ANSI: FgYellow, HTML: "#FFFF44"},
	"blue":    {ANSI: FgBlue, HTML: "#4444FF"},
	"magenta": {ANSI: FgMagenta, HTML: "#FF44FF"},
	"cyan":    {ANSI: FgCyan, HTML: "#44FFFF"},
	"white":   {ANSI: FgWhite, HTML: "#FFFFFF"},
	"default": {ANSI: FgWhite, HTML: "inherit"},
}

// Background maps the same color names to their background representations.
// Background hex values are darker than their foreground counterparts so
// text stays readable on them.
var Background = map[string]ColorMapping{
	"black":   {ANSI: BgBlack, HTML: "#000000"},
	"red":     {ANSI: BgRed, HTML: "#AA0000"},
	"green":   {ANSI: BgGreen, HTML: "#00AA00"},
	"yellow":  {ANSI: BgYellow, HTML: "#AAAA00"},
	"blue":    {ANSI: BgBlue, HTML: "#0000AA"},
	"magenta": {ANSI: BgMagenta, HTML: "#AA00AA"},
	"cyan":    {ANSI: BgCyan, HTML: "#00AAAA"},
	"white":   {ANSI: BgWhite, HTML: "#888888"},
	"default": {ANSI: BgBlack, HTML: "inherit"},
}

// ForegroundClass returns the privileged class for a named foreground color.
// The "default" name (and anything outside the palette) maps to no class.
func ForegroundClass(name string) (string, bool) {
	if name == "" || name == "default" {
		return "", false
	}
	if _, ok := Foreground[name]; !ok {
		return "", false
	}
	return "ansi-" + name, true
}

// BackgroundClass returns the privileged class for a named background color.
func BackgroundClass(name string) (string, bool) {
	if name == "" || name == "default" {
		return "", false
	}
	if _, ok := Background[name]; !ok {
		return "", false
	}
	return "ansi-bg-" + name, true
}
