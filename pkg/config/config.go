// Package config holds the construction-time configuration for grids:
// dimensions, fill character, and border decoration. Values are resolved by
// layering embedded defaults, an optional hypergrid.toml/hypergrid.yaml
// file, and HYPERGRID_-prefixed environment variables.
package config

import (
	"unicode/utf8"

	"github.com/arthur-debert/hypergrid/pkg/errors"
)

// Auto marks a dimension as auto-expanding: the grid grows to the bounding
// box of every write instead of validating against a fixed size.
const Auto = -1

// Options are the recognized grid construction parameters.
type Options struct {
	// Width and Height are the fixed grid dimensions. Auto (or any
	// negative value) makes the axis auto-expanding.
	Width  int `koanf:"width" toml:"width" yaml:"width"`
	Height int `koanf:"height" toml:"height" yaml:"height"`

	// FillChar is the single character used for unwritten cells.
	FillChar string `koanf:"fill_char" toml:"fill_char" yaml:"fill_char"`

	// Border draws a frame around the content at render time.
	Border        bool              `koanf:"border" toml:"border" yaml:"border"`
	BorderPadding int               `koanf:"border_padding" toml:"border_padding" yaml:"border_padding"`
	BorderAttrs   map[string]string `koanf:"border_attrs" toml:"border_attrs" yaml:"border_attrs"`

	// Title is rendered inline in the top frame line when Border is set.
	Title string `koanf:"title" toml:"title" yaml:"title"`
}

// Default returns the built-in options: fully auto-expanding, space fill,
// border enabled with one cell of padding.
func Default() Options {
	return Options{
		Width:         Auto,
		Height:        Auto,
		FillChar:      " ",
		Border:        true,
		BorderPadding: 1,
	}
}

// Validate checks option values that cannot be represented at all, as
// opposed to values the grid merely clamps.
func (o Options) Validate() error {
	if n := utf8.RuneCountInString(o.FillChar); n > 1 {
		return errors.Newf(errors.ErrConfigValid, "fill_char must be a single character, got %q", o.FillChar).
			WithDetail("fill_char", o.FillChar)
	}
	if o.BorderPadding < 0 {
		return errors.Newf(errors.ErrConfigValid, "border_padding must be non-negative, got %d", o.BorderPadding).
			WithDetail("border_padding", o.BorderPadding)
	}
	return nil
}

// FillRune returns the fill character, defaulting to space when unset.
func (o Options) FillRune() rune {
	if o.FillChar == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(o.FillChar)
	return r
}

// AutoWidth reports whether the horizontal axis auto-expands.
func (o Options) AutoWidth() bool { return o.Width < 0 }

// AutoHeight reports whether the vertical axis auto-expands.
func (o Options) AutoHeight() bool { return o.Height < 0 }
