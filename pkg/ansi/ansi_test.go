package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/hypergrid/pkg/ansi"
)

func TestCode(t *testing.T) {
	tests := []struct {
		class string
		want  string
		ok    bool
	}{
		{"ansi-red", "31", true},
		{"ansi-white", "37", true},
		{"ansi-bg-blue", "44", true},
		{"ansi-bold", "1", true},
		{"ansi-dim", "2", true},
		{"ansi-underline", "4", true},
		{"clickable", "", false},
		{"ansi-orange", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			code, ok := ansi.Code(tt.class)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  []string
	}{
		{
			name:  "nil attrs",
			attrs: nil,
			want:  nil,
		},
		{
			name:  "no class attribute",
			attrs: map[string]string{"hx-get": "/data"},
			want:  nil,
		},
		{
			name:  "single color",
			attrs: map[string]string{"class": "ansi-red"},
			want:  []string{"31"},
		},
		{
			name:  "color background and style",
			attrs: map[string]string{"class": "ansi-green ansi-bg-blue ansi-underline"},
			want:  []string{"32", "44", "4"},
		},
		{
			name: "emission order is fixed regardless of class order",
			// bold listed first still emits after the colors
			attrs: map[string]string{"class": "ansi-bold ansi-bg-red ansi-yellow"},
			want:  []string{"33", "41", "1"},
		},
		{
			name:  "unprivileged tokens are ignored",
			attrs: map[string]string{"class": "clickable ansi-cyan custom-thing"},
			want:  []string{"36"},
		},
		{
			name:  "only unprivileged tokens",
			attrs: map[string]string{"class": "clickable hover"},
			want:  nil,
		},
		{
			name:  "two foreground colors both emit in vocabulary order",
			attrs: map[string]string{"class": "ansi-white ansi-black"},
			want:  []string{"30", "37"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansi.Codes(tt.attrs))
		})
	}
}

func TestSGR(t *testing.T) {
	assert.Equal(t, "", ansi.SGR(nil))
	assert.Equal(t, "", ansi.SGR([]string{}))
	assert.Equal(t, "\x1b[31m", ansi.SGR([]string{"31"}))
	assert.Equal(t, "\x1b[32;44;1m", ansi.SGR([]string{"32", "44", "1"}))
}

func TestClasses(t *testing.T) {
	classes := ansi.Classes()
	assert.Len(t, classes, 19)
	assert.Equal(t, "ansi-black", classes[0])
	assert.Equal(t, "ansi-underline", classes[len(classes)-1])

	for _, cls := range classes {
		assert.True(t, ansi.Privileged(cls), cls)
	}

	// Returned slice is a copy; mutating it must not poison the vocabulary.
	classes[0] = "mutated"
	assert.Equal(t, "ansi-black", ansi.Classes()[0])
}

func TestColorClasses(t *testing.T) {
	t.Run("foreground", func(t *testing.T) {
		cls, ok := ansi.ForegroundClass("red")
		assert.True(t, ok)
		assert.Equal(t, "ansi-red", cls)

		_, ok = ansi.ForegroundClass("default")
		assert.False(t, ok)

		_, ok = ansi.ForegroundClass("chartreuse")
		assert.False(t, ok)

		_, ok = ansi.ForegroundClass("")
		assert.False(t, ok)
	})

	t.Run("background", func(t *testing.T) {
		cls, ok := ansi.BackgroundClass("blue")
		assert.True(t, ok)
		assert.Equal(t, "ansi-bg-blue", cls)

		_, ok = ansi.BackgroundClass("default")
		assert.False(t, ok)
	})

	t.Run("every palette name maps to a privileged class", func(t *testing.T) {
		for name := range ansi.Foreground {
			if name == "default" {
				continue
			}
			cls, ok := ansi.ForegroundClass(name)
			assert.True(t, ok, name)
			assert.True(t, ansi.Privileged(cls), cls)

			cls, ok = ansi.BackgroundClass(name)
			assert.True(t, ok, name)
			assert.True(t, ansi.Privileged(cls), cls)
		}
	})
}
