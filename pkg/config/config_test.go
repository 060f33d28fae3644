package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hypergrid/pkg/config"
	"github.com/arthur-debert/hypergrid/pkg/errors"
)

func TestDefault(t *testing.T) {
	opts := config.Default()

	assert.Equal(t, config.Auto, opts.Width)
	assert.Equal(t, config.Auto, opts.Height)
	assert.True(t, opts.AutoWidth())
	assert.True(t, opts.AutoHeight())
	assert.Equal(t, " ", opts.FillChar)
	assert.True(t, opts.Border)
	assert.Equal(t, 1, opts.BorderPadding)
	assert.Empty(t, opts.Title)
	require.NoError(t, opts.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Options)
		wantCode errors.ErrorCode
	}{
		{
			name:   "defaults are valid",
			mutate: func(o *config.Options) {},
		},
		{
			name:   "single rune fill char",
			mutate: func(o *config.Options) { o.FillChar = "█" },
		},
		{
			name:   "empty fill char",
			mutate: func(o *config.Options) { o.FillChar = "" },
		},
		{
			name:     "multi rune fill char",
			mutate:   func(o *config.Options) { o.FillChar = "ab" },
			wantCode: errors.ErrConfigValid,
		},
		{
			name:     "negative border padding",
			mutate:   func(o *config.Options) { o.BorderPadding = -1 },
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.Default()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			}
		})
	}
}

func TestFillRune(t *testing.T) {
	opts := config.Default()
	assert.Equal(t, ' ', opts.FillRune())

	opts.FillChar = "."
	assert.Equal(t, '.', opts.FillRune())

	opts.FillChar = ""
	assert.Equal(t, ' ', opts.FillRune())

	opts.FillChar = "█"
	assert.Equal(t, '█', opts.FillRune())
}

func TestLoad(t *testing.T) {
	t.Run("no file yields the embedded defaults", func(t *testing.T) {
		opts, err := config.Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, config.Default(), opts)
	})

	t.Run("empty dir skips the file layer", func(t *testing.T) {
		opts, err := config.Load("")
		require.NoError(t, err)
		assert.True(t, opts.AutoWidth())
		assert.True(t, opts.Border)
	})

	t.Run("toml file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "width = 12\ntitle = \"Panel\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.toml"), []byte(content), 0644))

		opts, err := config.Load(dir)
		require.NoError(t, err)
		assert.Equal(t, 12, opts.Width)
		assert.Equal(t, "Panel", opts.Title)
		// Untouched keys keep their defaults.
		assert.Equal(t, config.Auto, opts.Height)
		assert.True(t, opts.Border)
	})

	t.Run("yaml file is supported", func(t *testing.T) {
		dir := t.TempDir()
		content := "fill_char: \".\"\nborder_padding: 2\nborder_attrs:\n  class: ansi-cyan\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.yaml"), []byte(content), 0644))

		opts, err := config.Load(dir)
		require.NoError(t, err)
		assert.Equal(t, ".", opts.FillChar)
		assert.Equal(t, 2, opts.BorderPadding)
		assert.Equal(t, map[string]string{"class": "ansi-cyan"}, opts.BorderAttrs)
	})

	t.Run("toml wins when both files exist", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.toml"), []byte("width = 1\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.yaml"), []byte("width: 2\n"), 0644))

		opts, err := config.Load(dir)
		require.NoError(t, err)
		assert.Equal(t, 1, opts.Width)
	})

	t.Run("malformed file is a parse error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.toml"), []byte("width = [broken\n"), 0644))

		_, err := config.Load(dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("file values are validated", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.toml"), []byte("fill_char = \"toolong\"\n"), 0644))

		_, err := config.Load(dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("env overrides file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.toml"), []byte("fill_char = \"-\"\n"), 0644))
		t.Setenv("HYPERGRID_FILL_CHAR", "#")

		opts, err := config.Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "#", opts.FillChar)
	})

	t.Run("numeric env values are coerced", func(t *testing.T) {
		t.Setenv("HYPERGRID_BORDER_PADDING", "3")
		t.Setenv("HYPERGRID_WIDTH", "25")

		opts, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 3, opts.BorderPadding)
		assert.Equal(t, 25, opts.Width)
	})

	t.Run("unprefixed variables are ignored", func(t *testing.T) {
		t.Setenv("WIDTH", "99")

		opts, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Auto, opts.Width)
	})
}

func TestLoadWith(t *testing.T) {
	t.Run("overrides win over everything", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hypergrid.toml"), []byte("width = 10\n"), 0644))
		t.Setenv("HYPERGRID_WIDTH", "20")

		opts, err := config.LoadWith(dir, map[string]interface{}{"width": 40, "title": "Top"})
		require.NoError(t, err)
		assert.Equal(t, 40, opts.Width)
		assert.Equal(t, "Top", opts.Title)
	})
}

func TestSave(t *testing.T) {
	t.Run("toml roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hypergrid.toml")
		opts := config.Default()
		opts.Width = 12
		opts.Title = "Saved"
		require.NoError(t, config.Save(path, opts))

		loaded, err := config.Load(filepath.Dir(path))
		require.NoError(t, err)
		assert.Equal(t, 12, loaded.Width)
		assert.Equal(t, "Saved", loaded.Title)
	})

	t.Run("yaml roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hypergrid.yaml")
		opts := config.Default()
		opts.BorderPadding = 4
		require.NoError(t, config.Save(path, opts))

		loaded, err := config.Load(filepath.Dir(path))
		require.NoError(t, err)
		assert.Equal(t, 4, loaded.BorderPadding)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := config.Save(filepath.Join(t.TempDir(), "grid.json"), config.Default())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestDefaultsContent(t *testing.T) {
	content := config.DefaultsContent()
	assert.Contains(t, content, "width")
	assert.Contains(t, content, "fill_char")
	assert.Contains(t, content, "border")
}
