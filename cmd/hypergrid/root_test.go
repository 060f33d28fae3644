package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hypergrid version")
	assert.Contains(t, out, "commit:")
}

func TestDemoCmd(t *testing.T) {
	t.Run("renders all three grids", func(t *testing.T) {
		out, err := runCommand(t, "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "SYSTEM STATUS")
		assert.Contains(t, out, "BORDER DEMO")
		assert.Contains(t, out, "Grid auto-expanded to 21x5")
	})

	t.Run("writes the html page", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.html")
		out, err := runCommand(t, "demo", "--html", path)
		require.NoError(t, err)
		assert.Contains(t, out, "HTML output saved")

		page, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(page), "<!DOCTYPE html>"))
		assert.Contains(t, string(page), "Click me!")
	})
}

func TestColorsCmd(t *testing.T) {
	_, err := runCommand(t, "colors")
	require.NoError(t, err)
}

func TestDocsCmd(t *testing.T) {
	out, err := runCommand(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "hypergrid")
	assert.Contains(t, out, "Borders and titles")
}

func TestUsageTemplate(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)
	// Section headers go through the boldUpper template func; with no
	// terminal attached that means plain uppercase.
	assert.Contains(t, out, "USAGE")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "FLAGS")
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "colors")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCommand(t, "bogus")
	assert.Error(t, err)
}
