package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultsTOML []byte

// DefaultsContent returns the embedded defaults file, useful for generating
// a starter config.
func DefaultsContent() string {
	return string(defaultsTOML)
}

// rawBytesProvider implements koanf's Provider over in-memory bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
