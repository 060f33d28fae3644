package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hypergrid/pkg/errors"
	"github.com/arthur-debert/hypergrid/pkg/logging"
)

// envPrefix is stripped from environment variables before they are merged
// as configuration keys (HYPERGRID_BORDER_PADDING -> border_padding).
const envPrefix = "HYPERGRID_"

// configNames are the file names probed, in order, when loading from a
// directory. The first one found wins.
var configNames = []string{"hypergrid.toml", "hypergrid.yaml", "hypergrid.yml"}

// Load resolves options by layering, in override order: embedded defaults,
// a config file found in dir (skipped when dir is empty), and HYPERGRID_
// environment variables.
func Load(dir string) (Options, error) {
	return LoadWith(dir, nil)
}

// LoadWith is Load with a final layer of programmatic overrides, keyed by
// the same names as the config file ("width", "border_padding", ...).
func LoadWith(dir string, overrides map[string]interface{}) (Options, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultsTOML}, toml.Parser()); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. Config file, if present
	if dir != "" {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			var parser koanf.Parser = toml.Parser()
			if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
				parser = kyaml.Parser()
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return Options{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
			break
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Programmatic overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var opts Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal options")
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Save writes options to path as TOML or YAML, chosen by extension.
func Save(path string, opts Options) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(opts)
	case ".toml":
		data, err = gotoml.Marshal(opts)
	default:
		return errors.Newf(errors.ErrConfigValid, "unsupported config extension %q", filepath.Ext(path))
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to marshal options")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}
