// Package config loads snxml configuration: embedded defaults, an optional
// snxml.toml (working directory first, then the XDG config directory), and
// SNXML_-prefixed environment variables, in ascending precedence.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/formatter"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Config is the fully resolved configuration.
type Config struct {
	Format  FormatConfig  `koanf:"format"`
	Output  OutputConfig  `koanf:"output"`
	Network NetworkConfig `koanf:"network"`
}

// FormatConfig controls the formatter.
type FormatConfig struct {
	Indent   string `koanf:"indent"`
	MaxWidth int    `koanf:"max_width"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `koanf:"color"`
}

// NetworkConfig controls analytics defaults.
type NetworkConfig struct {
	SuggestLimit int `koanf:"suggest_limit"`
}

// FormatterOptions converts the format section for pkg/formatter.
func (c *Config) FormatterOptions() formatter.Options {
	return formatter.Options{
		Indent:   c.Format.Indent,
		MaxWidth: c.Format.MaxWidth,
	}
}

// Default returns the embedded defaults without touching disk or env.
func Default() *Config {
	cfg, err := load(nil, false)
	if err != nil {
		// The embedded defaults are compiled into the binary; failing to
		// parse them is a build defect.
		panic(err)
	}
	return cfg
}

// Load resolves configuration from all sources.
func Load() (*Config, error) {
	return load(configFilePaths(), true)
}

// LoadFrom resolves configuration with an explicit config file instead of
// the default search path. Used by tests and the --config flag.
func LoadFrom(path string) (*Config, error) {
	return load([]string{path}, true)
}

func load(paths []string, withEnv bool) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "parsing embedded defaults")
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "loading config from %s", path)
		}
		break
	}

	if withEnv {
		err := k.Load(env.Provider("SNXML_", ".", func(s string) string {
			// Only the first underscore separates section from key; later
			// ones belong to the key itself (SNXML_FORMAT_MAX_WIDTH must
			// land on format.max_width, not format.max.width).
			key := strings.ToLower(strings.TrimPrefix(s, "SNXML_"))
			return strings.Replace(key, "_", ".", 1)
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshalling configuration")
	}
	return &cfg, nil
}

// Merge applies overrides on top of cfg for flag handling; zero values in
// overrides leave cfg untouched.
func Merge(cfg *Config, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format.indent":         cfg.Format.Indent,
		"format.max_width":      cfg.Format.MaxWidth,
		"output.color":          cfg.Output.Color,
		"network.suggest_limit": cfg.Network.SuggestLimit,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading base configuration")
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "applying overrides")
	}

	var merged Config
	if err := k.Unmarshal("", &merged); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshalling configuration")
	}
	return &merged, nil
}

// configFilePaths returns the search order for snxml.toml.
func configFilePaths() []string {
	return []string{
		"snxml.toml",
		filepath.Join(xdg.ConfigHome, "snxml", "snxml.toml"),
	}
}
