package config

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/layout"
)

const (
	appName  = "crafttree"
	fileName = "config.toml"
)

// Environment variables that override file values.
const (
	EnvStyle          = "CRAFTTREE_STYLE"
	EnvFormats        = "CRAFTTREE_FORMATS"
	EnvBaseMultiplier = "CRAFTTREE_BASE_MULTIPLIER"
	EnvSiblingFactor  = "CRAFTTREE_SIBLING_FACTOR"
	EnvDepthExponent  = "CRAFTTREE_DEPTH_EXPONENT"
)

// Config is the user configuration file.
type Config struct {
	Layout layout.Config `toml:"layout"`
	Render RenderConfig  `toml:"render"`
}

// RenderConfig holds rendering preferences applied when the matching CLI
// flags are not given.
type RenderConfig struct {
	Style      string            `toml:"style"`
	Formats    []string          `toml:"formats"`
	ShowLegend bool              `toml:"show_legend"`
	ShowSteps  bool              `toml:"show_steps"`
	Colors     map[string]string `toml:"colors,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Layout: layout.DefaultConfig(),
		Render: RenderConfig{
			Style:   graph.StyleClassic,
			Formats: []string{"svg"},
		},
	}
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/crafttree/config.toml or ~/.config/crafttree/config.toml.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration.
//
// A .env file in the working directory is loaded into the environment
// first. With an empty path the default location is used and a missing file
// yields [Default]; an explicit path must exist. Environment overrides are
// applied last and the result is validated.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInternal, err, "locate config")
		}
		path = p
	}

	f, err := os.Open(path)
	switch {
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	case err != nil:
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	default:
		defer f.Close()
		if cfg, err = decodeInto(cfg, f); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode reads a TOML configuration on top of [Default]. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	cfg, err := decodeInto(Default(), r)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return cfg, nil
}

func decodeInto(cfg Config, r io.Reader) (Config, error) {
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the CRAFTTREE_* variables reported by lookup.
// CRAFTTREE_FORMATS is a comma-separated list.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStyle); ok && v != "" {
		cfg.Render.Style = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvFormats); ok && v != "" {
		cfg.Render.Formats = splitList(v)
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvBaseMultiplier, &cfg.Layout.BaseMultiplier},
		{EnvSiblingFactor, &cfg.Layout.SiblingGroupFactor},
		{EnvDepthExponent, &cfg.Layout.DepthExponent},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", f.key)
		}
		*f.dst = n
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// hexColor matches #rgb and #rrggbb.
var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the layout constants and the element colour overrides.
// Style and format names are checked by the pipeline options they feed.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	names := make([]string, 0, len(c.Render.Colors))
	for name := range c.Render.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if color := c.Render.Colors[name]; !hexColor.MatchString(color) {
			return errors.New(errors.ErrCodeInvalidConfig, "render.colors.%s: %q is not a hex colour (#rgb or #rrggbb)", name, color)
		}
	}
	return nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// WriteFile writes cfg to path, creating parent directories. An existing
// file is only replaced when overwrite is set.
func WriteFile(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
