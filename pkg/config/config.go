// Package config loads export settings from a TOML, YAML or JSON file.
// Command-line flags are layered on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kataras/textframes/pkg/extract"
	"github.com/kataras/textframes/pkg/order"
	"github.com/kataras/textframes/pkg/target"
)

// TokenEnv is the environment variable holding the Figma access token.
const TokenEnv = "FIGMA_TOKEN"

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config format")

// Config holds every setting a run can take from a file.
type Config struct {
	Target          string `toml:"target" yaml:"target"`
	Order           string `toml:"order" yaml:"order"`
	Direction       string `toml:"direction" yaml:"direction"`
	Mode            string `toml:"mode" yaml:"mode"`
	Output          string `toml:"output" yaml:"output"`
	DefaultFileName string `toml:"defaultFileName" yaml:"defaultFileName"`
	Prompt          string `toml:"prompt" yaml:"prompt"`
	// Indent is nil when unset; zero selects compact output.
	Indent         *int  `toml:"indent" yaml:"indent"`
	EscapeQuotes   bool  `toml:"escapeQuotes" yaml:"escapeQuotes"`
	Normalize      bool  `toml:"normalize" yaml:"normalize"`
	Deep           bool  `toml:"deep" yaml:"deep"`
	IndicatorWidth int   `toml:"indicatorWidth" yaml:"indicatorWidth"`
	Figma          Figma `toml:"figma" yaml:"figma"`
}

// Figma holds the Figma source settings.
type Figma struct {
	Token string `toml:"token" yaml:"token"`
	URL   string `toml:"url" yaml:"url"`
}

// Default returns the settings used when neither a file nor a flag sets a value.
func Default() Config {
	indent := 2
	return Config{
		Target:         target.AllItems.String(),
		Order:          order.Stacking.String(),
		Direction:      "asc",
		Mode:           "json",
		Indent:         &indent,
		IndicatorWidth: 40,
	}
}

// Load reads the file at path, picking the decoder by extension: .toml,
// .yaml, .yml or .json. Values missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", strings.TrimPrefix(ext, "."), err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return cfg, nil
}

// ApplyEnv fills settings that are still empty from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if c.Figma.Token == "" {
		if v, ok := lookup(TokenEnv); ok {
			c.Figma.Token = strings.TrimSpace(v)
		}
	}
}

// Policy parses the ordering and formatting settings.
func (c Config) Policy() (extract.Policy, error) {
	var (
		p   extract.Policy
		err error
	)
	if p.Target, err = target.ParseKey(c.Target); err != nil {
		return p, err
	}
	if p.Order, err = order.ParseKey(c.Order); err != nil {
		return p, err
	}
	if p.Direction, err = order.ParseDirection(c.Direction); err != nil {
		return p, err
	}
	p.Normalize = c.Normalize
	return p, nil
}

// IndentWidth returns the configured indent, or 2 when unset.
func (c Config) IndentWidth() int {
	if c.Indent == nil {
		return 2
	}
	return *c.Indent
}
