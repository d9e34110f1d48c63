// Package config loads ttbl settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"ttbl"
	"ttbl/internal/render"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "TTBL_CONFIG"

// Config holds the complete ttbl configuration
type Config struct {
	Syntax SyntaxConfig `toml:"syntax"`
	Table  TableConfig  `toml:"table"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`

	// Undecoded lists keys of the file that no setting uses.
	Undecoded []string `toml:"-"`
}

// SyntaxConfig holds the keyword case policy
type SyntaxConfig struct {
	FoldOperators bool `toml:"fold_operators"`
	FoldLiterals  bool `toml:"fold_literals"`
	ShortLiterals bool `toml:"short_literals"`
}

// TableConfig holds table generation limits
type TableConfig struct {
	MaxVariables int    `toml:"max_variables"`
	Headers      string `toml:"headers"`
}

// OutputConfig holds presentation settings
type OutputConfig struct {
	Format      string `toml:"format"`
	TrueSymbol  string `toml:"true_symbol"`
	FalseSymbol string `toml:"false_symbol"`
	Border      string `toml:"border"`
	Color       *bool  `toml:"color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for _, key := range meta.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Locate returns the config file to use: explicit, then $TTBL_CONFIG, then
// ./ttbl.toml, then ~/.config/ttbl/config.toml. It returns "" when none
// exists; an explicit path must exist.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	var candidates []string
	if path := os.Getenv(EnvConfig); path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, "./ttbl.toml")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "ttbl", "config.toml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// LoadDefault loads the located config file, or defaults when there is none.
func LoadDefault(explicit string) (*Config, string, error) {
	path, err := Locate(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	return cfg, path, err
}

func (c *Config) applyDefaults() {
	if c.Table.MaxVariables == 0 {
		c.Table.MaxVariables = ttbl.DefaultMaxVariables
	}
	if c.Table.Headers == "" {
		c.Table.Headers = "source"
	}

	if c.Output.Format == "" {
		c.Output.Format = string(render.FormatTable)
	}
	if c.Output.TrueSymbol == "" {
		c.Output.TrueSymbol = "T"
	}
	if c.Output.FalseSymbol == "" {
		c.Output.FalseSymbol = "F"
	}
	if c.Output.Border == "" {
		c.Output.Border = "rounded"
	}
	if c.Output.Color == nil {
		var color = true
		c.Output.Color = &color
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate reports the first setting with an unusable value.
func (c *Config) Validate() error {
	if c.Table.MaxVariables < 1 || c.Table.MaxVariables > ttbl.MaxVariablesCeiling {
		return fmt.Errorf("table.max_variables must be between 1 and %d, got %d", ttbl.MaxVariablesCeiling, c.Table.MaxVariables)
	}

	switch c.Table.Headers {
	case "source", "canonical":
	default:
		return fmt.Errorf("table.headers must be source or canonical, got %q", c.Table.Headers)
	}

	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if c.Output.TrueSymbol == c.Output.FalseSymbol {
		return fmt.Errorf("output.true_symbol and output.false_symbol are both %q", c.Output.TrueSymbol)
	}

	if !slices.Contains(render.Borders, c.Output.Border) {
		return fmt.Errorf("output.border must be one of %s, got %q", strings.Join(render.Borders, ", "), c.Output.Border)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, disabled, got %q", c.Log.Level)
	}

	return nil
}

// Options returns the core options selected by the config.
func (c *Config) Options() ttbl.Options {
	return ttbl.Options{
		FoldOperators: c.Syntax.FoldOperators,
		FoldLiterals:  c.Syntax.FoldLiterals,
		ShortLiterals: c.Syntax.ShortLiterals,
		MaxVariables:  c.Table.MaxVariables,
	}
}

// Settings returns the render settings selected by the config.
func (c *Config) Settings() render.Settings {
	var s = render.DefaultSettings()

	if format, err := render.ParseFormat(c.Output.Format); err == nil {
		s.Format = format
	}
	if c.Table.Headers == "canonical" {
		s.Headers = ttbl.HeaderCanonical
	}

	s.TrueSymbol = c.Output.TrueSymbol
	s.FalseSymbol = c.Output.FalseSymbol
	s.Border = c.Output.Border
	if c.Output.Color != nil {
		s.Color = *c.Output.Color
	}

	return s
}
