// Package config loads the priyam TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "PRIYAM_CONFIG"

// Default values applied when a key is absent.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultMaxDepth  = 64
	DefaultPrecision = 3
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the complete application configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Chemistry ChemistryConfig `toml:"chemistry"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ChemistryConfig holds formula evaluation settings.
type ChemistryConfig struct {
	// Table is an optional TOML or YAML file merged over the built-in
	// element table.
	Table     string `toml:"table"`
	Lenient   bool   `toml:"lenient"`
	MaxDepth  int    `toml:"max_depth"`
	Precision int    `toml:"precision"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(toml.MetaData{})
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	cfg.applyDefaults(md)
	if cfg.Chemistry.Table != "" && !filepath.IsAbs(cfg.Chemistry.Table) {
		cfg.Chemistry.Table = filepath.Join(filepath.Dir(path), cfg.Chemistry.Table)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve finds and loads the active configuration.
//
// Order: explicit (the --config flag), then $PRIYAM_CONFIG, then
// ./priyam.toml, then $HOME/.config/priyam/config.toml. An explicit path
// that does not exist is an error; when no implicit file exists the
// defaults are returned. The second result is the file used, or "".
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	if env := os.Getenv(EnvVar); env != "" {
		cfg, err := Load(env)
		return cfg, env, err
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}

	return Default(), "", nil
}

func defaultPaths() []string {
	paths := []string{"./priyam.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "priyam", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration. Zero is a
// meaningful max_depth and precision, so those two only default when the
// key is absent from the file.
func (c *Config) applyDefaults(md toml.MetaData) {
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = DefaultLogFormat
	}
	c.General.LogLevel = strings.ToLower(c.General.LogLevel)
	c.General.LogFormat = strings.ToLower(c.General.LogFormat)

	if !md.IsDefined("chemistry", "max_depth") {
		c.Chemistry.MaxDepth = DefaultMaxDepth
	}
	if !md.IsDefined("chemistry", "precision") {
		c.Chemistry.Precision = DefaultPrecision
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalid, c.General.LogLevel)
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.General.LogFormat)
	}
	if c.Chemistry.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d must be >= 0", ErrInvalid, c.Chemistry.MaxDepth)
	}
	if c.Chemistry.Precision < 0 || c.Chemistry.Precision > 12 {
		return fmt.Errorf("%w: precision %d must be in [0, 12]", ErrInvalid, c.Chemistry.Precision)
	}

	return nil
}
