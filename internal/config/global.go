// Package config loads optional tripid settings from a TOML file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tessro/tripid/internal/emit"
)

// Config represents a tripid configuration file.
type Config struct {
	// LogLevel is the minimum level logged to stderr.
	LogLevel string `toml:"log_level"`

	// Output controls what the root command writes.
	Output OutputConfig `toml:"output"`
}

// OutputConfig contains output settings.
type OutputConfig struct {
	Format string `toml:"format"`
	Count  int    `toml:"count"`
	Color  bool   `toml:"color"`
}

// DefaultLogLevel is used when no log level is configured.
const DefaultLogLevel = "warn"

// DefaultCount is used when no count is configured.
const DefaultCount = 1

// LoadFromPath loads the config from a specific path.
// Returns nil config and nil error if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// GetLogLevel returns the configured log level or the default.
func (c *Config) GetLogLevel() string {
	if c != nil && c.LogLevel != "" {
		return c.LogLevel
	}
	return DefaultLogLevel
}

// GetFormat returns the configured output format or text.
func (c *Config) GetFormat() string {
	if c != nil && c.Output.Format != "" {
		return c.Output.Format
	}
	return string(emit.FormatText)
}

// GetCount returns the configured count or the default.
func (c *Config) GetCount() int {
	if c != nil && c.Output.Count != 0 {
		return c.Output.Count
	}
	return DefaultCount
}

// GetColor reports whether labels should be coloured.
func (c *Config) GetColor() bool {
	return c != nil && c.Output.Color
}
