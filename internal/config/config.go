// Package config provides configuration management for mersig.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Shamir  ShamirConfig  `yaml:"shamir"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShamirConfig defines secret-sharing policy defaults.
type ShamirConfig struct {
	// DefaultLevel is the Mersenne exponent used when splitting a secret
	// without an explicit --level flag.
	DefaultLevel int `yaml:"default_level"`

	// LegacyMode seeds the process-wide LEGACY_MODE flag at startup,
	// lowering the minimum permitted security level from 13 to 5.
	LegacyMode bool `yaml:"legacy_mode"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the mersig home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetDefaultLevel returns the default security level.
func (c *Config) GetDefaultLevel() int {
	return c.Shamir.DefaultLevel
}

// GetLegacyMode returns whether LEGACY_MODE is enabled by configuration.
func (c *Config) GetLegacyMode() bool {
	return c.Shamir.LegacyMode
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default mersig home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mersig"
	}
	return filepath.Join(home, ".mersig")
}
