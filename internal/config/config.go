// Package config handles loading and saving user configuration for lat.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// EnvFileName holds LAT_* overrides inside the config directory.
const EnvFileName = ".env"

// Sentinel errors returned by Validate.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidLimit     = errors.New("invalid history limit")
)

// Accepted values.
var (
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
	OutputFormats = []string{"text", "json", "yaml"}
)

// Config holds all user configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Reset   ResetConfig   `yaml:"reset"`
	History HistoryConfig `yaml:"history"`
	Output  OutputConfig  `yaml:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// ResetConfig defines what clears the console sandbox.
type ResetConfig struct {
	Keywords []string `yaml:"keywords"` // Whole-input words, matched before parsing
	Spells   []string `yaml:"spells"`   // Spells whose effect triggers a reset
}

// HistoryConfig controls the cast log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`  // Relative paths resolve against the config directory
	Limit   int    `yaml:"limit"` // Rows shown by default
}

// OutputConfig holds defaults for the parse and describe commands.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
	Style  string `yaml:"style"`  // Narration style, e.g. "gloss"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Reset: ResetConfig{
			Keywords: []string{"reset"},
			Spells:   []string{"Sana Lumen Magnus"},
		},
		History: HistoryConfig{
			Enabled: true,
			File:    "history.db",
			Limit:   20,
		},
		Output: OutputConfig{
			Format: "text",
			Style:  "gloss",
		},
	}
}

// Load reads a configuration file. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return cfg, nil
}

// LoadDir loads config.yaml from dir, falling back to defaults when it does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w %q (want one of %s)", ErrInvalidLogLevel, c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if !slices.Contains(LogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w %q (want one of %s)", ErrInvalidLogFormat, c.Log.Format, strings.Join(LogFormats, ", "))
	}
	if !slices.Contains(OutputFormats, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("%w %q (want one of %s)", ErrInvalidFormat, c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if c.History.Limit <= 0 {
		return fmt.Errorf("%w %d (must be > 0)", ErrInvalidLimit, c.History.Limit)
	}
	return nil
}

// HistoryPath resolves the history database path against the config directory.
func (c *Config) HistoryPath(dir string) string {
	if filepath.IsAbs(c.History.File) {
		return c.History.File
	}
	return filepath.Join(dir, c.History.File)
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lat"), nil
}

// EnsureDir creates the config directory if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}

// LoadEnv loads dir/.env into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
