// Package config loads generator settings from .embedtone/config.yaml.
// Precedence: CLI flags > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the project-local config location.
const DefaultPath = ".embedtone/config.yaml"

// Config holds all settings for a generation run.
type Config struct {
	// Extensions are the accepted audio file extensions, with leading dot.
	Extensions []string `yaml:"extensions" mapstructure:"extensions"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// WatchDebounceMS is the debounce window for --watch, in milliseconds.
	WatchDebounceMS int `yaml:"watch_debounce_ms" mapstructure:"watch_debounce_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Extensions:      []string{".wav", ".mp3", ".aac", ".m4a"},
		LogLevel:        "info",
		WatchDebounceMS: 300,
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A file that exists but cannot be parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed. Fails if the file already exists.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	if c.WatchDebounceMS < 0 {
		return fmt.Errorf("watch_debounce_ms must not be negative, got %d", c.WatchDebounceMS)
	}
	return nil
}
