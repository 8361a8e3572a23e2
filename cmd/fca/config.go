package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/load"
)

// Config is the fca configuration file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string        `yaml:"log_level"`
	Input    InputConfig   `yaml:"input"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// InputConfig controls how context files are read.
type InputConfig struct {
	// Format forces yaml or tsv; empty means "from the file extension".
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile written after each command.
type MetricsConfig struct {
	// Textfile is the output path; empty disables metrics output.
	Textfile string `yaml:"textfile"`
	// Context is the value of the "context" label on lattice gauges.
	Context string `yaml:"context"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Metrics:  MetricsConfig{Context: "default"},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Input.Format != "" {
		if _, err := load.ParseFormat(c.Input.Format); err != nil {
			return fmt.Errorf("input.format: %w", err)
		}
	}
	if c.Metrics.Textfile != "" && c.Metrics.Context == "" {
		return fmt.Errorf("metrics.context is required when metrics.textfile is set")
	}

	return nil
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// parseLevel maps a level name to a slog.Level.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("log_level %q: want debug, info, warn or error", name)
}
