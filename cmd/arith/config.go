package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is read when --config is not given. Its absence is
// not an error.
const defaultConfigPath = ".arith.yaml"

var errInvalidConfig = errors.New("invalid config")

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// yamlConfig mirrors the on-disk layout of .arith.yaml.
type yamlConfig struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
}

// Config holds resolved CLI settings.
type Config struct {
	Format   string
	LogLevel slog.Level
	NoColor  bool
}

// DefaultConfig returns text output at warn level with color.
func DefaultConfig() Config {
	return Config{
		Format:   formatText,
		LogLevel: slog.LevelWarn,
	}
}

// loadConfig reads path over the defaults. When explicit is false a
// missing file yields the defaults.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w: %v", path, errInvalidConfig, err)
	}

	if dto.Format != "" {
		cfg.Format = dto.Format
	}
	if dto.LogLevel != "" {
		level, err := parseLevel(dto.LogLevel)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.LogLevel = level
	}
	cfg.NoColor = dto.NoColor

	if err := validateFormat(cfg.Format); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("%w: format %q: must be 'text', 'json', or 'yaml'", errInvalidConfig, format)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q: must be debug, info, warn or error", errInvalidConfig, s)
	}
	return level, nil
}
