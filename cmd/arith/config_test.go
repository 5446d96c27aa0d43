package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".arith.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingDefaultIsFine(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), ".arith.yaml"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_MissingExplicitFails(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), true)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadConfig_Values(t *testing.T) {
	path := writeConfig(t, "format: json\nlog_level: DEBUG\nno_color: true\n")

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != formatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Bad format", "format: xml\n", `format "xml"`},
		{"Bad level", "log_level: loud\n", `log level "loud"`},
		{"Bad YAML", "format: [json\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body), true)
			if !errors.Is(err, errInvalidConfig) {
				t.Fatalf("expected errInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

// TestExecute_FlagOverridesConfig verifies flags win over file values.
func TestExecute_FlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, "format: json\n")

	a, stdout, _ := testApp(t)
	root := newRootCmd(a)
	root.SetArgs([]string{"--config=" + path, "--format=text", "--no-color", "add", "2", "3"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "addition: 2 + 3 = 5") {
		t.Errorf("expected text output, got:\n%s", stdout.String())
	}
}

func TestExecute_ConfigFormat(t *testing.T) {
	path := writeConfig(t, "format: yaml\nno_color: true\n")

	a, stdout, _ := testApp(t)
	root := newRootCmd(a)
	root.SetArgs([]string{"--config=" + path, "square", "5"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "square: 25") {
		t.Errorf("expected YAML output, got:\n%s", stdout.String())
	}
}
