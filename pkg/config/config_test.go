package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "testdeck.json")
	content := `{
	  "present": {"theme": "dark", "width": 100, "watch": true},
	  "lint": {"disabled": ["long-slide", "  ", "no-heading"], "max_slide_lines": 30, "rule_coverage": true},
	  "export": {"output_dir": "out"},
	  "logging": {"format": "json", "level": "debug", "add_source": true}
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv(envConfigPath, path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Present.Theme != "dark" {
		t.Fatalf("present.theme = %q, want %q", cfg.Present.Theme, "dark")
	}
	if cfg.Present.Width != 100 {
		t.Fatalf("present.width = %d, want 100", cfg.Present.Width)
	}
	if !cfg.Lint.RuleCoverage {
		t.Fatal("lint.rule_coverage = false, want true")
	}
	if len(cfg.Lint.Disabled) != 2 {
		t.Fatalf("lint.disabled = %v, want blank entries dropped", cfg.Lint.Disabled)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging.format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadConfigMissingFileIsDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Present.Theme != "" || cfg.Present.Width != 0 {
		t.Fatalf("expected zero defaults, got %+v", cfg.Present)
	}
}

func TestLoadConfigInvalidEnvPath(t *testing.T) {
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "missing.json"))

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing config path")
	}
}

func TestThemeEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envTheme, "light")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Present.Theme != "light" {
		t.Fatalf("present.theme = %q, want env override %q", cfg.Present.Theme, "light")
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "testdeck.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv(envConfigPath, path)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
