package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	envConfigPath = "TESTDECK_CONFIG"
	envTheme      = "TESTDECK_THEME"
)

// Config is the root runtime configuration loaded from testdeck.json.
// Every field has a working default; the file is optional.
type Config struct {
	Present PresentConfig `json:"present"`
	Lint    LintConfig    `json:"lint,omitempty"`
	Export  ExportConfig  `json:"export,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty"`
}

// PresentConfig holds presenter defaults.
type PresentConfig struct {
	// Theme overrides the deck front matter theme when set.
	Theme string `json:"theme,omitempty"`
	// Width caps the render width; zero uses the terminal width.
	Width int `json:"width,omitempty"`
	// Watch enables live reload by default.
	Watch bool `json:"watch,omitempty"`
}

// LintConfig tunes the deck checks.
type LintConfig struct {
	Disabled      []string `json:"disabled,omitempty"`
	MaxSlideLines int      `json:"max_slide_lines,omitempty"`
	RuleCoverage  bool     `json:"rule_coverage,omitempty"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	OutputDir string `json:"output_dir,omitempty"`
}

// LoggingConfig controls structured log output format and verbosity.
type LoggingConfig struct {
	Format    string `json:"format,omitempty"`
	Level     string `json:"level,omitempty"`
	AddSource bool   `json:"add_source,omitempty"`
}

// LoadConfig resolves testdeck.json, unmarshals it, and applies
// environment overrides. A missing file yields the zero config; only an
// unreadable or malformed file is an error.
func LoadConfig() (*Config, error) {
	var cfg Config

	configPath, err := findConfigPath()
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		applyEnvOverrides(&cfg)
		return &cfg, nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if theme := strings.TrimSpace(os.Getenv(envTheme)); theme != "" {
		cfg.Present.Theme = theme
	}

	cfg.Lint.Disabled = slices.Clip(cleanList(cfg.Lint.Disabled))
}

func cleanList(items []string) []string {
	clean := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		clean = append(clean, trimmed)
	}
	return clean
}

// findConfigPath resolves the active config file location.
//
// Precedence is TESTDECK_CONFIG first, then cwd-local fallbacks. An empty
// return means no config file and no error.
func findConfigPath() (string, error) {
	if value := strings.TrimSpace(os.Getenv(envConfigPath)); value != "" {
		if info, err := os.Stat(value); err == nil && !info.IsDir() {
			return value, nil
		}
		return "", fmt.Errorf("%s does not point to a file: %s", envConfigPath, value)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current working directory: %w", err)
	}

	candidates := []string{
		filepath.Join(cwd, "testdeck.json"),
		filepath.Join(cwd, ".config", "testdeck.json"),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", nil
}
