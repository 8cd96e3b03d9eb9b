// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/errors"
)

// Default config file names to search for
var defaultConfigFiles = []string{
	".diff-cover.yaml",
	".diff-cover.yml",
	".diff-cover.toml",
}

// Load loads configuration from a specific file path.
// Files ending in .toml are read as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	// Apply defaults
	applyDefaults(&cfg)

	// Validate
	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations
// Search order:
// 1. Current directory
// 2. Parent directories (up to root)
func LoadDefault() (*Config, error) {
	path, err := findInParents(".")
	if err != nil {
		// No config found - return default config
		return DefaultConfig(), nil
	}
	return Load(path)
}

// LoadWithOverrides loads config from path (or the default locations when
// path is empty, honouring DIFF_COVER_CONFIG) and applies environment
// variable overrides.
func LoadWithOverrides(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("DIFF_COVER_CONFIG")
	}

	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if val := os.Getenv("DIFF_COVER_LOG_LEVEL"); val != "" {
		cfg.Global.LogLevel = val
	}
	if val := os.Getenv("DIFF_COVER_LOG_FORMAT"); val != "" {
		cfg.Global.LogFormat = val
	}
	if val := os.Getenv("DIFF_COVER_METRICS_FILE"); val != "" {
		cfg.Global.MetricsFile = val
	}
	if val := os.Getenv("DIFF_COVER_COVERAGE_REPORTS"); val != "" {
		cfg.Coverage.Reports = splitList(val)
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}
	return cfg, nil
}

// findInParents searches for a config file in startDir and its parents
func findInParents(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, filename := range defaultConfigFiles {
			configPath := filepath.Join(dir, filename)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		// Move to parent directory
		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			// Reached root
			break
		}
		dir = parentDir
	}

	return "", errors.ConfigError("no config file found", nil)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
