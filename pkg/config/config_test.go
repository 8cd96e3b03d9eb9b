// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/config"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

// TestDefaultConfig tests the default configuration.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Global.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Global.LogFormat != "text" {
		t.Errorf("Expected default log format 'text', got '%s'", cfg.Global.LogFormat)
	}
	if len(cfg.Quality) != 0 {
		t.Errorf("Expected no default quality tools, got %d", len(cfg.Quality))
	}
}

// TestLoadYAML tests loading config from a YAML file.
func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
coverage:
  reports:
    - unit.xml
    - integration.xml

quality:
  - name: pylint
    args: ["-f", "parseable", "src"]
    timeout: 5m
  - name: pep8
    driver: pycodestyle
    reports: [pep8.txt]
    extensions: [".py", ".pyi"]

global:
  log_level: debug
  log_format: json
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !reflect.DeepEqual(cfg.Coverage.Reports, []string{"unit.xml", "integration.xml"}) {
		t.Errorf("Unexpected coverage reports: %v", cfg.Coverage.Reports)
	}
	if len(cfg.Quality) != 2 {
		t.Fatalf("Expected 2 quality tools, got %d", len(cfg.Quality))
	}

	pylint := cfg.Quality[0]
	if pylint.Driver != "pylint" {
		t.Errorf("Expected driver to default to name, got '%s'", pylint.Driver)
	}
	if pylint.TimeoutDuration() != 5*time.Minute {
		t.Errorf("Expected timeout 5m, got %v", pylint.TimeoutDuration())
	}

	pep8 := cfg.Quality[1]
	if pep8.Driver != "pycodestyle" {
		t.Errorf("Expected driver 'pycodestyle', got '%s'", pep8.Driver)
	}
	if !reflect.DeepEqual(pep8.Extensions, []string{".py", ".pyi"}) {
		t.Errorf("Unexpected extensions: %v", pep8.Extensions)
	}
	if pep8.TimeoutDuration() != 0 {
		t.Errorf("Expected no timeout, got %v", pep8.TimeoutDuration())
	}

	if cfg.Global.LogLevel != "debug" || cfg.Global.LogFormat != "json" {
		t.Errorf("Unexpected global config: %+v", cfg.Global)
	}
}

// TestLoadTOML tests loading config from a TOML file.
func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, ".diff-cover.toml", `
[coverage]
reports = ["coverage.xml"]

[[quality]]
name = "pep8"
reports = ["pep8.log"]

[global]
log_level = "warn"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !reflect.DeepEqual(cfg.Coverage.Reports, []string{"coverage.xml"}) {
		t.Errorf("Unexpected coverage reports: %v", cfg.Coverage.Reports)
	}
	if len(cfg.Quality) != 1 || cfg.Quality[0].Name != "pep8" || cfg.Quality[0].Driver != "pep8" {
		t.Errorf("Unexpected quality config: %+v", cfg.Quality)
	}
	if cfg.Global.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Global.LogFormat != "text" {
		t.Errorf("Expected default log format 'text', got '%s'", cfg.Global.LogFormat)
	}
}

// TestLoadInvalid tests loading invalid config files.
func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown tool":  "quality:\n  - name: flake9\n",
		"bad timeout":   "quality:\n  - name: pylint\n    timeout: soon\n",
		"bad extension": "quality:\n  - name: pylint\n    extensions: [py]\n",
		"bad log level": "global:\n  log_level: trace\n",
		"bad yaml":      "coverage: [unclosed\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, "config.yaml", content))
			if err == nil {
				t.Fatal("Expected error for invalid config, got nil")
			}
			if !errors.IsType(err, errors.ErrConfig) {
				t.Errorf("Expected a config error, got %v", err)
			}
		})
	}
}

// TestLoadMissingFile tests loading a file that does not exist.
func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.IsType(err, errors.ErrConfig) {
		t.Errorf("Expected a config error, got %v", err)
	}
}

// TestLoadWithEnvOverrides tests environment variable overrides.
func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "config.yaml", "global:\n  log_level: info\n")

	t.Setenv("DIFF_COVER_LOG_LEVEL", "warn")
	t.Setenv("DIFF_COVER_LOG_FORMAT", "json")
	t.Setenv("DIFF_COVER_COVERAGE_REPORTS", "a.xml, b.xml,")

	cfg, err := config.LoadWithOverrides(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Global.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn' from env, got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Global.LogFormat != "json" {
		t.Errorf("Expected log format 'json' from env, got '%s'", cfg.Global.LogFormat)
	}
	if !reflect.DeepEqual(cfg.Coverage.Reports, []string{"a.xml", "b.xml"}) {
		t.Errorf("Unexpected coverage reports from env: %v", cfg.Coverage.Reports)
	}
}

// TestLoadWithEnvInvalidLevel tests that env overrides are validated.
func TestLoadWithEnvInvalidLevel(t *testing.T) {
	path := writeConfig(t, "config.yaml", "")
	t.Setenv("DIFF_COVER_LOG_LEVEL", "loud")

	if _, err := config.LoadWithOverrides(path); err == nil {
		t.Error("Expected error for invalid log level in env, got nil")
	}
}

// TestLoadWithOverridesConfigEnv tests DIFF_COVER_CONFIG.
func TestLoadWithOverridesConfigEnv(t *testing.T) {
	path := writeConfig(t, "custom.yaml", "coverage:\n  reports: [x.xml]\n")
	t.Setenv("DIFF_COVER_CONFIG", path)

	cfg, err := config.LoadWithOverrides("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if !reflect.DeepEqual(cfg.Coverage.Reports, []string{"x.xml"}) {
		t.Errorf("Unexpected coverage reports: %v", cfg.Coverage.Reports)
	}
}

// TestLoadDefaultFindsParentConfig tests searching parent directories.
func TestLoadDefaultFindsParentConfig(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".diff-cover.yml"), []byte("global:\n  log_level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	cfg, err := config.LoadDefault()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Global.LogLevel != "error" {
		t.Errorf("Expected log level 'error' from parent config, got '%s'", cfg.Global.LogLevel)
	}
}

// TestValidator tests the configuration validator.
func TestValidator(t *testing.T) {
	v := config.NewValidator()

	cfg := config.DefaultConfig()
	if err := v.Validate(cfg); err != nil {
		t.Errorf("Valid config should pass validation, got error: %v", err)
	}

	withTool := config.DefaultConfig()
	withTool.Quality = []config.ToolConfig{{Name: "PyLint"}}
	if err := v.Validate(withTool); err != nil {
		t.Errorf("Tool names are case-insensitive, got error: %v", err)
	}

	badFormat := config.DefaultConfig()
	badFormat.Global.LogFormat = "xml"
	err := v.Validate(badFormat)
	var verr *config.ValidationError
	if !asValidationError(err, &verr) || verr.Field != "global.log_format" {
		t.Errorf("Expected log_format validation error, got %v", err)
	}
}

func asValidationError(err error, target **config.ValidationError) bool {
	ve, ok := err.(*config.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
