// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for diff-cover.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Config file: path given explicitly, $DIFF_COVER_CONFIG, or the first
//    .diff-cover.{yaml,yml,toml} found in the current directory or a parent
// 3. Environment Variables: DIFF_COVER_*
package config

// Config represents the complete application configuration.
type Config struct {
	Coverage CoverageConfig `yaml:"coverage" toml:"coverage"`
	Quality  []ToolConfig   `yaml:"quality" toml:"quality"`
	Global   GlobalConfig   `yaml:"global" toml:"global"`
}

// CoverageConfig lists the coverage XML reports to merge.
type CoverageConfig struct {
	Reports []string `yaml:"reports" toml:"reports"`
}

// ToolConfig configures one quality reporter.
type ToolConfig struct {
	// Name selects the output grammar: "pep8" or "pylint".
	Name string `yaml:"name" toml:"name"`
	// Driver is the command to run; defaults to Name.
	Driver string `yaml:"driver,omitempty" toml:"driver"`
	// Args replace the grammar's default arguments when set.
	Args []string `yaml:"args,omitempty" toml:"args"`
	// Reports are pre-generated output files. When set the driver is not run.
	Reports []string `yaml:"reports,omitempty" toml:"reports"`
	// Extensions are the source extensions the tool reports on.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions"`
	// Timeout bounds the driver run, e.g. "5m". Empty means no limit.
	Timeout string `yaml:"timeout,omitempty" toml:"timeout"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel    string `yaml:"log_level" toml:"log_level"`       // debug, info, warn, error
	LogFormat   string `yaml:"log_format" toml:"log_format"`     // text, json
	MetricsFile string `yaml:"metrics_file" toml:"metrics_file"` // write Prometheus text metrics here on exit
}

// Tool kinds understood by the quality reporters.
const (
	ToolPep8   = "pep8"
	ToolPylint = "pylint"
)
