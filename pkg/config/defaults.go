// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import "strings"

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Coverage: CoverageConfig{
			Reports: []string{},
		},
		Quality: []ToolConfig{},
		Global:  DefaultGlobalConfig(),
	}
}

// DefaultGlobalConfig returns default global configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// applyDefaults sets default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = "info"
	}
	if cfg.Global.LogFormat == "" {
		cfg.Global.LogFormat = "text"
	}
	for i := range cfg.Quality {
		cfg.Quality[i].Name = strings.ToLower(cfg.Quality[i].Name)
		if cfg.Quality[i].Driver == "" {
			cfg.Quality[i].Driver = cfg.Quality[i].Name
		}
	}
}
