// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a configuration.
func (v *Validator) Validate(cfg *Config) error {
	for i := range cfg.Quality {
		if err := v.ValidateTool(i, &cfg.Quality[i]); err != nil {
			return err
		}
	}
	if err := v.ValidateGlobal(&cfg.Global); err != nil {
		return err
	}
	return nil
}

// ValidateTool validates one quality tool entry.
func (v *Validator) ValidateTool(index int, cfg *ToolConfig) error {
	field := func(name string) string {
		return fmt.Sprintf("quality[%d].%s", index, name)
	}

	validTools := []string{ToolPep8, ToolPylint}
	if !oneOf(cfg.Name, validTools) {
		return &ValidationError{
			Field:   field("name"),
			Value:   cfg.Name,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validTools, ", ")),
		}
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return &ValidationError{
				Field:   field("extensions"),
				Value:   ext,
				Message: "must start with a dot",
			}
		}
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil || d <= 0 {
			return &ValidationError{
				Field:   field("timeout"),
				Value:   cfg.Timeout,
				Message: "must be a positive duration",
			}
		}
	}

	return nil
}

// ValidateGlobal validates global configuration.
func (v *Validator) ValidateGlobal(cfg *GlobalConfig) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if cfg.LogLevel != "" && !oneOf(cfg.LogLevel, validLogLevels) {
		return &ValidationError{
			Field:   "global.log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		}
	}

	validFormats := []string{"text", "json"}
	if cfg.LogFormat != "" && !oneOf(cfg.LogFormat, validFormats) {
		return &ValidationError{
			Field:   "global.log_format",
			Value:   cfg.LogFormat,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validFormats, ", ")),
		}
	}

	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// TimeoutDuration returns the parsed timeout, or zero when unset.
func (c ToolConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}
