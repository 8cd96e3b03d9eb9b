// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/config"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/observability"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/output"
)

// session holds what one command invocation shares between reporters.
type session struct {
	runID       string
	cfg         *config.Config
	log         observability.Logger
	registry    *prometheus.Registry
	metrics     *observability.Metrics
	out         *output.Reporter
	metricsFile string
}

func newSession(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	cfg, err := config.LoadWithOverrides(flags.config)
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.Global.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Global.LogFormat = flags.logFormat
	}
	if flags.metricsFile != "" {
		cfg.Global.MetricsFile = flags.metricsFile
	}
	if err := config.NewValidator().ValidateGlobal(&cfg.Global); err != nil {
		return nil, err
	}

	formatter, err := output.NewFormatter(flags.format)
	if err != nil {
		return nil, err
	}
	stdout := cmd.OutOrStdout()
	colored, err := useColor(flags.color, stdout)
	if err != nil {
		return nil, err
	}
	formatter.WithColor(colored)

	runID := uuid.NewString()
	reg := prometheus.NewRegistry()
	s := &session{
		runID:       runID,
		cfg:         cfg,
		log:         observability.NewLogger(cfg.Global.LogLevel, cfg.Global.LogFormat, cmd.ErrOrStderr()).With(observability.String("run_id", runID)),
		registry:    reg,
		metrics:     observability.NewMetrics(reg),
		out:         output.NewReporter(stdout, formatter),
		metricsFile: cfg.Global.MetricsFile,
	}
	s.log.Debug("session started", observability.String("command", cmd.Name()))
	return s, nil
}

// close flushes metrics to the configured file.
func (s *session) close() {
	if s.metricsFile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(s.metricsFile, s.registry); err != nil {
		s.log.Warn("failed to write metrics", observability.String("path", s.metricsFile), observability.Err(err))
		return
	}
	s.log.Debug("metrics written", observability.String("path", s.metricsFile))
}

// useColor resolves the --color mode for w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
