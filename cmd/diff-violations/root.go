// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/version"
)

// globalFlags are shared by every subcommand. Empty values defer to the
// configuration file.
type globalFlags struct {
	config      string
	logLevel    string
	logFormat   string
	metricsFile string
	format      string
	color       string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "diff-violations",
		Short: "Report coverage and quality violations per file",
		Long: `diff-violations answers, for each source file, which lines are uncovered
according to one or more Cobertura XML coverage reports, or which lines a
pep8- or pylint-style quality tool complains about.`,
		Version:       version.FullString(),
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "path to configuration file (default: .diff-cover.{yaml,yml,toml} in cwd or a parent)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text, json")
	pf.StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus text metrics to this file on exit")
	pf.StringVarP(&flags.format, "format", "f", "text", "output format: text, json")
	pf.StringVar(&flags.color, "color", "auto", "colorize text output: auto, always, never")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCoverageCmd(&flags),
		newQualityCmd(&flags),
		newRunCmd(&flags),
	)
	return rootCmd
}
