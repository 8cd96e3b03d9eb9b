// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/config"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/quality"
)

func newQualityCmd(flags *globalFlags) *cobra.Command {
	var tc config.ToolConfig

	cmd := &cobra.Command{
		Use:   "quality [flags] FILE...",
		Short: "Report quality tool violations",
		Long: `Run a pep8- or pylint-style quality tool once (or read its pre-generated
output with --report) and print the violations found in each FILE.

Files whose extension the tool does not handle report no violations.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			tc.Name = strings.ToLower(tc.Name)
			if tc.Driver == "" {
				tc.Driver = tc.Name
			}
			if err := config.NewValidator().ValidateTool(0, &tc); err != nil {
				return err
			}

			rep, cleanup, err := s.qualityReporter(cmd.Context(), tc)
			if err != nil {
				return err
			}
			defer cleanup()
			return s.report(cmd.Context(), rep, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&tc.Name, "tool", "t", config.ToolPep8, "output grammar: "+strings.Join(quality.NewRegistry().Names(), ", "))
	f.StringVar(&tc.Driver, "driver", "", "command to run (default: the tool name)")
	f.StringArrayVarP(&tc.Reports, "report", "r", nil, "pre-generated tool output (repeatable); the driver is not run")
	f.StringArrayVar(&tc.Args, "arg", nil, "argument passed to the driver (repeatable, replaces the defaults)")
	f.StringSliceVar(&tc.Extensions, "ext", nil, "file extensions the tool reports on (default .py)")
	f.StringVar(&tc.Timeout, "timeout", "", "bound the driver run, e.g. 5m")
	return cmd
}
