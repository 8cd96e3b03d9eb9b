// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"github.com/spf13/cobra"
)

func newCoverageCmd(flags *globalFlags) *cobra.Command {
	var reports []string

	cmd := &cobra.Command{
		Use:   "coverage [flags] FILE...",
		Short: "Report uncovered lines from Cobertura XML reports",
		Long: `Merge one or more Cobertura XML coverage reports and print, for each FILE,
the lines left uncovered by every report that measures it.

Reports default to coverage.reports from the configuration file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if len(reports) == 0 {
				reports = s.cfg.Coverage.Reports
			}
			rep, err := s.coverageReporter(cmd.Context(), reports)
			if err != nil {
				return err
			}
			return s.report(cmd.Context(), rep, args)
		},
	}

	cmd.Flags().StringArrayVarP(&reports, "report", "r", nil, "coverage XML report (repeatable)")
	return cmd
}
