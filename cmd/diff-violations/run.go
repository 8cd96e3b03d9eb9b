// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/errors"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/observability"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags] FILE...",
		Short: "Run every reporter named in the configuration file",
		Long: `Run the coverage reporter (when coverage.reports is set) and each quality
tool listed under quality in the configuration file, printing one result
per reporter.

A failing quality tool is logged and the remaining reporters still run; the
command exits non-zero afterwards.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			ctx := cmd.Context()
			if len(s.cfg.Coverage.Reports) == 0 && len(s.cfg.Quality) == 0 {
				return errors.ConfigError("nothing to run: configure coverage.reports or quality tools", nil)
			}

			if len(s.cfg.Coverage.Reports) > 0 {
				rep, err := s.coverageReporter(ctx, s.cfg.Coverage.Reports)
				if err != nil {
					return err
				}
				if err := s.report(ctx, rep, args); err != nil {
					return err
				}
			}

			failed := 0
			for _, tc := range s.cfg.Quality {
				rep, cleanup, err := s.qualityReporter(ctx, tc)
				if err != nil {
					return err
				}
				err = s.report(ctx, rep, args)
				cleanup()
				if err == nil {
					continue
				}
				if errors.ShouldFailRun(err) {
					return err
				}
				failed++
				s.log.Error("quality tool failed",
					observability.String("tool", tc.Name),
					observability.String("driver", tc.Driver),
					observability.Err(err),
				)
			}

			if failed > 0 {
				return errors.ToolError(fmt.Sprintf("%d quality tool(s) failed", failed), nil)
			}
			return nil
		},
	}
}
