// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/config"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/coverage"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/errors"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/observability"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/output"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/quality"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

func (s *session) coverageReporter(ctx context.Context, reports []string) (*coverage.XMLReporter, error) {
	if len(reports) == 0 {
		return nil, errors.ValidationError("no coverage reports given", nil)
	}
	docs, err := coverage.LoadFiles(ctx, reports)
	if err != nil {
		return nil, err
	}
	s.log.Info("loaded coverage reports", observability.Strings("reports", reports))
	return coverage.NewXMLReporter(docs,
		coverage.WithLogger(s.log),
		coverage.WithMetrics(s.metrics),
	), nil
}

// qualityReporter builds the reporter for tc. The returned cleanup closes
// report files and releases the timeout; call it once the reporter is done.
func (s *session) qualityReporter(ctx context.Context, tc config.ToolConfig) (*quality.Reporter, func(), error) {
	var files []*os.File
	cancel := context.CancelFunc(func() {})
	cleanup := func() {
		cancel()
		for _, f := range files {
			f.Close()
		}
	}

	readers := make([]io.Reader, 0, len(tc.Reports))
	for _, path := range tc.Reports {
		f, err := os.Open(path)
		if err != nil {
			cleanup()
			return nil, nil, errors.ReportError(fmt.Sprintf("failed to open %s report", tc.Name), err).
				WithContext("path", path)
		}
		files = append(files, f)
		readers = append(readers, f)
	}

	if d := tc.TimeoutDuration(); d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}

	opts := []quality.Option{
		quality.WithContext(ctx),
		quality.WithLogger(s.log),
		quality.WithMetrics(s.metrics),
	}
	if len(tc.Args) > 0 {
		opts = append(opts, quality.WithArgs(tc.Args...))
	}
	if len(tc.Extensions) > 0 {
		opts = append(opts, quality.WithExtensions(tc.Extensions...))
	}

	rep, err := quality.NewRegistry().New(tc.Name, tc.Driver, readers, opts...)
	if err != nil {
		cleanup()
		return nil, nil, errors.ValidationError("unknown quality tool", err)
	}
	return rep, cleanup, nil
}

func (s *session) report(ctx context.Context, rep violations.Reporter, paths []string) error {
	res, err := output.Collect(rep, paths)
	if err != nil {
		return err
	}
	return s.out.Report(ctx, res)
}
