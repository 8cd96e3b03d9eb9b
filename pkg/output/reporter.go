// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"context"
	"io"
)

// Reporter writes formatted results to a stream.
type Reporter struct {
	w         io.Writer
	formatter *Formatter
}

// NewReporter creates a reporter.
func NewReporter(w io.Writer, formatter *Formatter) *Reporter {
	return &Reporter{w: w, formatter: formatter}
}

// Report writes one result.
func (r *Reporter) Report(ctx context.Context, result *Result) error {
	s, err := r.formatter.Format(ctx, result)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, s)
	return err
}

// ReportBatch writes multiple results in order.
func (r *Reporter) ReportBatch(ctx context.Context, results []*Result) error {
	for _, res := range results {
		if err := r.Report(ctx, res); err != nil {
			return err
		}
	}
	return nil
}
