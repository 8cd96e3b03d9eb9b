// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package coverage merges one or more Cobertura-style coverage reports into
// per-file violations and measured lines.
//
// A line is a violation only when every report that mentions the file left it
// uncovered. Measured lines are the union across reports.
package coverage

import (
	"github.com/cicd-ai-toolkit/diff-cover/pkg/cache"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/observability"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

// ReporterName is the label coverage reports are shown under.
const ReporterName = "XML"

// record is the merged answer for one file.
type record struct {
	violations violations.Set
	measured   violations.LineSet
}

// XMLReporter serves merged coverage answers per file.
type XMLReporter struct {
	docs    []*Document
	memo    *cache.Memo[string, record]
	log     observability.Logger
	metrics *observability.Metrics
}

// Option configures an XMLReporter.
type Option func(*XMLReporter)

// WithLogger sets the logger.
func WithLogger(l observability.Logger) Option {
	return func(r *XMLReporter) {
		r.log = l
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *XMLReporter) {
		r.metrics = m
	}
}

// NewXMLReporter creates a reporter over one or more parsed documents.
// nil documents are ignored.
func NewXMLReporter(docs []*Document, opts ...Option) *XMLReporter {
	r := &XMLReporter{
		memo: cache.NewMemo[string, record](),
		log:  observability.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, d := range docs {
		if d == nil {
			continue
		}
		r.docs = append(r.docs, d)
		r.metrics.RecordCoverageDocument()
		if d.skipped > 0 {
			r.log.Warn("skipped malformed coverage lines",
				observability.String("source", d.Source),
				observability.Int("lines", d.skipped))
		}
	}
	return r
}

// Name returns the label for coverage reports.
func (r *XMLReporter) Name() string {
	return ReporterName
}

// Violations returns the lines left uncovered by every report that mentions
// path, ordered by line. The error is always nil.
func (r *XMLReporter) Violations(path string) ([]violations.Violation, error) {
	return r.record(path).violations.Sorted(), nil
}

// MeasuredLines returns the union of lines measured for path. ok is always
// true; a file no report mentions has no measured lines.
func (r *XMLReporter) MeasuredLines(path string) (violations.LineSet, bool) {
	return r.record(path).measured.Union(nil), true
}

func (r *XMLReporter) record(path string) record {
	return r.memo.Get(path, r.merge)
}

// merge folds every document's evidence for path. Documents that do not
// mention path take no part in the intersection.
func (r *XMLReporter) merge(path string) record {
	measured := violations.NewLineSet()
	var uncovered violations.Set
	mentions := 0

	for _, d := range r.docs {
		f, ok := d.files[path]
		if !ok {
			continue
		}
		mentions++
		measured = measured.Union(f.measured)
		if uncovered == nil {
			uncovered = f.uncovered.Clone()
			continue
		}
		uncovered = uncovered.Intersect(f.uncovered)
	}

	if uncovered == nil {
		uncovered = violations.NewSet()
	}

	r.metrics.RecordCoverageMerge()
	r.log.Debug("merged coverage",
		observability.String("path", path),
		observability.Int("documents", mentions),
		observability.Int("violations", len(uncovered)),
		observability.Int("measured", measured.Len()))

	return record{violations: uncovered, measured: measured}
}
