// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "diff_cover"

// Metrics provides metrics collection for report sources.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// ToolInvocations counts external tool runs.
	// Labels: tool, status (success, stderr, start_failed)
	ToolInvocations *prometheus.CounterVec

	// ToolDuration measures how long external tool runs take.
	// Labels: tool
	ToolDuration *prometheus.HistogramVec

	// ViolationsParsed counts violations extracted from tool output.
	// Labels: grammar
	ViolationsParsed *prometheus.CounterVec

	// LinesDiscarded counts output lines that matched no grammar rule.
	// Labels: grammar
	LinesDiscarded *prometheus.CounterVec

	// CoverageDocuments counts parsed coverage documents.
	CoverageDocuments prometheus.Counter

	// CoverageMerges counts per-file merge computations.
	CoverageMerges prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to keep them isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ToolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "quality",
			Name:      "tool_invocations_total",
			Help:      "External quality tool invocations by tool and status",
		}, []string{"tool", "status"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "quality",
			Name:      "tool_invocation_seconds",
			Help:      "Duration of external quality tool invocations",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"tool"}),
		ViolationsParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "quality",
			Name:      "violations_parsed_total",
			Help:      "Violations extracted from quality tool output",
		}, []string{"grammar"}),
		LinesDiscarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "quality",
			Name:      "lines_discarded_total",
			Help:      "Non-empty output lines that did not match the grammar",
		}, []string{"grammar"}),
		CoverageDocuments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "coverage",
			Name:      "documents_total",
			Help:      "Coverage XML documents parsed",
		}),
		CoverageMerges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "coverage",
			Name:      "merges_total",
			Help:      "Per-file coverage merge computations",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ToolInvocations,
			m.ToolDuration,
			m.ViolationsParsed,
			m.LinesDiscarded,
			m.CoverageDocuments,
			m.CoverageMerges,
		)
	}
	return m
}

// RecordToolInvocation records one external tool run.
func (m *Metrics) RecordToolInvocation(tool, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.ToolInvocations.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(d.Seconds())
}

// RecordParse records the outcome of parsing one block of tool output.
func (m *Metrics) RecordParse(grammar string, parsed, discarded int) {
	if m == nil {
		return
	}
	m.ViolationsParsed.WithLabelValues(grammar).Add(float64(parsed))
	m.LinesDiscarded.WithLabelValues(grammar).Add(float64(discarded))
}

// RecordCoverageDocument records a parsed coverage document.
func (m *Metrics) RecordCoverageDocument() {
	if m == nil {
		return
	}
	m.CoverageDocuments.Inc()
}

// RecordCoverageMerge records a per-file merge.
func (m *Metrics) RecordCoverageMerge() {
	if m == nil {
		return
	}
	m.CoverageMerges.Inc()
}
