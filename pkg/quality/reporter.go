// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package quality turns free-text output from style and lint checkers into
// per-file violations.
//
// Output comes either from caller-supplied streams or from a single run of
// the configured driver. Either way it is parsed once, on the first query,
// and served from memory afterwards.
package quality

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/cache"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/errors"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/observability"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/runner"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

// DefaultExtensions are the source extensions quality reporters answer for.
var DefaultExtensions = []string{".py"}

// byPath maps a file path to its violations in output order.
type byPath map[string][]violations.Violation

// Reporter serves violations parsed from a quality tool's output.
type Reporter struct {
	grammar    Grammar
	driver     string
	args       []string
	reports    []io.Reader
	runner     runner.Runner
	extensions []string
	ctx        context.Context

	log     observability.Logger
	metrics *observability.Metrics

	parsed *cache.Once[byPath]
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithArgs sets the arguments passed to the driver.
func WithArgs(args ...string) Option {
	return func(r *Reporter) {
		r.args = args
	}
}

// WithRunner replaces the process runner.
func WithRunner(rn runner.Runner) Option {
	return func(r *Reporter) {
		r.runner = rn
	}
}

// WithExtensions sets the file extensions the reporter answers for.
func WithExtensions(exts ...string) Option {
	return func(r *Reporter) {
		r.extensions = exts
	}
}

// WithContext sets the context the driver runs under.
func WithContext(ctx context.Context) Option {
	return func(r *Reporter) {
		r.ctx = ctx
	}
}

// WithLogger sets the logger.
func WithLogger(l observability.Logger) Option {
	return func(r *Reporter) {
		r.log = l
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Reporter) {
		r.metrics = m
	}
}

// NewReporter creates a reporter reading output with grammar.
//
// When reports is non-empty its streams are the complete tool output and
// driver is never run. Otherwise driver runs once, on the first query.
func NewReporter(grammar Grammar, driver string, reports []io.Reader, opts ...Option) *Reporter {
	r := &Reporter{
		grammar:    grammar,
		driver:     driver,
		reports:    reports,
		runner:     runner.NewExecRunner(),
		extensions: DefaultExtensions,
		ctx:        context.Background(),
		log:        observability.Nop(),
	}
	if r.driver == "" {
		r.driver = grammar.Name()
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(observability.String("reporter", grammar.Name()))
	r.parsed = cache.NewOnce(r.load)
	return r
}

// NewStyleReporter creates a pep8-style reporter.
func NewStyleReporter(driver string, reports []io.Reader, opts ...Option) *Reporter {
	opts = append([]Option{WithArgs(DefaultStyleArgs...)}, opts...)
	return NewReporter(StyleGrammar{}, driver, reports, opts...)
}

// NewLintReporter creates a pylint-style reporter.
func NewLintReporter(driver string, reports []io.Reader, opts ...Option) *Reporter {
	opts = append([]Option{WithArgs(DefaultLintArgs...)}, opts...)
	return NewReporter(LintGrammar{}, driver, reports, opts...)
}

// DefaultStyleArgs are passed to a style driver unless overridden.
var DefaultStyleArgs = []string{"."}

// DefaultLintArgs are passed to a lint driver unless overridden.
var DefaultLintArgs = []string{"-f", "parseable", "--reports=no", "--include-ids=y", "."}

// Name returns the tool family label.
func (r *Reporter) Name() string {
	return r.grammar.Name()
}

// MeasuredLines always reports no measurement: quality tools look at every
// line of a file.
func (r *Reporter) MeasuredLines(string) (violations.LineSet, bool) {
	return nil, false
}

// Violations returns the violations reported for path, in output order.
//
// Paths without a recognised extension return an empty result without
// touching the tool. If the tool wrote to its error channel, every call
// returns the same ErrTool error carrying that text.
func (r *Reporter) Violations(path string) ([]violations.Violation, error) {
	if !r.accepts(path) {
		return []violations.Violation{}, nil
	}

	parsed, err := r.parsed.Get()
	if err != nil {
		return nil, err
	}

	found := parsed[path]
	out := make([]violations.Violation, len(found))
	copy(out, found)
	return out, nil
}

func (r *Reporter) accepts(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range r.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// load produces the full per-file mapping. It runs at most once.
func (r *Reporter) load() (byPath, error) {
	out := make(byPath)

	if len(r.reports) > 0 {
		for i, report := range r.reports {
			text, err := decodeReader(report)
			if err != nil {
				return nil, errors.ReportError("failed to read quality report", err).
					WithContext("index", i)
			}
			r.parse(text, out)
		}
		return out, nil
	}

	stdout, err := r.invoke()
	if err != nil {
		return nil, err
	}
	r.parse(stdout, out)
	return out, nil
}

// invoke runs the driver and returns its decoded standard output.
func (r *Reporter) invoke() (string, error) {
	tool := r.grammar.Name()
	r.log.Info("running quality tool",
		observability.String("driver", r.driver),
		observability.Strings("args", r.args))

	start := time.Now()
	stdout, stderr, err := r.runner.Run(r.ctx, r.driver, r.args)
	elapsed := time.Since(start)

	if err != nil {
		r.metrics.RecordToolInvocation(tool, "start_failed", elapsed)
		r.log.Error("quality tool failed to run", observability.String("driver", r.driver), observability.Err(err))
		return "", errors.ToolError("failed to run "+r.driver, err).WithContext("driver", r.driver)
	}

	if len(stderr) > 0 {
		text := decodeBytes(stderr)
		r.metrics.RecordToolInvocation(tool, "stderr", elapsed)
		r.log.Warn("quality tool reported an error",
			observability.String("driver", r.driver),
			observability.String("stderr", text))
		return "", errors.ToolError(text, nil).WithContext("driver", r.driver)
	}

	r.metrics.RecordToolInvocation(tool, "success", elapsed)
	r.log.Debug("quality tool finished",
		observability.String("driver", r.driver),
		observability.Duration("elapsed", elapsed),
		observability.Int("bytes", len(stdout)))
	return decodeBytes(stdout), nil
}

// parse appends every violation in text to into.
func (r *Reporter) parse(text string, into byPath) {
	parsed, discarded := 0, 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		path, v, ok := r.grammar.ParseLine(line)
		if !ok {
			discarded++
			continue
		}
		into[path] = append(into[path], v)
		parsed++
	}

	r.metrics.RecordParse(r.grammar.Name(), parsed, discarded)
	if discarded > 0 {
		r.log.Debug("discarded unrecognised output lines", observability.Int("lines", discarded))
	}
}

// decodeReader reads r as UTF-8, replacing ill-formed sequences with U+FFFD.
func decodeReader(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, runes.ReplaceIllFormed()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeBytes(b []byte) string {
	s, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(s)
}
