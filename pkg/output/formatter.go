// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output collects violations from report sources and formats them.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Result is everything one report source said about a set of files.
type Result struct {
	Source string       `json:"source"`
	Files  []FileResult `json:"files"`
}

// FileResult is one source's answer for one file.
type FileResult struct {
	Path       string                 `json:"path"`
	Violations []violations.Violation `json:"violations"`
	// Measured lists measured lines; it is empty when AllMeasured is set.
	Measured    []int `json:"measured,omitempty"`
	AllMeasured bool  `json:"all_measured"`
}

// Collect queries reporter for every path. The first error aborts collection.
func Collect(reporter violations.Reporter, paths []string) (*Result, error) {
	res := &Result{
		Source: reporter.Name(),
		Files:  make([]FileResult, 0, len(paths)),
	}

	for _, path := range paths {
		vs, err := reporter.Violations(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", reporter.Name(), err)
		}

		fr := FileResult{Path: path, Violations: vs}
		if lines, ok := reporter.MeasuredLines(path); ok {
			fr.Measured = lines.Sorted()
		} else {
			fr.AllMeasured = true
		}
		res.Files = append(res.Files, fr)
	}
	return res, nil
}

// Formatter formats results.
type Formatter struct {
	format string
	color  bool
}

// NewFormatter creates a formatter for format ("text" or "json").
func NewFormatter(format string) (*Formatter, error) {
	switch format {
	case "", FormatText:
		return &Formatter{format: FormatText}, nil
	case FormatJSON:
		return &Formatter{format: FormatJSON}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// WithColor enables ANSI colours in text output.
func (f *Formatter) WithColor(enabled bool) *Formatter {
	f.color = enabled
	return f
}

// Format formats a result.
func (f *Formatter) Format(ctx context.Context, result *Result) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.format == FormatJSON {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	}
	return f.text(result), nil
}

func (f *Formatter) text(result *Result) string {
	header := f.paint(color.New(color.Bold))
	path := f.paint(color.New(color.FgCyan))
	line := f.paint(color.New(color.FgYellow))
	clean := f.paint(color.New(color.FgGreen))

	var b strings.Builder
	fmt.Fprintln(&b, header.Sprint(result.Source))
	for _, fr := range result.Files {
		if len(fr.Violations) == 0 {
			fmt.Fprintf(&b, "  %s: %s\n", path.Sprint(fr.Path), clean.Sprint("no violations"))
			continue
		}
		fmt.Fprintf(&b, "  %s\n", path.Sprint(fr.Path))
		for _, v := range fr.Violations {
			lineNo := "-"
			if v.HasLine() {
				lineNo = fmt.Sprintf("%d", v.Line)
			}
			if v.Message == "" {
				fmt.Fprintf(&b, "    %s\n", line.Sprint(lineNo))
				continue
			}
			fmt.Fprintf(&b, "    %s: %s\n", line.Sprint(lineNo), v.Message)
		}
	}
	return b.String()
}

func (f *Formatter) paint(c *color.Color) *color.Color {
	if f.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
