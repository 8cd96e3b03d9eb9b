// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package violations defines the shared model produced by every report source:
// a list of violations per source file plus, for coverage reports, the set of
// lines the instrumentation measured.
package violations

import (
	"fmt"
	"sort"
)

// Violation is a single reported issue.
//
// Line is zero when the source does not report line granularity, and Message
// is empty when the source attaches no description (coverage reports).
// Violation is comparable and can be used as a map key.
type Violation struct {
	Line    int    `json:"line"`
	Message string `json:"message,omitempty"`
}

// New creates a violation.
func New(line int, message string) Violation {
	return Violation{Line: line, Message: message}
}

// HasLine reports whether the violation is tied to a line.
func (v Violation) HasLine() bool {
	return v.Line > 0
}

func (v Violation) String() string {
	if v.Message == "" {
		return fmt.Sprintf("%d", v.Line)
	}
	return fmt.Sprintf("%d: %s", v.Line, v.Message)
}

// Reporter is implemented by every report source.
type Reporter interface {
	// Name returns a stable label for the source, used in report headers.
	Name() string

	// Violations returns the violations recorded for path. Paths are matched
	// exactly as they appear in the underlying report.
	Violations(path string) ([]Violation, error)

	// MeasuredLines returns the lines the source measured for path. ok is
	// false when the source does not track measurement, in which case every
	// line of the file counts as measured.
	MeasuredLines(path string) (lines LineSet, ok bool)
}

// Set is an unordered collection of distinct violations.
type Set map[Violation]struct{}

// NewSet creates a set holding vs.
func NewSet(vs ...Violation) Set {
	s := make(Set, len(vs))
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v.
func (s Set) Add(v Violation) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s Set) Contains(v Violation) bool {
	_, ok := s[v]
	return ok
}

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for v := range s {
		out.Add(v)
	}
	return out
}

// Intersect returns the violations present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set, len(small))
	for v := range small {
		if large.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// Sorted returns the violations ordered by line, then message.
func (s Set) Sorted() []Violation {
	out := make([]Violation, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Message < out[j].Message
	})
	return out
}
