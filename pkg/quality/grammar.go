// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package quality

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

// Grammar turns one line of tool output into a violation.
type Grammar interface {
	// Name is the tool family the grammar reads, e.g. "pep8".
	Name() string

	// ParseLine returns the file path and violation for a violation line.
	// ok is false for lines that are not violations; those are discarded.
	ParseLine(line string) (path string, v violations.Violation, ok bool)
}

// StyleGrammar reads pep8/pycodestyle output:
//
//	path:line:column: CODE message
type StyleGrammar struct{}

var styleLine = regexp.MustCompile(`^([^:]+):(\d+):\d+: (.+)$`)

// Name returns "pep8".
func (StyleGrammar) Name() string {
	return "pep8"
}

// ParseLine keeps the code and text after the column verbatim as the message.
func (StyleGrammar) ParseLine(line string) (string, violations.Violation, bool) {
	m := styleLine.FindStringSubmatch(line)
	if m == nil {
		return "", violations.Violation{}, false
	}
	n, ok := parseLineNumber(m[2])
	if !ok {
		return "", violations.Violation{}, false
	}
	return m[1], violations.New(n, m[3]), true
}

// LintGrammar reads pylint parseable output:
//
//	path:line: [CODE[, context]] message
//
// Everything else pylint prints (duplicate-code back references, source
// snippets, caret markers) does not match and is dropped.
type LintGrammar struct{}

var lintLine = regexp.MustCompile(`^([^:]+):([^:]+): \[(\w+),? ?([^\]]*)\] (.*)$`)

// Name returns "pylint".
func (LintGrammar) Name() string {
	return "pylint"
}

// ParseLine builds "CODE: message" or "CODE: context: message".
// Entries whose line token is not a decimal integer are dropped.
func (LintGrammar) ParseLine(line string) (string, violations.Violation, bool) {
	m := lintLine.FindStringSubmatch(line)
	if m == nil {
		return "", violations.Violation{}, false
	}
	n, ok := parseLineNumber(m[2])
	if !ok {
		return "", violations.Violation{}, false
	}

	code, context, text := m[3], strings.TrimSpace(m[4]), m[5]
	msg := code + ": " + text
	if context != "" {
		msg = code + ": " + context + ": " + text
	}
	return m[1], violations.New(n, msg), true
}

// parseLineNumber accepts only unsigned ASCII decimal numbers.
func parseLineNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
