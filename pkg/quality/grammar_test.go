// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/quality"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

func TestStyleGrammar(t *testing.T) {
	tests := []struct {
		line string
		path string
		want violations.Violation
		ok   bool
	}{
		{"new_file.py:1:17: E231 whitespace", "new_file.py", violations.New(1, "E231 whitespace"), true},
		{"a/b.py:120:80: E501 line too long (93 > 79 characters)", "a/b.py", violations.New(120, "E501 line too long (93 > 79 characters)"), true},
		{"a.py:1: E231 whitespace", "", violations.Violation{}, false},
		{"a.py:x:1: E231 whitespace", "", violations.Violation{}, false},
		{"a.py:99999999999999999999999:1: E1 overflow", "", violations.Violation{}, false},
		{"random noise", "", violations.Violation{}, false},
	}

	g := quality.StyleGrammar{}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			path, got, ok := g.ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLintGrammar(t *testing.T) {
	tests := []struct {
		line string
		path string
		want violations.Violation
		ok   bool
	}{
		{"file1.py:2: [W0612, cls_name.func] Unused variable 'd'", "file1.py", violations.New(2, "W0612: cls_name.func: Unused variable 'd'"), true},
		{"file1.py:1: [C0111] Missing docstring", "file1.py", violations.New(1, "C0111: Missing docstring"), true},
		{"file1.py:1: [C0111,func_1] Missing docstring", "file1.py", violations.New(1, "C0111: func_1: Missing docstring"), true},
		{"file.py:not_a_number: C0111: Missing docstring", "", violations.Violation{}, false},
		{"file.py:not_a_number: [C0111] Missing docstring", "", violations.Violation{}, false},
		{"==student.views:4", "", violations.Violation{}, false},
		{"************* Module app.views", "", violations.Violation{}, false},
		{"          ^", "", violations.Violation{}, false},
	}

	g := quality.LintGrammar{}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			path, got, ok := g.ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.want, got)
		})
	}
}
