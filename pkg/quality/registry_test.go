// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/quality"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

type flake8Grammar struct{ quality.StyleGrammar }

func (flake8Grammar) Name() string { return "flake8" }

func TestRegistryBuiltins(t *testing.T) {
	r := quality.NewRegistry()
	assert.Equal(t, []string{"pep8", "pylint"}, r.Names())

	fake := &fakeRunner{stdout: "a.py:3: [C0111] Missing docstring\n"}
	q, err := r.New("PyLint", "", nil, quality.WithRunner(fake))
	require.NoError(t, err)
	assert.Equal(t, "pylint", q.Name())

	got, err := q.Violations("a.py")
	require.NoError(t, err)
	assert.Equal(t, []violations.Violation{violations.New(3, "C0111: Missing docstring")}, got)
	assert.Equal(t, quality.DefaultLintArgs, fake.args)
}

func TestRegistryArgsOverride(t *testing.T) {
	fake := &fakeRunner{}
	q, err := quality.NewRegistry().New("pep8", "pycodestyle", nil,
		quality.WithRunner(fake), quality.WithArgs("--max-line-length=120", "src"))
	require.NoError(t, err)

	_, err = q.Violations("a.py")
	require.NoError(t, err)
	assert.Equal(t, "pycodestyle", fake.driver)
	assert.Equal(t, []string{"--max-line-length=120", "src"}, fake.args)
}

func TestRegistryUnknownTool(t *testing.T) {
	_, err := quality.NewRegistry().New("eslint", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pep8, pylint")
}

func TestRegistryCustomGrammar(t *testing.T) {
	r := quality.NewRegistry()
	r.Register(flake8Grammar{}, []string{"."})

	fake := &fakeRunner{stdout: "a.py:1:1: F401 unused import\n"}
	q, err := r.New("flake8", "", nil, quality.WithRunner(fake))
	require.NoError(t, err)
	assert.Equal(t, "flake8", q.Name())

	got, err := q.Violations("a.py")
	require.NoError(t, err)
	assert.Equal(t, []violations.Violation{violations.New(1, "F401 unused import")}, got)
	assert.Equal(t, "flake8", fake.driver)
}
