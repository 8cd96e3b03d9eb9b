// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package runner_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/runner"
)

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("skipping: %s not available: %v", name, err)
	}
}

func TestNewToolProcess(t *testing.T) {
	p := runner.NewToolProcess("pylint", []string{"-f", "parseable"})

	require.NotNil(t, p)
	assert.False(t, p.IsRunning(), "new process should not be running")
}

func TestToolProcessNotFound(t *testing.T) {
	p := runner.NewToolProcess("nonexistent-binary-12345", nil)

	err := p.Start(context.Background())
	assert.True(t, errors.Is(err, runner.ErrToolNotFound), "expected ErrToolNotFound, got %v", err)
}

func TestToolProcessEmptyDriver(t *testing.T) {
	err := runner.NewToolProcess("", nil).Start(context.Background())
	assert.ErrorIs(t, err, runner.ErrEmptyDriver)
}

func TestToolProcessWaitBeforeStart(t *testing.T) {
	_, _, err := runner.NewToolProcess("echo", nil).Wait()
	assert.ErrorIs(t, err, runner.ErrProcessNotRunning)
}

func TestToolProcessDoubleStart(t *testing.T) {
	requireBinary(t, "echo")

	p := runner.NewToolProcess("echo", []string{"hi"})
	ctx := context.Background()
	require.NoError(t, p.Start(ctx))

	err := p.Start(ctx)
	assert.ErrorIs(t, err, runner.ErrProcessAlreadyRun)

	_, _, err = p.Wait()
	require.NoError(t, err)
}

func TestExecRunnerCapturesBothChannels(t *testing.T) {
	requireBinary(t, "sh")

	stdout, stderr, err := runner.NewExecRunner().Run(context.Background(), "sh",
		[]string{"-c", "echo 'a.py:1:1: E1 x'; echo whoops >&2"})

	require.NoError(t, err)
	assert.Equal(t, "a.py:1:1: E1 x\n", string(stdout))
	assert.Equal(t, "whoops\n", string(stderr))
}

func TestExecRunnerIgnoresExitStatus(t *testing.T) {
	requireBinary(t, "sh")

	p := runner.NewToolProcess("sh", []string{"-c", "echo out; exit 4"})
	require.NoError(t, p.Start(context.Background()))

	stdout, stderr, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(stdout))
	assert.Empty(t, stderr)
	assert.Equal(t, 4, p.ExitCode())
	assert.False(t, p.IsRunning())
}

func TestRunnerFunc(t *testing.T) {
	var got []string
	r := runner.RunnerFunc(func(_ context.Context, driver string, args []string) ([]byte, []byte, error) {
		got = append([]string{driver}, args...)
		return []byte("out"), nil, nil
	})

	out, _, err := r.Run(context.Background(), "pep8", []string{"."})
	require.NoError(t, err)
	assert.Equal(t, "out", string(out))
	assert.Equal(t, []string{"pep8", "."}, got)
}

func TestExecRunnerTimeout(t *testing.T) {
	requireBinary(t, "sleep")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := runner.NewExecRunner().Run(ctx, "sleep", []string{"5"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
