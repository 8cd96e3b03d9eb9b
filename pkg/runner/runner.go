// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package runner invokes external quality tools and captures their output.
package runner

import (
	"context"
)

// Runner runs an external tool to completion and returns its output.
//
// stdout and stderr are returned raw; callers decide how to decode them.
// err is reserved for failures to run the tool at all.
type Runner interface {
	Run(ctx context.Context, driver string, args []string) (stdout, stderr []byte, err error)
}

// ExecRunner runs tools as local processes.
type ExecRunner struct {
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// NewExecRunner creates a runner for local processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts driver with args and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, driver string, args []string) ([]byte, []byte, error) {
	p := NewToolProcess(driver, args).WithDir(r.Dir)
	if err := p.Start(ctx); err != nil {
		return nil, nil, err
	}
	return p.Wait()
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, driver string, args []string) ([]byte, []byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, driver string, args []string) ([]byte, []byte, error) {
	return f(ctx, driver, args)
}
