// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// ToolProcess manages a single run of an external quality tool.
type ToolProcess struct {
	mu sync.RWMutex

	cmd *exec.Cmd
	ctx context.Context

	args    []string
	binary  string
	dir     string
	started bool
	exited  bool

	// Output buffers
	stdoutBuf bytes.Buffer
	stderrBuf bytes.Buffer

	exitCode int
}

// NewToolProcess creates a process for binary with the given arguments.
func NewToolProcess(binary string, args []string) *ToolProcess {
	return &ToolProcess{
		binary: binary,
		args:   args,
	}
}

// WithDir sets the working directory the tool runs in.
func (p *ToolProcess) WithDir(dir string) *ToolProcess {
	p.dir = dir
	return p
}

// Start starts the tool.
func (p *ToolProcess) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrProcessAlreadyRun
	}
	if p.binary == "" {
		return ErrEmptyDriver
	}

	path, err := exec.LookPath(p.binary)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, p.binary)
	}

	p.ctx = ctx
	p.cmd = exec.CommandContext(ctx, path, p.args...)
	p.cmd.Dir = p.dir
	p.cmd.Stdout = &p.stdoutBuf
	p.cmd.Stderr = &p.stderrBuf

	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.binary, err)
	}

	p.started = true
	return nil
}

// Wait blocks until the tool exits and both output channels are drained.
// A non-zero exit status is not an error: linters exit non-zero when they
// report problems. Only failures to run the process are returned.
func (p *ToolProcess) Wait() (stdout, stderr []byte, err error) {
	p.mu.RLock()
	if !p.started {
		p.mu.RUnlock()
		return nil, nil, ErrProcessNotRunning
	}
	cmd := p.cmd
	p.mu.RUnlock()

	waitErr := cmd.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.exited = true
	if cmd.ProcessState != nil {
		p.exitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := p.ctx.Err(); ctxErr != nil {
		return p.stdoutBuf.Bytes(), p.stderrBuf.Bytes(), fmt.Errorf("process interrupted: %w", ctxErr)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return p.stdoutBuf.Bytes(), p.stderrBuf.Bytes(), fmt.Errorf("process failed: %w", waitErr)
	}
	return p.stdoutBuf.Bytes(), p.stderrBuf.Bytes(), nil
}

// IsRunning checks if the process is running.
func (p *ToolProcess) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.started && !p.exited
}

// ExitCode returns the process exit code.
func (p *ToolProcess) ExitCode() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitCode
}
