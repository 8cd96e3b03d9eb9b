// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package runner

import "errors"

// Errors
var (
	ErrToolNotFound      = errors.New("tool binary not found in PATH")
	ErrProcessNotRunning = errors.New("process is not running")
	ErrProcessAlreadyRun = errors.New("process has already been started")
	ErrEmptyDriver       = errors.New("driver name is empty")
)
