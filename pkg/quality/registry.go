// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package quality

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// entry pairs a grammar with the arguments its driver gets by default.
type entry struct {
	grammar Grammar
	args    []string
}

// Registry maps tool names to grammars.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]entry
}

// NewRegistry creates a registry holding the built-in grammars.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]entry)}
	r.Register(StyleGrammar{}, DefaultStyleArgs)
	r.Register(LintGrammar{}, DefaultLintArgs)
	return r
}

// Register adds or replaces a grammar under its name.
func (r *Registry) Register(g Grammar, defaultArgs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[strings.ToLower(g.Name())] = entry{grammar: g, args: defaultArgs}
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tools))
	for name := range r.tools {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New creates a reporter for the named tool. Options are applied after the
// tool's default arguments, so WithArgs overrides them.
func (r *Registry) New(name, driver string, reports []io.Reader, opts ...Option) (*Reporter, error) {
	r.mu.RLock()
	e, ok := r.tools[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown quality tool %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}

	opts = append([]Option{WithArgs(e.args...)}, opts...)
	return NewReporter(e.grammar, driver, reports, opts...), nil
}
