// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package cache provides write-once, in-memory caching for parsed reports.
//
// Entries are computed lazily on first access and never recomputed for the
// lifetime of the owning value. Nothing is shared across owners.
package cache

import "sync"

// Once holds a single lazily computed value and error.
// The compute function runs at most once, even when it fails.
type Once[V any] struct {
	get func() (V, error)
}

// NewOnce creates a Once around compute.
func NewOnce[V any](compute func() (V, error)) *Once[V] {
	return &Once[V]{get: sync.OnceValues(compute)}
}

// Get returns the computed value, running compute on the first call.
func (o *Once[V]) Get() (V, error) {
	return o.get()
}
