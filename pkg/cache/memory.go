// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"sync"
)

// Memo is a keyed write-once cache.
type Memo[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]V
}

// NewMemo creates an empty memo.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{
		items: make(map[K]V),
	}
}

// Get returns the value stored for key, calling compute to fill it on the
// first request. compute is called under the memo lock.
func (m *Memo[K, V]) Get(key K, compute func(K) V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.items[key]; ok {
		return v
	}
	v := compute(key)
	m.items[key] = v
	return v
}

// Peek returns the stored value for key without computing it.
func (m *Memo[K, V]) Peek(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

// Len returns the number of computed entries.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
