// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package violations

import "sort"

// LineSet is a set of line numbers.
type LineSet map[int]struct{}

// NewLineSet creates a set holding lines.
func NewLineSet(lines ...int) LineSet {
	s := make(LineSet, len(lines))
	for _, n := range lines {
		s.Add(n)
	}
	return s
}

// Add inserts line n.
func (s LineSet) Add(n int) {
	s[n] = struct{}{}
}

// Contains reports whether n is in the set.
func (s LineSet) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of lines.
func (s LineSet) Len() int {
	return len(s)
}

// Union returns a new set holding the lines of s and other.
func (s LineSet) Union(other LineSet) LineSet {
	out := make(LineSet, len(s)+len(other))
	for n := range s {
		out.Add(n)
	}
	for n := range other {
		out.Add(n)
	}
	return out
}

// Sorted returns the lines in ascending order.
func (s LineSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
