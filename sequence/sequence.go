// Copyright 2026 The avltree Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package sequence is a position-indexed list backed by an AVL tree:
// no comparator, no merge, just insert_at/get_at/remove_at/replace_at
// in O(log n).
package sequence

import (
	"github.com/komiamiko/avltree"
	"github.com/komiamiko/avltree/abstract"
)

// Sequence holds values in insertion order until mutated by index;
// it never reorders or merges elements.
type Sequence[V any] struct {
	t *avltree.Tree[V, uint, abstract.Unit, abstract.Unit]
}

// New returns an empty Sequence.
func New[V any]() *Sequence[V] {
	return &Sequence[V]{t: avltree.New[V, uint]()}
}

// Len returns the number of elements.
func (s *Sequence[V]) Len() int { return int(s.t.Size()) }

// At returns the element at position i, which must be in [0, Len()).
func (s *Sequence[V]) At(i int) (V, error) {
	return s.t.GetAt(uint(i))
}

// InsertAt inserts v at position i, which must be in [0, Len()],
// shifting everything at or after i one position to the right.
func (s *Sequence[V]) InsertAt(i int, v V) error {
	_, err := s.t.InsertAt(uint(i), v)
	return err
}

// RemoveAt removes and returns the element at position i, which must
// be in [0, Len()).
func (s *Sequence[V]) RemoveAt(i int) (V, error) {
	return s.t.RemoveAt(uint(i))
}

// ReplaceAt overwrites the element at position i with v.
func (s *Sequence[V]) ReplaceAt(i int, v V) error {
	_, err := s.t.ReplaceAt(uint(i), v)
	return err
}

// InOrder visits every element from first to last, stopping early if
// visit returns false.
func (s *Sequence[V]) InOrder(visit func(V) bool) {
	s.t.InOrder(visit)
}

// CheckInvariants verifies the underlying tree's structural
// invariants; intended for tests.
func (s *Sequence[V]) CheckInvariants() error {
	return s.t.CheckInvariants(nil)
}
