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

// Package set is an ordered set backed by an AVL tree: insert merges
// a duplicate into the existing element instead of allocating, so
// every element is unique and the tree stays in sorted order.
package set

import (
	"cmp"
	"errors"

	"github.com/komiamiko/avltree"
	"github.com/komiamiko/avltree/abstract"
)

var errOutOfOrder = errors.New("set: elements out of order")

// Set holds unique, cmp.Ordered-sorted elements.
type Set[V cmp.Ordered] struct {
	t *avltree.Tree[V, uint, abstract.Unit, abstract.Unit]
}

// New returns an empty Set ordered by V's natural order.
func New[V cmp.Ordered]() *Set[V] {
	t := avltree.New[V, uint](
		avltree.WithNaturalLess[V, uint, abstract.Unit, abstract.Unit](),
		avltree.WithMerge[V, uint, abstract.Unit, abstract.Unit](abstract.MergeIfEqual[V]),
	)
	return &Set[V]{t: t}
}

// Len returns the number of elements.
func (s *Set[V]) Len() int { return int(s.t.Size()) }

// Insert adds v, returning false if it was already present.
func (s *Set[V]) Insert(v V) (inserted bool, err error) {
	_, merged, err := s.t.InsertOrdered(v)
	if err != nil {
		return false, err
	}
	return !merged, nil
}

// Remove deletes v, returning false if it was not present.
func (s *Set[V]) Remove(v V) (removed bool, err error) {
	_, found, err := avltree.RemoveOrdered(s.t, v)
	return found, err
}

// Contains reports whether v is in the set.
func (s *Set[V]) Contains(v V) bool {
	_, _, ok := avltree.FindOrdered(s.t, v)
	return ok
}

// InOrder visits every element in ascending order, stopping early if
// visit returns false.
func (s *Set[V]) InOrder(visit func(V) bool) {
	s.t.InOrder(visit)
}

// CheckInvariants verifies the underlying tree's structural and
// sortedness invariants; intended for tests.
func (s *Set[V]) CheckInvariants() error {
	if err := s.t.CheckInvariants(nil); err != nil {
		return err
	}
	var violation error
	var prev V
	havePrev := false
	s.InOrder(func(v V) bool {
		if havePrev && !(prev < v) {
			violation = errOutOfOrder
			return false
		}
		prev, havePrev = v, true
		return true
	})
	return violation
}
