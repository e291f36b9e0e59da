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

// Package ordmap is a sorted key/value map backed by an AVL tree: the
// comparator and merge policy compare and combine on the key only,
// the way the teacher's interval package compares only the interval
// bound of a larger value.
package ordmap

import (
	"cmp"

	"github.com/komiamiko/avltree"
	"github.com/komiamiko/avltree/abstract"
)

// pair is one key/value binding.
type pair[K cmp.Ordered, M any] struct {
	Key    K
	Mapped M
}

// Map holds key/value pairs sorted by key, at most one value per key.
type Map[K cmp.Ordered, M any] struct {
	t *avltree.Tree[pair[K, M], uint, abstract.Unit, abstract.Unit]
}

// New returns an empty Map ordered by K's natural order.
func New[K cmp.Ordered, M any]() *Map[K, M] {
	less := func(a, b pair[K, M]) bool { return a.Key < b.Key }
	merge := func(target *pair[K, M], donor pair[K, M]) bool {
		if target.Key != donor.Key {
			return false
		}
		target.Mapped = donor.Mapped
		return true
	}
	t := avltree.New[pair[K, M], uint](
		avltree.WithLess[pair[K, M], uint, abstract.Unit, abstract.Unit](less),
		avltree.WithMerge[pair[K, M], uint, abstract.Unit, abstract.Unit](merge),
	)
	return &Map[K, M]{t: t}
}

// Len returns the number of keys.
func (m *Map[K, M]) Len() int { return int(m.t.Size()) }

// Set binds key to mapped, overwriting any existing binding.
func (m *Map[K, M]) Set(key K, mapped M) error {
	_, _, err := m.t.InsertOrdered(pair[K, M]{Key: key, Mapped: mapped})
	return err
}

// Get returns the value bound to key, if any.
func (m *Map[K, M]) Get(key K) (mapped M, ok bool) {
	found, _, ok := avltree.FindEquivalent(m.t, pair[K, M]{Key: key})
	return found.Mapped, ok
}

// Delete removes the binding for key, if any.
func (m *Map[K, M]) Delete(key K) (removed M, ok bool, err error) {
	found, _, ok, err := avltree.RemoveEquivalent(m.t, pair[K, M]{Key: key})
	if err != nil || !ok {
		var zero M
		return zero, false, err
	}
	return found.Mapped, true, nil
}

// AtIndex returns the key/value pair at in-order position i, which
// must be in [0, Len()).
func (m *Map[K, M]) AtIndex(i int) (key K, mapped M, err error) {
	p, err := m.t.GetAt(uint(i))
	if err != nil {
		var zeroK K
		var zeroM M
		return zeroK, zeroM, err
	}
	return p.Key, p.Mapped, nil
}

// InOrder visits every key/value pair in ascending key order, stopping
// early if visit returns false.
func (m *Map[K, M]) InOrder(visit func(key K, mapped M) bool) {
	m.t.InOrder(func(p pair[K, M]) bool { return visit(p.Key, p.Mapped) })
}

// CheckInvariants verifies the underlying tree's structural
// invariants; intended for tests.
func (m *Map[K, M]) CheckInvariants() error {
	return m.t.CheckInvariants(nil)
}
