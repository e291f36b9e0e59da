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

// Package multiset is an ordered multiset backed by an AVL tree: each
// distinct key occupies one node carrying its own occurrence count,
// merged on insert the way original_source/avl_tree/avl_tree.cpp's
// merge_count functor does.
package multiset

import (
	"cmp"

	"github.com/komiamiko/avltree"
	"github.com/komiamiko/avltree/abstract"
)

// entry is one distinct key and how many times it has been inserted.
type entry[K cmp.Ordered] struct {
	Key   K
	Count uint
}

// Multiset counts occurrences of keys, kept in sorted order by key.
type Multiset[K cmp.Ordered] struct {
	t *avltree.Tree[entry[K], uint, abstract.Unit, abstract.Unit]
}

// New returns an empty Multiset ordered by K's natural order.
func New[K cmp.Ordered]() *Multiset[K] {
	less := func(a, b entry[K]) bool { return a.Key < b.Key }
	merge := func(target *entry[K], donor entry[K]) bool {
		if target.Key != donor.Key {
			return false
		}
		target.Count += donor.Count
		return true
	}
	t := avltree.New[entry[K], uint](
		avltree.WithLess[entry[K], uint, abstract.Unit, abstract.Unit](less),
		avltree.WithMerge[entry[K], uint, abstract.Unit, abstract.Unit](merge),
	)
	return &Multiset[K]{t: t}
}

// Len returns the number of distinct keys (not the total occurrence
// count).
func (m *Multiset[K]) Len() int { return int(m.t.Size()) }

// Add inserts one occurrence of k, returning its new total count.
// Lookup after insert uses FindEquivalent rather than FindOrdered: the
// node's Count field, incremented by the merge that just ran, would
// make an exact-== search against the pre-increment entry fail.
func (m *Multiset[K]) Add(k K) (count uint, err error) {
	e := entry[K]{Key: k, Count: 1}
	_, merged, err := m.t.InsertOrdered(e)
	if err != nil {
		return 0, err
	}
	if !merged {
		return 1, nil
	}
	found, _, _ := avltree.FindEquivalent(m.t, e)
	return found.Count, nil
}

// Count returns how many occurrences of k are present.
func (m *Multiset[K]) Count(k K) uint {
	found, _, ok := avltree.FindEquivalent(m.t, entry[K]{Key: k})
	if !ok {
		return 0
	}
	return found.Count
}

// Remove deletes every occurrence of k, returning the count removed.
func (m *Multiset[K]) Remove(k K) (removed uint, err error) {
	removedEntry, _, ok, err := avltree.RemoveEquivalent(m.t, entry[K]{Key: k})
	if err != nil || !ok {
		return 0, err
	}
	return removedEntry.Count, nil
}

// InOrder visits every (key, count) pair in ascending key order,
// stopping early if visit returns false.
func (m *Multiset[K]) InOrder(visit func(k K, count uint) bool) {
	m.t.InOrder(func(e entry[K]) bool { return visit(e.Key, e.Count) })
}

// CheckInvariants verifies the underlying tree's structural
// invariants; intended for tests.
func (m *Multiset[K]) CheckInvariants() error {
	return m.t.CheckInvariants(nil)
}
