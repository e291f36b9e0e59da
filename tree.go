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

// Package avltree is a generic, augmented AVL tree: an ordered
// sequence indexable by position, optionally also ordered by a
// comparator, with an associative range-monoid fold cached at every
// node. See the sequence, set, multiset, and ordmap packages for
// ready-made collection facades built on top of it.
package avltree

import (
	"io"

	"github.com/komiamiko/avltree/abstract"
)

// Tree is an augmented AVL tree over values of type V, indexed by the
// unsigned integer type S, with a range-monoid intermediate type R and
// a final range-query result type Result. Construct one with New (for
// the common case of no range queries) or NewRanged.
//
// A Tree is not safe for concurrent use without external
// synchronization.
type Tree[V any, S abstract.Size, R any, Result any] struct {
	root  *abstract.Node[V, S, R]
	cfg   abstract.Config[V, S, R]
	rpost func(R) Result
}

// Size returns the number of elements in the tree.
func (t *Tree[V, S, R, Result]) Size() S {
	return abstract.SizeOf(t.root)
}

// GetAt returns the value at in-order position i. i must be in
// [0, Size()).
func (t *Tree[V, S, R, Result]) GetAt(i S) (V, error) {
	return abstract.Get(t.root, i)
}

// InsertAt inserts v at in-order position i, which must be in
// [0, Size()]. merged reports whether v was absorbed by the
// configured merge policy into an existing element rather than
// allocating a new node.
func (t *Tree[V, S, R, Result]) InsertAt(i S, v V) (merged bool, err error) {
	root, _, merged, err := abstract.InsertAt(&t.cfg, t.root, i, t.Size(), v)
	if err != nil {
		return false, err
	}
	t.root = root
	t.debugCheck()
	return merged, nil
}

// RemoveAt removes and returns the value at in-order position i,
// which must be in [0, Size()).
func (t *Tree[V, S, R, Result]) RemoveAt(i S) (V, error) {
	root, _, removed, err := abstract.RemoveAt(&t.cfg, t.root, i, t.Size())
	if err != nil {
		var zero V
		return zero, err
	}
	t.root = root
	t.debugCheck()
	return removed, nil
}

// ReplaceAt replaces the value at in-order position i with v, a
// remove followed by a merge-eligible insert at the same index.
func (t *Tree[V, S, R, Result]) ReplaceAt(i S, v V) (merged bool, err error) {
	root, merged, err := abstract.ReplaceAt(&t.cfg, t.root, i, t.Size(), v)
	if err != nil {
		return false, err
	}
	t.root = root
	t.debugCheck()
	return merged, nil
}

// InsertOrdered inserts v at the leftmost position consistent with
// the configured comparator, merging into an equivalent existing
// element when the merge policy accepts it. WithLess must have been
// supplied at construction.
func (t *Tree[V, S, R, Result]) InsertOrdered(v V) (index S, merged bool, err error) {
	root, _, merged, index, err := abstract.InsertOrdered(&t.cfg, t.root, v)
	if err != nil {
		return 0, false, err
	}
	t.root = root
	t.debugCheck()
	return index, merged, nil
}

// RangeQuery folds the configured range monoid over positions
// [lo, hi) and projects the accumulated intermediate through the
// configured postprocess. lo < hi and hi <= Size() are required.
func (t *Tree[V, S, R, Result]) RangeQuery(lo, hi S) (Result, error) {
	return abstract.RangeQuery(&t.cfg, t.root, lo, hi, t.rpost)
}

// InOrder visits every value in ascending in-order position, stopping
// early if visit returns false.
func (t *Tree[V, S, R, Result]) InOrder(visit func(V) bool) {
	abstract.InOrder(t.root, visit)
}

// CheckInvariants verifies the tree's structural invariants (node
// size, balance factor, and, when rangeEqual is non-nil, the cached
// range fold). Intended for tests
// and the avltree_debug build tag, not production call paths: it
// walks every node and is therefore O(n).
func (t *Tree[V, S, R, Result]) CheckInvariants(rangeEqual func(a, b R) bool) error {
	return abstract.CheckInvariants(t.root, t.cfg.RangePre, t.cfg.RangeCombine, rangeEqual)
}

// Height returns the tree's height (0 for an empty tree).
func (t *Tree[V, S, R, Result]) Height() int {
	return abstract.Height(t.root)
}

// Dump writes an indented tree drawing to w, one value per line
// annotated with its balance factor. format renders a single value;
// pass nil for fmt.Sprint.
func (t *Tree[V, S, R, Result]) Dump(w io.Writer, format func(V) string) {
	abstract.Dump(w, t.root, format)
}

// DumpColor is Dump with the balance annotation colorized.
func (t *Tree[V, S, R, Result]) DumpColor(w io.Writer, format func(V) string) {
	abstract.DumpColor(w, t.root, format)
}
