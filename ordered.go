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

package avltree

import "github.com/komiamiko/avltree/abstract"

// FindEquivalent searches t for a value equivalent to v under its
// configured comparator, without mutating t. It assumes at most one
// equivalent value is ever present, the invariant a merge-always
// policy maintains; see abstract.FindEquivalent.
func FindEquivalent[V any, S abstract.Size, R any, Result any](t *Tree[V, S, R, Result], v V) (found V, index S, ok bool) {
	return abstract.FindEquivalent(&t.cfg, t.root, v)
}

// RemoveEquivalent removes the value equivalent to v under t's
// configured comparator, under the same at-most-one assumption as
// FindEquivalent.
func RemoveEquivalent[V any, S abstract.Size, R any, Result any](t *Tree[V, S, R, Result], v V) (removed V, index S, found bool, err error) {
	root, _, removed, index, found, err := abstract.RemoveEquivalent(&t.cfg, t.root, v)
	if err != nil {
		var zero V
		return zero, 0, false, err
	}
	t.root = root
	t.debugCheck()
	return removed, index, found, nil
}

// FindOrdered searches t for a value exactly equal to v without
// mutating it, using the same less-dichotomy-then-== search
// RemoveOrdered performs.
func FindOrdered[V comparable, S abstract.Size, R any, Result any](t *Tree[V, S, R, Result], v V) (found V, index S, ok bool) {
	return abstract.FindOrdered(&t.cfg, t.root, v)
}

// RemoveOrdered searches t for a value exactly equal to v and removes
// it if found. It is a package-level function rather than a method
// because Go methods cannot add a comparable constraint beyond what
// Tree itself declares for V. found is false, and t is unchanged, if
// no exact match exists.
func RemoveOrdered[V comparable, S abstract.Size, R any, Result any](t *Tree[V, S, R, Result], v V) (index S, found bool, err error) {
	root, _, index, found, err := abstract.RemoveOrdered(&t.cfg, t.root, v)
	if err != nil {
		return 0, false, err
	}
	t.root = root
	t.debugCheck()
	return index, found, nil
}

// ReplaceOrdered removes vold and inserts vnew via RemoveOrdered and
// InsertOrdered. found is false, and t is unchanged, if vold is not
// present.
func ReplaceOrdered[V comparable, S abstract.Size, R any, Result any](
	t *Tree[V, S, R, Result], vold, vnew V,
) (result abstract.ReplaceOrderedResult[S], merged bool, found bool, err error) {
	root, merged, result, found, err := abstract.ReplaceOrdered(&t.cfg, t.root, vold, vnew)
	if err != nil {
		return abstract.ReplaceOrderedResult[S]{}, false, false, err
	}
	t.root = root
	t.debugCheck()
	return result, merged, found, nil
}
