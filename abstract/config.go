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

package abstract

import "cmp"

// Config bundles the policy objects that parameterize a tree: the
// comparator used by ordered operations, the merger consulted on
// every insert, and the range-query lift/combine pair. It is held by
// value on the facade and passed down to every subtree operation.
// RangePost is deliberately not a member here: it projects to a
// caller-chosen Result type independent of the tree's own type
// parameters, so RangeQuery (range.go) takes it as an explicit
// argument instead of threading a fourth type parameter through every
// operation in the package.
//
// Unlike the facade that owns it, Config carries no defaults of its
// own: every field must be populated by the caller before use, the
// same way the teacher's abstract.Aug implementations are always
// supplied in full by the facade that instantiates them.
type Config[V any, S Size, R any] struct {
	// Less is a strict weak order, used only by ordered operations.
	Less func(a, b V) bool

	// Merge attempts to fold donor into target, mutating target and
	// returning true only if it did. It must not mutate donor on a
	// false return, and on a true return it must leave target in a
	// position consistent with target's original Less-class.
	Merge func(target *V, donor V) bool

	// RangePre lifts a single element to the range-intermediate type.
	RangePre func(V) R

	// RangeCombine associatively combines two range intermediates.
	RangeCombine func(a, b R) R

	Allocator Allocator[V, S, R]
}

// DefaultLess returns the natural strict order for an ordered type,
// via the standard library's cmp package.
func DefaultLess[V cmp.Ordered](a, b V) bool { return cmp.Less(a, b) }

// NeverMerge is the default merger: it never absorbs the donor.
func NeverMerge[V any](*V, V) bool { return false }

// MergeIfEqual absorbs the donor without modifying target whenever
// the two compare equal; used by the set facade.
func MergeIfEqual[V comparable](target *V, donor V) bool {
	return *target == donor
}

// Unit is the default range-intermediate/result type: a zero-size
// monoid whose combine is total and always returns the sole value.
type Unit = struct{}

// UnitRangePre is the default RangePre for trees with no range
// query: every element lifts to Unit.
func UnitRangePre[V any](V) Unit { return Unit{} }

// UnitRangeCombine is the default RangeCombine paired with
// UnitRangePre: combining two units produces the unit.
func UnitRangeCombine(Unit, Unit) Unit { return Unit{} }

// UnitRangePost is the default RangePost paired with UnitRangePre:
// the identity projection on Unit.
func UnitRangePost(Unit) Unit { return Unit{} }
