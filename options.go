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

import (
	"cmp"

	"github.com/komiamiko/avltree/abstract"
)

// Option configures a Tree at construction time.
type Option[V any, S abstract.Size, R any, Result any] func(*Tree[V, S, R, Result])

// WithLess sets the comparator used by InsertOrdered, RemoveOrdered,
// and ReplaceOrdered. Required before calling any of them; GetAt,
// InsertAt, RemoveAt, and ReplaceAt never consult it.
func WithLess[V any, S abstract.Size, R any, Result any](less func(a, b V) bool) Option[V, S, R, Result] {
	return func(t *Tree[V, S, R, Result]) { t.cfg.Less = less }
}

// WithNaturalLess sets the comparator to V's natural order via the
// standard library's cmp package, spec.md §6's default comparator for
// types that have one.
func WithNaturalLess[V cmp.Ordered, S abstract.Size, R any, Result any]() Option[V, S, R, Result] {
	return WithLess[V, S, R, Result](abstract.DefaultLess[V])
}

// WithMerge overrides the default never-merge policy.
func WithMerge[V any, S abstract.Size, R any, Result any](merge func(target *V, donor V) bool) Option[V, S, R, Result] {
	return func(t *Tree[V, S, R, Result]) { t.cfg.Merge = merge }
}

// WithRangePre overrides the per-element range lift. Only meaningful
// on a Tree built with NewRanged.
func WithRangePre[V any, S abstract.Size, R any, Result any](rpre func(V) R) Option[V, S, R, Result] {
	return func(t *Tree[V, S, R, Result]) { t.cfg.RangePre = rpre }
}

// WithRangeCombine overrides the range-intermediate combine.
func WithRangeCombine[V any, S abstract.Size, R any, Result any](rcomb func(a, b R) R) Option[V, S, R, Result] {
	return func(t *Tree[V, S, R, Result]) { t.cfg.RangeCombine = rcomb }
}

// WithRangePost overrides the range-query postprocess.
func WithRangePost[V any, S abstract.Size, R any, Result any](rpost func(R) Result) Option[V, S, R, Result] {
	return func(t *Tree[V, S, R, Result]) { t.rpost = rpost }
}

// WithAllocator overrides the default sync.Pool-backed node
// allocator.
func WithAllocator[V any, S abstract.Size, R any, Result any](alloc abstract.Allocator[V, S, R]) Option[V, S, R, Result] {
	return func(t *Tree[V, S, R, Result]) { t.cfg.Allocator = alloc }
}

// New builds a Tree with no range-query support: R and Result are
// fixed to abstract.Unit, and the range policy fields are wired to
// the default unit monoid, matching spec.md §6's stated default
// ("range intermediate type (default: the unit type)"). Use
// NewRanged for a tree with a custom range monoid.
func New[V any, S abstract.Size](opts ...Option[V, S, abstract.Unit, abstract.Unit]) *Tree[V, S, abstract.Unit, abstract.Unit] {
	t := &Tree[V, S, abstract.Unit, abstract.Unit]{
		cfg: abstract.Config[V, S, abstract.Unit]{
			Merge:        abstract.NeverMerge[V],
			RangePre:     abstract.UnitRangePre[V],
			RangeCombine: abstract.UnitRangeCombine,
			Allocator:    abstract.NewPoolAllocator[V, S, abstract.Unit](),
		},
		rpost: abstract.UnitRangePost,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewRanged builds a Tree with a caller-chosen range-monoid
// intermediate type R and result type Result. WithRangePre,
// WithRangeCombine, and WithRangePost must be supplied among opts:
// RangeQuery and every mutator call cfg.RangePre/RangeCombine to
// maintain each node's cached subrange, so a nil policy here panics
// on first use rather than merely on RangeQuery.
func NewRanged[V any, S abstract.Size, R any, Result any](opts ...Option[V, S, R, Result]) *Tree[V, S, R, Result] {
	t := &Tree[V, S, R, Result]{
		cfg: abstract.Config[V, S, R]{
			Merge:     abstract.NeverMerge[V],
			Allocator: abstract.NewPoolAllocator[V, S, R](),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
