// Copyright 2021 Andrew Werner.
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

import "sync"

// Allocator supplies and reclaims Node storage. New may return nil to
// signal allocation failure, which public operations surface as
// ErrAllocationFailed while leaving the tree in its pre-operation
// state.
type Allocator[V any, S Size, R any] interface {
	New() *Node[V, S, R]
	Free(*Node[V, S, R])
}

// poolAllocator is the default Allocator, backed by a sync.Pool. It
// mirrors the teacher's per-instantiation node pool
// (internal/abstract/node_pool.go), keyed here through a package-level
// sync.Map the same way getNodePool keys its pool off a nil *node
// value of the target instantiation.
type poolAllocator[V any, S Size, R any] struct {
	pool sync.Pool
}

var allocatorPools sync.Map

// NewPoolAllocator returns the shared, sync.Pool-backed allocator for
// the given (V, S, R) instantiation. Calling it repeatedly for the
// same type parameters returns allocators backed by the same
// underlying pool, so unrelated trees of the same shape still recycle
// each other's freed nodes.
func NewPoolAllocator[V any, S Size, R any]() Allocator[V, S, R] {
	var key *poolAllocator[V, S, R]
	if v, ok := allocatorPools.Load(key); ok {
		return v.(*poolAllocator[V, S, R])
	}
	a := &poolAllocator[V, S, R]{
		pool: sync.Pool{
			New: func() any { return new(Node[V, S, R]) },
		},
	}
	v, _ := allocatorPools.LoadOrStore(key, a)
	return v.(*poolAllocator[V, S, R])
}

func (a *poolAllocator[V, S, R]) New() *Node[V, S, R] {
	return a.pool.Get().(*Node[V, S, R])
}

func (a *poolAllocator[V, S, R]) Free(n *Node[V, S, R]) {
	*n = Node[V, S, R]{}
	a.pool.Put(n)
}
