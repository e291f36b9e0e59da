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

// InsertAt inserts v at in-order position i into the subtree rooted
// at n, where i must be in [0, size(n)] (one past the end is legal).
// It returns the new subtree root, whether the subtree's height grew,
// and whether v was absorbed by cfg.Merge into an existing element
// rather than allocating a new node. Bottom-up, single recursive
// pass, ported from the original's avl_insert with the addition of
// the merge policy (spec.md §4.3).
func InsertAt[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], i, subtreeSize S, v V,
) (*Node[V, S, R], bool, bool, error) {
	if n == nil {
		if i != 0 {
			return nil, false, false, OutOfRange(i, subtreeSize)
		}
		nn := cfg.Allocator.New()
		if nn == nil {
			return nil, false, false, AllocationFailed("InsertAt")
		}
		nn.left, nn.right = nil, nil
		nn.value = v
		nn.balance = 0
		update(nn, cfg.RangePre, cfg.RangeCombine)
		return nn, true, false, nil
	}
	if cfg.Merge != nil && cfg.Merge(&n.value, v) {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, false, true, nil
	}
	l := size(n.left)
	var grew, merged bool
	var err error
	if i <= l {
		n.left, grew, merged, err = InsertAt(cfg, n.left, i, l, v)
		if err != nil {
			return n, false, false, err
		}
		if grew {
			n.balance--
		}
	} else {
		n.right, grew, merged, err = InsertAt(cfg, n.right, i-l-S(1), subtreeSize-l-S(1), v)
		if err != nil {
			return n, false, false, err
		}
		if grew {
			n.balance++
		}
	}
	root, grewOut, rerr := rebalanceAfterGrowth(cfg, n, grew)
	return root, grewOut, merged, rerr
}

// rebalanceAfterGrowth applies the standard AVL post-insert bookkeeping
// once a child's height-change flag and the parent's already-adjusted
// balance factor are known, returning the (possibly new) subtree root
// and whether this subtree in turn grew taller.
func rebalanceAfterGrowth[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], childGrew bool,
) (*Node[V, S, R], bool, error) {
	if !childGrew || n.balance == 0 {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, false, nil
	}
	if n.balance == 1 || n.balance == -1 {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, true, nil
	}
	var root *Node[V, S, R]
	if n.balance == 2 {
		root = rebalanceRightHeavy(n, cfg.RangePre, cfg.RangeCombine)
	} else {
		root = rebalanceLeftHeavy(n, cfg.RangePre, cfg.RangeCombine)
	}
	return root, false, nil
}

// InsertOrdered inserts v into the subtree rooted at n at the
// leftmost position consistent with cfg.Less, merging into an
// existing element when cfg.Merge says to. It returns the new subtree
// root, whether the subtree grew, whether v was absorbed by merge,
// and the in-order index v (or the absorbing element) ended up at.
func InsertOrdered[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], v V,
) (*Node[V, S, R], bool, bool, S, error) {
	if n == nil {
		nn := cfg.Allocator.New()
		if nn == nil {
			return nil, false, false, 0, AllocationFailed("InsertOrdered")
		}
		nn.left, nn.right = nil, nil
		nn.value = v
		nn.balance = 0
		update(nn, cfg.RangePre, cfg.RangeCombine)
		return nn, true, false, 0, nil
	}
	if cfg.Merge != nil && cfg.Merge(&n.value, v) {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, false, true, size(n.left), nil
	}
	var grew, merged bool
	var index S
	var err error
	if !cfg.Less(n.value, v) {
		n.left, grew, merged, index, err = InsertOrdered(cfg, n.left, v)
		if err != nil {
			return n, false, false, 0, err
		}
		if grew {
			n.balance--
		}
	} else {
		n.right, grew, merged, index, err = InsertOrdered(cfg, n.right, v)
		if err != nil {
			return n, false, false, 0, err
		}
		if grew {
			n.balance++
		}
		index += size(n.left) + S(1)
	}
	root, grewOut, rerr := rebalanceAfterGrowth(cfg, n, grew)
	return root, grewOut, merged, index, rerr
}
