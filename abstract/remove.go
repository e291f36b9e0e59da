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

// rebalanceAfterShrink applies the AVL post-removal bookkeeping once a
// child's height-change flag and the parent's already-adjusted
// balance factor are known (spec.md §4.5's descent bookkeeping),
// returning the (possibly new) subtree root and whether this subtree
// got shorter.
func rebalanceAfterShrink[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], childShrank bool,
) (*Node[V, S, R], bool) {
	if !childShrank {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, false
	}
	if n.balance == 1 || n.balance == -1 {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, false
	}
	if n.balance == 0 {
		update(n, cfg.RangePre, cfg.RangeCombine)
		return n, true
	}
	var root *Node[V, S, R]
	if n.balance == 2 {
		root = rebalanceRightHeavy(n, cfg.RangePre, cfg.RangeCombine)
	} else {
		root = rebalanceLeftHeavy(n, cfg.RangePre, cfg.RangeCombine)
	}
	return root, root.balance == 0
}

// deleteHere removes the value stored at n itself, splicing in a
// child or an in-order successor as needed, and reclaims n via
// cfg.Allocator. It returns the replacement subtree root, the removed
// value, and whether the subtree got shorter.
func deleteHere[V any, S Size, R any](cfg *Config[V, S, R], n *Node[V, S, R]) (*Node[V, S, R], V, bool, error) {
	removed := n.value
	switch {
	case n.left == nil && n.right == nil:
		cfg.Allocator.Free(n)
		return nil, removed, true, nil
	case n.left == nil:
		child := n.right
		cfg.Allocator.Free(n)
		return child, removed, true, nil
	case n.right == nil:
		child := n.left
		cfg.Allocator.Free(n)
		return child, removed, true, nil
	default:
		var succ V
		var shrank bool
		var err error
		n.right, shrank, succ, err = RemoveAt(cfg, n.right, 0, size(n.right))
		if err != nil {
			return n, removed, false, err
		}
		n.value = succ
		if shrank {
			n.balance--
		}
		root, shrankOut := rebalanceAfterShrink(cfg, n, shrank)
		return root, removed, shrankOut, nil
	}
}

// RemoveAt removes and returns the value at in-order position i from
// the subtree rooted at n, where i must be in [0, size(n)). Ported
// from the original's avl_delete (spec.md §4.5).
func RemoveAt[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], i, subtreeSize S,
) (*Node[V, S, R], bool, V, error) {
	if n == nil {
		var zero V
		return nil, false, zero, OutOfRange(i, subtreeSize)
	}
	l := size(n.left)
	switch {
	case i < l:
		var shrank bool
		var removed V
		var err error
		n.left, shrank, removed, err = RemoveAt(cfg, n.left, i, l)
		if err != nil {
			return n, false, removed, err
		}
		if shrank {
			n.balance++
		}
		root, shrankOut := rebalanceAfterShrink(cfg, n, shrank)
		return root, shrankOut, removed, nil
	case i > l:
		var shrank bool
		var removed V
		var err error
		n.right, shrank, removed, err = RemoveAt(cfg, n.right, i-l-S(1), subtreeSize-l-S(1))
		if err != nil {
			return n, false, removed, err
		}
		if shrank {
			n.balance--
		}
		root, shrankOut := rebalanceAfterShrink(cfg, n, shrank)
		return root, shrankOut, removed, nil
	default:
		root, removed, shrankOut, err := deleteHere(cfg, n)
		return root, shrankOut, removed, err
	}
}

// RemoveOrdered searches the subtree rooted at n for a value exactly
// equal to v, descending by cfg.Less's strict-weak dichotomy. Once the
// dichotomy bottoms out at a node equivalent to v under Less, an exact
// match may lie at that node or, if duplicates were kept as distinct
// nodes, anywhere else within that equivalence run; both subtrees of
// the equivalent node are then searched for an exact match (see
// DESIGN.md's Open Question on this ambiguity). If v is not found, it
// returns (n, false, zero, false, nil) and the tree is unchanged.
func RemoveOrdered[V comparable, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], v V,
) (*Node[V, S, R], bool, S, bool, error) {
	if n == nil {
		var zero S
		return nil, false, zero, false, nil
	}
	switch {
	case cfg.Less(v, n.value):
		newLeft, shrank, idx, found, err := RemoveOrdered(cfg, n.left, v)
		if err != nil || !found {
			return n, false, 0, found, err
		}
		n.left = newLeft
		if shrank {
			n.balance++
		}
		root, shrankOut := rebalanceAfterShrink(cfg, n, shrank)
		return root, shrankOut, idx, true, nil
	case cfg.Less(n.value, v):
		newRight, shrank, idx, found, err := RemoveOrdered(cfg, n.right, v)
		if err != nil || !found {
			return n, false, 0, found, err
		}
		n.right = newRight
		if shrank {
			n.balance--
		}
		idx += size(n.left) + S(1)
		root, shrankOut := rebalanceAfterShrink(cfg, n, shrank)
		return root, shrankOut, idx, true, nil
	case n.value == v:
		idx := size(n.left)
		root, _, shrank, err := deleteHere(cfg, n)
		if err != nil {
			return n, false, 0, false, err
		}
		return root, shrank, idx, true, nil
	default:
		newLeft, shrank, idx, found, err := RemoveOrdered(cfg, n.left, v)
		if err != nil {
			return n, false, 0, false, err
		}
		if found {
			n.left = newLeft
			if shrank {
				n.balance++
			}
			root, shrankOut := rebalanceAfterShrink(cfg, n, shrank)
			return root, shrankOut, idx, true, nil
		}
		newRight, shrank2, idx2, found2, err2 := RemoveOrdered(cfg, n.right, v)
		if err2 != nil {
			return n, false, 0, false, err2
		}
		if !found2 {
			return n, false, 0, false, nil
		}
		n.right = newRight
		if shrank2 {
			n.balance--
		}
		idx2 += size(n.left) + S(1)
		root, shrankOut := rebalanceAfterShrink(cfg, n, shrank2)
		return root, shrankOut, idx2, true, nil
	}
}
