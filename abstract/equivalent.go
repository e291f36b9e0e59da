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

// FindEquivalent returns the node equivalent to v under cfg.Less
// (neither less(v, x) nor less(x, v)), assuming at most one such node
// exists in the subtree. That assumption holds whenever cfg.Merge
// always absorbs a newly-inserted value into any existing equivalent
// one rather than allocating a second node alongside it — the policy
// every key-unique facade (set, multiset, ordmap) configures. Unlike
// RemoveOrdered/FindOrdered, this needs no comparable constraint on V:
// it never compares values with ==, only with cfg.Less, so it also
// serves values whose payload sits outside the part Less compares.
func FindEquivalent[V any, S Size, R any](cfg *Config[V, S, R], n *Node[V, S, R], v V) (V, S, bool) {
	idx := S(0)
	cur := n
	for cur != nil {
		switch {
		case cfg.Less(v, cur.value):
			cur = cur.left
		case cfg.Less(cur.value, v):
			idx += size(cur.left) + S(1)
			cur = cur.right
		default:
			return cur.value, idx + size(cur.left), true
		}
	}
	var zero V
	return zero, 0, false
}

// RemoveEquivalent removes the node equivalent to v under cfg.Less,
// under the same at-most-one-node assumption as FindEquivalent.
func RemoveEquivalent[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], v V,
) (root *Node[V, S, R], shrank bool, removed V, index S, found bool, err error) {
	if n == nil {
		var zero V
		return nil, false, zero, 0, false, nil
	}
	switch {
	case cfg.Less(v, n.value):
		newLeft, childShrank, rv, idx, ok, err := RemoveEquivalent(cfg, n.left, v)
		if err != nil {
			var zero V
			return n, false, zero, 0, false, err
		}
		if !ok {
			var zero V
			return n, false, zero, 0, false, nil
		}
		n.left = newLeft
		if childShrank {
			n.balance++
		}
		root, shrankOut := rebalanceAfterShrink(cfg, n, childShrank)
		return root, shrankOut, rv, idx, true, nil
	case cfg.Less(n.value, v):
		newRight, childShrank, rv, idx, ok, err := RemoveEquivalent(cfg, n.right, v)
		if err != nil {
			var zero V
			return n, false, zero, 0, false, err
		}
		if !ok {
			var zero V
			return n, false, zero, 0, false, nil
		}
		n.right = newRight
		if childShrank {
			n.balance--
		}
		idx += size(n.left) + S(1)
		root, shrankOut := rebalanceAfterShrink(cfg, n, childShrank)
		return root, shrankOut, rv, idx, true, nil
	default:
		idx := size(n.left)
		newRoot, rv, childShrank, err := deleteHere(cfg, n)
		if err != nil {
			var zero V
			return n, false, zero, 0, false, err
		}
		return newRoot, childShrank, rv, idx, true, nil
	}
}
