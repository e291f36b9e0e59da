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

// FindOrdered searches for a value exactly equal to v using the same
// less-dichotomy-then-==-confirm search RemoveOrdered performs (see
// its doc comment on the equivalence-run ambiguity), but does not
// mutate the tree. It reports the found value and its in-order index.
func FindOrdered[V comparable, S Size, R any](cfg *Config[V, S, R], n *Node[V, S, R], v V) (V, S, bool) {
	base := S(0)
	for n != nil {
		switch {
		case cfg.Less(v, n.value):
			n = n.left
		case cfg.Less(n.value, v):
			base += size(n.left) + S(1)
			n = n.right
		case n.value == v:
			return n.value, base + size(n.left), true
		default:
			if found, idx, ok := FindOrdered(cfg, n.left, v); ok {
				return found, base + idx, true
			}
			if found, idx, ok := FindOrdered(cfg, n.right, v); ok {
				return found, base + idx + size(n.left) + S(1), true
			}
			var zero V
			return zero, 0, false
		}
	}
	var zero V
	return zero, 0, false
}
