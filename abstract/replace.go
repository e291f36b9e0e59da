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

// ReplaceAt is RemoveAt at i followed by InsertAt of v at the same
// index, with the merge policy attempted during re-insertion
// (spec.md §4.7). merged is true iff the re-insertion absorbed into a
// neighbor rather than allocating a fresh node.
func ReplaceAt[V any, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], i, subtreeSize S, v V,
) (*Node[V, S, R], bool, error) {
	n, _, _, err := RemoveAt(cfg, n, i, subtreeSize)
	if err != nil {
		return n, false, err
	}
	root, _, merged, err := InsertAt(cfg, n, i, subtreeSize-S(1), v)
	if err != nil {
		return root, false, err
	}
	return root, merged, nil
}

// ReplaceOrderedResult reports the positions affected by a successful
// ReplaceOrdered call.
type ReplaceOrderedResult[S Size] struct {
	// RemovedIndex is vold's position in the *final* tree, corrected
	// for the new element's insertion shifting it (spec.md §4.8).
	RemovedIndex S
	// InsertedIndex is vnew's position in the final tree.
	InsertedIndex S
}

// ReplaceOrdered removes vold (by RemoveOrdered) and inserts vnew (by
// InsertOrdered). If vold is not found, the tree is unchanged and ok
// is false. merged reports whether the insertion of vnew absorbed
// into a neighbor. The reported RemovedIndex describes the position
// vold would end up at if vnew were inserted into the tree alongside
// it rather than in its place: when vnew sorts strictly before where
// vold used to be and no merge occurred, that insertion would have
// pushed vold one slot to the right, so RemovedIndex is bumped by
// one; an insertion at or after vold's old slot leaves it where it
// was (spec.md §4.8, §9).
func ReplaceOrdered[V comparable, S Size, R any](
	cfg *Config[V, S, R], n *Node[V, S, R], vold, vnew V,
) (*Node[V, S, R], bool, ReplaceOrderedResult[S], bool, error) {
	root, _, rawRemovedIndex, found, err := RemoveOrdered(cfg, n, vold)
	if err != nil || !found {
		return root, false, ReplaceOrderedResult[S]{}, false, err
	}
	root, _, merged, insertedIndex, err := InsertOrdered(cfg, root, vnew)
	if err != nil {
		return root, false, ReplaceOrderedResult[S]{}, false, err
	}
	removedIndex := rawRemovedIndex
	if insertedIndex < rawRemovedIndex && !merged {
		removedIndex++
	}
	return root, merged, ReplaceOrderedResult[S]{
		RemovedIndex:  removedIndex,
		InsertedIndex: insertedIndex,
	}, true, nil
}
