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
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/komiamiko/avltree/abstract"
)

func collect[V any, S abstract.Size, R any, Result any](t *Tree[V, S, R, Result]) []V {
	var out []V
	t.InOrder(func(v V) bool { out = append(out, v); return true })
	return out
}

func TestTreeInsertAtAndGetAt(t *testing.T) {
	tree := New[int, uint]()
	for _, op := range []struct{ i, v int }{{0, 10}, {1, 20}, {0, 5}, {3, 30}, {2, 15}} {
		_, err := tree.InsertAt(uint(op.i), op.v)
		require.NoError(t, err)
	}
	require.Equal(t, []int{5, 10, 15, 20, 30}, collect(tree))
	require.Equal(t, uint(5), tree.Size())
	v, err := tree.GetAt(3)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.NoError(t, tree.CheckInvariants(nil))
}

func TestTreeInsertOrderedRequiresLess(t *testing.T) {
	tree := New[int, uint](WithNaturalLess[int, uint, abstract.Unit, abstract.Unit]())
	idx, merged, err := tree.InsertOrdered(7)
	require.NoError(t, err)
	require.False(t, merged)
	require.Equal(t, uint(0), idx)
	idx, merged, err = tree.InsertOrdered(3)
	require.NoError(t, err)
	require.False(t, merged)
	require.Equal(t, uint(0), idx)
	require.Equal(t, []int{3, 7}, collect(tree))
}

func TestTreeRemoveOrderedAndFindOrdered(t *testing.T) {
	tree := New[int, uint](WithNaturalLess[int, uint, abstract.Unit, abstract.Unit]())
	for _, v := range []int{5, 1, 3, 4, 2} {
		_, _, err := tree.InsertOrdered(v)
		require.NoError(t, err)
	}
	_, idx, ok := FindOrdered(tree, 3)
	require.True(t, ok)
	require.Equal(t, uint(2), idx)

	_, found, err := RemoveOrdered(tree, 3)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 2, 4, 5}, collect(tree))

	_, found, err = RemoveOrdered(tree, 99)
	require.NoError(t, err)
	require.False(t, found)
}

func TestTreeReplaceOrdered(t *testing.T) {
	tree := New[int, uint](WithNaturalLess[int, uint, abstract.Unit, abstract.Unit]())
	for _, v := range []int{10, 20, 30} {
		_, _, err := tree.InsertOrdered(v)
		require.NoError(t, err)
	}
	result, merged, found, err := ReplaceOrdered(tree, 20, 25)
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, merged)
	require.Equal(t, uint(1), result.RemovedIndex)
	require.Equal(t, uint(1), result.InsertedIndex)
	require.Equal(t, []int{10, 25, 30}, collect(tree))
}

func TestTreeRangeQuery(t *testing.T) {
	tree := NewRanged[int, uint, int, int](
		WithRangePre[int, uint, int, int](func(v int) int { return v }),
		WithRangeCombine[int, uint, int, int](func(a, b int) int { return a + b }),
		WithRangePost[int, uint, int, int](func(r int) int { return r }),
	)
	for i, v := range []int{10, 20, 30, 40, 50} {
		_, err := tree.InsertAt(uint(i), v)
		require.NoError(t, err)
	}
	sum, err := tree.RangeQuery(1, 4)
	require.NoError(t, err)
	require.Equal(t, 90, sum)

	_, err = tree.RangeQuery(2, 2)
	require.ErrorIs(t, err, abstract.ErrOutOfRange)
}

func TestTreeDumpAndDumpColor(t *testing.T) {
	tree := New[int, uint]()
	for i, v := range []int{10, 20, 30} {
		_, err := tree.InsertAt(uint(i), v)
		require.NoError(t, err)
	}

	var plain bytes.Buffer
	tree.Dump(&plain, nil)
	require.Contains(t, plain.String(), "10")
	require.Contains(t, plain.String(), "20")
	require.Contains(t, plain.String(), "30")

	var colored bytes.Buffer
	tree.DumpColor(&colored, func(v int) string { return "x" })
	require.True(t, strings.Contains(colored.String(), "x"))
}

func TestTreeRandomizedInvariantsAfterEachOp(t *testing.T) {
	t.Parallel()
	tree := New[int, uint]()
	const n = 200
	var sz uint
	for i := 0; i < n; i++ {
		i := uint(rand.Intn(int(sz) + 1))
		_, err := tree.InsertAt(i, rand.Int())
		require.NoError(t, err)
		sz++
		require.NoError(t, tree.CheckInvariants(nil))
	}
	for sz > 0 {
		i := uint(rand.Intn(int(sz)))
		_, err := tree.RemoveAt(i)
		require.NoError(t, err)
		sz--
		require.NoError(t, tree.CheckInvariants(nil))
	}
}
