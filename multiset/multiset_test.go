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

package multiset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultisetAddAccumulatesCount(t *testing.T) {
	m := New[string]()
	count, err := m.Add("a")
	require.NoError(t, err)
	require.Equal(t, uint(1), count)

	count, err = m.Add("a")
	require.NoError(t, err)
	require.Equal(t, uint(2), count)

	count, err = m.Add("a")
	require.NoError(t, err)
	require.Equal(t, uint(3), count)

	require.Equal(t, 1, m.Len())
	require.Equal(t, uint(3), m.Count("a"))
	require.Equal(t, uint(0), m.Count("b"))
}

func TestMultisetDistinctKeysStaySorted(t *testing.T) {
	m := New[int]()
	for _, v := range []int{5, 1, 3, 1, 5, 5} {
		_, err := m.Add(v)
		require.NoError(t, err)
	}
	var keys []int
	var counts []uint
	m.InOrder(func(k int, count uint) bool {
		keys = append(keys, k)
		counts = append(counts, count)
		return true
	})
	require.Equal(t, []int{1, 3, 5}, keys)
	require.Equal(t, []uint{2, 1, 3}, counts)
	require.Equal(t, 3, m.Len())
}

func TestMultisetRemoveDeletesAllOccurrences(t *testing.T) {
	m := New[int]()
	for i := 0; i < 4; i++ {
		_, err := m.Add(7)
		require.NoError(t, err)
	}
	removed, err := m.Remove(7)
	require.NoError(t, err)
	require.Equal(t, uint(4), removed)
	require.Equal(t, uint(0), m.Count(7))
	require.Equal(t, 0, m.Len())

	removed, err = m.Remove(7)
	require.NoError(t, err)
	require.Equal(t, uint(0), removed)
	require.NoError(t, m.CheckInvariants())
}
