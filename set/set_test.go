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

package set

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[V cmp.Ordered](s *Set[V]) []V {
	var out []V
	s.InOrder(func(v V) bool { out = append(out, v); return true })
	return out
}

func TestSetInsertDedupes(t *testing.T) {
	s := New[int]()
	ins, err := s.Insert(5)
	require.NoError(t, err)
	require.True(t, ins)

	ins, err = s.Insert(5)
	require.NoError(t, err)
	require.False(t, ins)

	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(5))
	require.False(t, s.Contains(6))
}

func TestSetInsertKeepsSortedOrder(t *testing.T) {
	s := New[int]()
	for _, v := range []int{5, 1, 3, 4, 2, 3, 1} {
		_, err := s.Insert(v)
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, collect(s))
	require.Equal(t, 5, s.Len())
}

func TestSetRemove(t *testing.T) {
	s := New[int]()
	for _, v := range []int{1, 2, 3} {
		_, err := s.Insert(v)
		require.NoError(t, err)
	}
	removed, err := s.Remove(2)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, []int{1, 3}, collect(s))

	removed, err = s.Remove(99)
	require.NoError(t, err)
	require.False(t, removed)
	require.NoError(t, s.CheckInvariants())
}

func TestSetRandomizedInvariants(t *testing.T) {
	t.Parallel()
	s := New[int]()
	const n = 200
	for i := 0; i < n; i++ {
		_, err := s.Insert(rand.Intn(n / 2))
		require.NoError(t, err)
	}
	require.NoError(t, s.CheckInvariants())
	require.LessOrEqual(t, s.Len(), n/2)
}
