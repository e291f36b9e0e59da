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

package sequence

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[V any](s *Sequence[V]) []V {
	var out []V
	s.InOrder(func(v V) bool { out = append(out, v); return true })
	return out
}

func TestSequenceInsertAndAt(t *testing.T) {
	s := New[string]()
	require.NoError(t, s.InsertAt(0, "b"))
	require.NoError(t, s.InsertAt(0, "a"))
	require.NoError(t, s.InsertAt(2, "c"))
	require.Equal(t, []string{"a", "b", "c"}, collect(s))
	require.Equal(t, 3, s.Len())

	v, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = s.At(3)
	require.Error(t, err)
}

func TestSequenceRemoveAt(t *testing.T) {
	s := New[int]()
	for i, v := range []int{10, 20, 30} {
		require.NoError(t, s.InsertAt(i, v))
	}
	v, err := s.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.Equal(t, []int{10, 30}, collect(s))
}

func TestSequenceReplaceAt(t *testing.T) {
	s := New[int]()
	for i, v := range []int{1, 2, 3} {
		require.NoError(t, s.InsertAt(i, v))
	}
	require.NoError(t, s.ReplaceAt(1, 99))
	require.Equal(t, []int{1, 99, 3}, collect(s))
	require.NoError(t, s.CheckInvariants())
}

func TestSequenceDoesNotMerge(t *testing.T) {
	s := New[int]()
	require.NoError(t, s.InsertAt(0, 5))
	require.NoError(t, s.InsertAt(1, 5))
	require.Equal(t, 2, s.Len())
	require.Equal(t, []int{5, 5}, collect(s))
}

func TestSequenceRandomizedInvariants(t *testing.T) {
	t.Parallel()
	s := New[int]()
	const n = 200
	sz := 0
	for i := 0; i < n; i++ {
		idx := rand.Intn(sz + 1)
		require.NoError(t, s.InsertAt(idx, rand.Int()))
		sz++
	}
	require.NoError(t, s.CheckInvariants())
	for sz > 0 {
		idx := rand.Intn(sz)
		_, err := s.RemoveAt(idx)
		require.NoError(t, err)
		sz--
	}
	require.Equal(t, 0, s.Len())
}
