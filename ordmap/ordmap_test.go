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

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapSetGet(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Set("a", 1))
	require.NoError(t, m.Set("b", 2))

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("z")
	require.False(t, ok)
	require.Equal(t, 2, m.Len())
}

func TestMapSetOverwritesExistingKey(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Set("a", 1))
	require.NoError(t, m.Set("a", 99))

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 99, v)
	require.Equal(t, 1, m.Len())
}

func TestMapDelete(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Set("a", 1))
	removed, ok, err := m.Delete("a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, removed)
	require.Equal(t, 0, m.Len())

	_, ok, err = m.Delete("a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMapAtIndexIsSortedByKey(t *testing.T) {
	m := New[int, string]()
	for k, v := range map[int]string{3: "c", 1: "a", 2: "b"} {
		require.NoError(t, m.Set(k, v))
	}
	for i, wantKey := range []int{1, 2, 3} {
		k, v, err := m.AtIndex(i)
		require.NoError(t, err)
		require.Equal(t, wantKey, k)
		require.NotEmpty(t, v)
	}
	require.NoError(t, m.CheckInvariants())
}
