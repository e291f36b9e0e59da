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

// RangeQuery folds cfg.RangePre(x) over positions [lo, hi) under
// cfg.RangeCombine and projects the result through rpost. An empty
// range, or hi past the end of the subtree, is a caller error
// (spec.md §4.9: "no identity is supplied, range queries on empty
// ranges are a caller error").
func RangeQuery[V any, S Size, R, Result any](
	cfg *Config[V, S, R], n *Node[V, S, R], lo, hi S, rpost func(R) Result,
) (Result, error) {
	var zero Result
	total := size(n)
	if lo >= hi || hi > total {
		return zero, OutOfRange(lo, total)
	}
	acc, ok := rangeAccumulate(cfg, n, lo, hi)
	if !ok {
		return zero, OutOfRange(lo, total)
	}
	return rpost(acc), nil
}

// rangeAccumulate computes the rcomb-fold of rpre over positions
// [lo, hi) within the subtree rooted at n, classic AVL
// split-accumulate: a subtree entirely inside the range contributes
// its cached subrange directly, one entirely outside is skipped, and
// one that straddles the boundary recurses into whichever side(s) it
// must and folds in the pivot when the pivot itself is in range. This
// keeps the walk to O(log n) node visits regardless of hi-lo.
func rangeAccumulate[V any, S Size, R any](cfg *Config[V, S, R], n *Node[V, S, R], lo, hi S) (R, bool) {
	if n == nil || lo >= hi {
		var zero R
		return zero, false
	}
	if lo == 0 && hi >= n.size {
		return n.subrange, true
	}
	l := size(n.left)
	var acc R
	var has bool
	if lo < l {
		childHi := hi
		if childHi > l {
			childHi = l
		}
		if v, ok := rangeAccumulate(cfg, n.left, lo, childHi); ok {
			acc, has = v, true
		}
	}
	if lo <= l && l < hi {
		pre := cfg.RangePre(n.value)
		if has {
			acc = cfg.RangeCombine(acc, pre)
		} else {
			acc, has = pre, true
		}
	}
	if hi > l+S(1) {
		var rlo S
		if lo > l+S(1) {
			rlo = lo - l - S(1)
		}
		rhi := hi - l - S(1)
		if v, ok := rangeAccumulate(cfg, n.right, rlo, rhi); ok {
			if has {
				acc = cfg.RangeCombine(acc, v)
			} else {
				acc, has = v, true
			}
		}
	}
	return acc, has
}
