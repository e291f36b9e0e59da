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

//go:build avltree_debug

package avltree

import (
	"fmt"

	"github.com/komiamiko/avltree/abstract"
)

// debugCheck verifies every node's cached size and balance factor
// after a mutation, built with -tags avltree_debug (spec.md §7: "under
// debug builds, verify invariants 1-3 of §3 after each public
// operation"). It skips the cached-subrange check: R has no general
// equality, and the rangeEqual callers would need to supply isn't
// available at this call site.
func (t *Tree[V, S, R, Result]) debugCheck() {
	if err := abstract.CheckInvariants(t.root, t.cfg.RangePre, t.cfg.RangeCombine, nil); err != nil {
		panic(fmt.Sprintf("avltree: invariant violated: %v", err))
	}
}
