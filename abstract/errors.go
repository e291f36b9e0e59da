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

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside the legal
// interval for the operation being performed.
var ErrOutOfRange = errors.New("abstract: index out of range")

// ErrAllocationFailed is returned when the configured allocator could
// not provide storage for a new node.
var ErrAllocationFailed = errors.New("abstract: node allocation failed")

// OutOfRange wraps ErrOutOfRange with the offending index and the
// size of the subtree it was evaluated against.
func OutOfRange(index, size any) error {
	return fmt.Errorf("%w: index %v, size %v", ErrOutOfRange, index, size)
}

// AllocationFailed wraps ErrAllocationFailed with context about which
// operation triggered the failed allocation.
func AllocationFailed(op string) error {
	return fmt.Errorf("%w: during %s", ErrAllocationFailed, op)
}
