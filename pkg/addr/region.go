// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package addr

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrCrossRegionOperation indicates an attempt to combine two addresses lying
// in distinct (non-global) regions.
var ErrCrossRegionOperation = errors.New("invalid cross-region operation")

// Region identifies the logical memory segment an address lies within.
// Regions are assumed pairwise non-overlapping, hence combining addresses
// across distinct regions is meaningless.  The global region is special: it
// holds code and static data, and absolute constants arising during analysis
// land there.  It therefore acts as the identity under region combination
// (see Combine).
type Region uint8

const (
	// Global is the code / static data segment.
	Global Region = iota
	// Stack is the runtime stack segment.
	Stack
	// Heap is the dynamically allocated segment.
	Heap
)

// ParseRegion parses a region from its name.
func ParseRegion(name string) (Region, error) {
	switch name {
	case "global":
		return Global, nil
	case "stack":
		return Stack, nil
	case "heap":
		return Heap, nil
	default:
		return Global, fmt.Errorf("unknown region %q", name)
	}
}

// Combine determines the region of the result of a binary operation over two
// addresses.  The rule is: global acts as the identity (a global operand takes
// on the other operand's region); equal regions are retained; distinct
// non-global regions cannot be combined and fail with
// ErrCrossRegionOperation.
func Combine(l Region, r Region) (Region, error) {
	switch {
	case l == Global:
		return r, nil
	case r == Global:
		return l, nil
	case l == r:
		return l, nil
	default:
		return Global, fmt.Errorf("%w (%s with %s)", ErrCrossRegionOperation, l, r)
	}
}

// Cmp compares two regions, ordering global before stack before heap.
func (r Region) Cmp(o Region) int {
	return cmp.Compare(r, o)
}

func (r Region) String() string {
	switch r {
	case Global:
		return "global"
	case Stack:
		return "stack"
	case Heap:
		return "heap"
	default:
		panic(fmt.Sprintf("unknown region (%d)", uint8(r)))
	}
}
