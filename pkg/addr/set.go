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
	"github.com/sievetools/go-sieve/pkg/util/collection/set"
)

// Set is a sorted set of unique addresses, ordered by Address.Cmp.  Useful for
// deduplicating computed address sets, such as the possible targets of an
// indirect jump.  Note that a set shared across concurrent writers requires
// external synchronisation.
type Set = set.AnySortedSet[Address]

// NewSet constructs a set from zero or more addresses, deduplicating as
// necessary.  The given array is not mutated.
func NewSet(addrs ...Address) *Set {
	return set.NewAnySortedSet(addrs...)
}

// UnionSets unions together a number of things which can be turned into
// address sets using a given mapping function.
func UnionSets[S any](elems []S, fn func(S) *Set) *Set {
	return set.UnionAnySortedSets(elems, fn)
}
