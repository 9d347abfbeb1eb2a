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
package hash

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Hasher provides a generic definition of a hashing function, along with a
// compatible notion of equality.  Values stored in hash-keyed containers by the
// analysis engine (e.g. abstract-domain tables) must implement this interface.
// Note that hash collisions are permitted, hence equality is included as well.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// Combine folds a sequence of hashcodes into a single hashcode using an FNV1a
// style combination.  This is useful for composite values (such as a tagged
// pair) whose components are themselves hashable.
func Combine(hashes ...uint64) uint64 {
	hash := offset64
	//
	for _, h := range hashes {
		hash ^= h
		hash *= prime64
	}
	//
	return hash
}

// CombineAll folds a sequence of hashable items into a single hashcode.  At
// some level, this is a map/reduce over the items.
func CombineAll[T Hasher[T]](items []T) uint64 {
	hash := offset64
	//
	for _, item := range items {
		hash ^= item.Hash()
		hash *= prime64
	}
	//
	return hash
}
