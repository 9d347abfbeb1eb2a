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
package word

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrWidthMismatch indicates that a binary operator was applied to two words
// of differing declared widths.
var ErrWidthMismatch = errors.New("operand width mismatch")

// BinaryOp is a raw bitwise or arithmetic operator over two unbounded values,
// producing a freshly allocated result.
type BinaryOp func(x *big.Int, y *big.Int) *big.Int

// UnaryOp is a raw bitwise or arithmetic operator over a single unbounded
// value, producing a freshly allocated result.
type UnaryOp func(x *big.Int) *big.Int

// Predefined binary operators.
var (
	// And is bitwise conjunction.
	And BinaryOp = func(x *big.Int, y *big.Int) *big.Int { return new(big.Int).And(x, y) }
	// Or is bitwise disjunction.
	Or BinaryOp = func(x *big.Int, y *big.Int) *big.Int { return new(big.Int).Or(x, y) }
	// Xor is bitwise exclusive disjunction.
	Xor BinaryOp = func(x *big.Int, y *big.Int) *big.Int { return new(big.Int).Xor(x, y) }
	// Mul is (truncating) multiplication.
	Mul BinaryOp = func(x *big.Int, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }
)

// Predefined unary operators.
var (
	// Not is bitwise complement (within the operand width, after truncation).
	Not UnaryOp = func(x *big.Int) *big.Int { return new(big.Int).Not(x) }
	// Neg is (truncating) twos-complement negation.
	Neg UnaryOp = func(x *big.Int) *big.Int { return new(big.Int).Neg(x) }
)

// BinaryOp applies a raw operator to the values of two words of equal declared
// width, truncating the result back to that width.  Words of differing widths
// are rejected with ErrWidthMismatch; callers wanting to combine words of
// differing widths must first reconcile them explicitly (e.g. via Extend).
func (p Word) BinaryOp(op BinaryOp, q Word) (Word, error) {
	if p.width != q.width {
		return Word{}, fmt.Errorf("%w (u%d vs u%d)", ErrWidthMismatch, p.width, q.width)
	}
	//
	val := op(&p.value, &q.value)
	// Truncate back to operand width.
	return Word{*val, p.width}.Truncate(p.width), nil
}

// UnaryOp applies a raw operator to the value of this word, truncating the
// result back to the declared width.
func (p Word) UnaryOp(op UnaryOp) Word {
	val := op(&p.value)
	//
	return Word{*val, p.width}.Truncate(p.width)
}
