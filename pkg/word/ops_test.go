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
	"testing"
)

func Test_Word_BinaryOp_01(t *testing.T) {
	checkBinaryOp(t, And, NewUint64(0b1100, 4), NewUint64(0b1010, 4), 0b1000)
	checkBinaryOp(t, Or, NewUint64(0b1100, 4), NewUint64(0b1010, 4), 0b1110)
	checkBinaryOp(t, Xor, NewUint64(0b1100, 4), NewUint64(0b1010, 4), 0b0110)
}

func Test_Word_BinaryOp_02(t *testing.T) {
	// Multiplication truncates back to the operand width
	checkBinaryOp(t, Mul, NewUint64(16, 8), NewUint64(16, 8), 0)
	checkBinaryOp(t, Mul, NewUint64(15, 8), NewUint64(15, 8), 225)
}

func Test_Word_BinaryOp_03(t *testing.T) {
	// Mismatched widths are rejected
	_, err := NewUint64(1, 8).BinaryOp(And, NewUint64(1, 16))
	//
	if !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("expected width mismatch, got %v", err)
	}
	// Reconciling widths explicitly succeeds
	if _, err := NewUint64(1, 8).Extend(16).BinaryOp(And, NewUint64(1, 16)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_Word_UnaryOp_01(t *testing.T) {
	// Complement within the declared width
	if w := NewUint64(0b1100, 4).UnaryOp(Not); w.Uint64() != 0b0011 {
		t.Errorf("expected 0b0011, got %s", w)
	}
	// Twos-complement negation wraps within the declared width
	if w := NewUint64(1, 8).UnaryOp(Neg); w.Uint64() != 255 {
		t.Errorf("expected 255, got %s", w)
	}
	//
	if w := Zero(8).UnaryOp(Neg); !w.IsZero() {
		t.Errorf("expected zero, got %s", w)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkBinaryOp(t *testing.T, op BinaryOp, a Word, b Word, expected uint64) {
	w, err := a.BinaryOp(op, b)
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if w.Uint64() != expected {
		t.Errorf("got %d, expected %d", w.Uint64(), expected)
	} else if w.BitWidth() != a.BitWidth() {
		t.Errorf("got width u%d, expected u%d", w.BitWidth(), a.BitWidth())
	}
}
