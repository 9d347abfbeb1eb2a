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
	"errors"
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/sievetools/go-sieve/pkg/util/collection/hash"
	"github.com/sievetools/go-sieve/pkg/word"
)

// ErrNegativeAddress indicates that an address literal evaluated to a
// negative value.
var ErrNegativeAddress = errors.New("negative address")

// ErrInvalidSubtraction indicates that two addresses were subtracted which
// either lie in distinct regions, or whose difference is negative.
var ErrInvalidSubtraction = errors.New("invalid address subtraction")

// ErrAddressTooNarrow indicates that an address was converted to a word
// requiring a wider offset than the address carries.  This is a programming
// contract violation, not something expected to arise at runtime under
// correct use.
var ErrAddressTooNarrow = errors.New("address too narrow")

// Address represents a memory location: an offset word scoped to a logical
// memory region.  Like words, addresses are immutable value types; every
// operation returns a new address.  The bitwidth of an address is that of its
// offset word, and can shrink or grow as offsets are truncated, extended or
// added (capped at the original width, see AddOffset).
type Address struct {
	// Region this address lies within.
	region Region
	// Offset of this address within its region.
	offset word.Word
}

var _ hash.Hasher[Address] = Address{}

// Parse parses a given string as an address literal within a given region,
// producing an address whose offset is exactly maxWidth bits wide.  The given
// addressing mode must be protected mode (the only supported mode), otherwise
// this fails with ErrUnsupportedMode.  Literals which evaluate to a negative
// value are rejected with ErrNegativeAddress; malformed or oversized literals
// fail as for word.Parse.
func Parse(mode Mode, region Region, text string, maxWidth uint) (Address, error) {
	if mode != ModeProtected {
		return Address{}, fmt.Errorf("%w %q", ErrUnsupportedMode, mode)
	}
	//
	offset, err := word.Parse(text, maxWidth)
	//
	if err != nil {
		return Address{}, err
	} else if offset.Sign() < 0 {
		return Address{}, fmt.Errorf("%w %q", ErrNegativeAddress, text)
	}
	//
	return Address{region, offset}, nil
}

// New constructs an address in a given region from a given offset word.  No
// validation is performed; this constructor is for internally trusted values.
func New(region Region, offset word.Word) Address {
	return Address{region, offset}
}

// NewUint64 constructs an address in a given region from a given uint64
// offset at a given declared width.  As for New, no validation is performed.
func NewUint64(region Region, offset uint64, width uint) Address {
	return Address{region, word.NewUint64(offset, width)}
}

// FromWord constructs a global address from a given offset word.  Absolute
// constants encountered during analysis are modelled this way, which is
// precisely why the global region acts as the identity under combination.
func FromWord(offset word.Word) Address {
	return Address{Global, offset}
}

// Region returns the region this address lies within.
func (p Address) Region() Region {
	return p.region
}

// Offset returns the offset word of this address.
func (p Address) Offset() word.Word {
	return p.offset
}

// Value returns the integer value of the offset of this address.
func (p Address) Value() big.Int {
	return p.offset.Value()
}

// BitWidth returns the width (in bits) of the offset of this address.
func (p Address) BitWidth() uint {
	return p.offset.BitWidth()
}

// AddOffset adds a given (same or narrower width) delta to the offset of this
// address.  When the sum outgrows the original offset width the address space
// has been exceeded: the overflow is reported through the diagnostics channel
// and the result truncated back to the original width.  Thus, the operation
// never fails and analysis continues with the wrapped address.
func (p Address) AddOffset(delta word.Word) Address {
	var (
		width = p.offset.BitWidth()
		sum   = p.offset.Add(delta)
	)
	//
	if sum.BitWidth() > width {
		log.Warnf("address overflow in %s region (%s + %s exceeds u%d), truncating",
			p.region, p.offset, delta, width)
		//
		sum = sum.Truncate(width)
	}
	//
	return Address{p.region, sum}
}

// ToWord converts this address into its offset word, provided the offset is
// at least minWidth bits wide.  Otherwise, this fails with
// ErrAddressTooNarrow, indicating the caller has violated the width contract.
func (p Address) ToWord(minWidth uint) (word.Word, error) {
	if p.offset.BitWidth() < minWidth {
		return word.Word{}, fmt.Errorf("%w (u%d, required u%d)",
			ErrAddressTooNarrow, p.offset.BitWidth(), minWidth)
	}
	//
	return p.offset, nil
}

// Sub computes the distance between this address and a given address, as a
// plain integer.  Subtraction is only meaningful between addresses of the
// same region with a non-negative difference; anything else fails with
// ErrInvalidSubtraction.
func (p Address) Sub(q Address) (big.Int, error) {
	if p.region != q.region {
		return big.Int{}, fmt.Errorf("%w (%s from %s)", ErrInvalidSubtraction, q.region, p.region)
	}
	//
	diff := p.offset.Sub(q.offset)
	//
	if diff.Sign() < 0 {
		return big.Int{}, fmt.Errorf("%w (negative distance)", ErrInvalidSubtraction)
	}
	//
	return diff.Value(), nil
}

// BinaryOp applies a raw operator to the offsets of two addresses, with the
// resulting region determined by the combination rule (see Combine).  This
// fails either when the regions cannot be combined, or when the offsets are
// of differing widths.
func (p Address) BinaryOp(op word.BinaryOp, q Address) (Address, error) {
	region, err := Combine(p.region, q.region)
	//
	if err != nil {
		return Address{}, err
	}
	//
	offset, err := p.offset.BinaryOp(op, q.offset)
	//
	if err != nil {
		return Address{}, err
	}
	//
	return Address{region, offset}, nil
}

// UnaryOp applies a raw operator to the offset of this address, leaving the
// region untouched.
func (p Address) UnaryOp(op word.UnaryOp) Address {
	return Address{p.region, p.offset.UnaryOp(op)}
}

// Truncate truncates the offset of this address to (at most) n bits, leaving
// the region untouched.
func (p Address) Truncate(n uint) Address {
	return Address{p.region, p.offset.Truncate(n)}
}

// Extend relabels the offset of this address at (at least) n bits, leaving
// the region untouched.
func (p Address) Extend(n uint) Address {
	return Address{p.region, p.offset.Extend(n)}
}

// ShiftLeft shifts the offset of this address left by i bits, leaving the
// region untouched.
func (p Address) ShiftLeft(i uint) Address {
	return Address{p.region, p.offset.ShiftLeft(i)}
}

// ShiftRight shifts the offset of this address right by i bits, leaving the
// region untouched.
func (p Address) ShiftRight(i uint) Address {
	return Address{p.region, p.offset.ShiftRight(i)}
}

// Cmp compares two addresses, ordering by region first and then by offset.
// This is a strict total order consistent with Equals.
func (p Address) Cmp(q Address) int {
	if c := p.region.Cmp(q.region); c != 0 {
		return c
	}
	//
	return p.offset.Cmp(q.offset)
}

// Equals implementation for the hash.Hasher interface.  Two addresses are
// equal when they lie in the same region with equal offset words.
func (p Address) Equals(q Address) bool {
	return p.region == q.region && p.offset.Equals(q.offset)
}

// Hash implementation for the hash.Hasher interface.
func (p Address) Hash() uint64 {
	return hash.Combine(uint64(p.region), p.offset.Hash())
}

func (p Address) String() string {
	return fmt.Sprintf("%s:%s", p.region, p.offset)
}
