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
)

// ErrUnsupportedMode indicates that address construction was attempted under
// an addressing mode other than protected mode.  This signals a feature gap
// in the analyser rather than bad input.
var ErrUnsupportedMode = errors.New("unsupported addressing mode")

// Mode determines the addressing mode under which addresses are constructed.
// The mode is threaded explicitly into address construction rather than read
// from ambient global state, so that callers (and tests) remain in control of
// it.  At this time, only protected mode is supported.
type Mode uint8

const (
	// ModeUnknown is the zero mode, supported nowhere.
	ModeUnknown Mode = iota
	// ModeProtected is flat 32/64-bit protected mode addressing.
	ModeProtected
)

// ParseMode parses an addressing mode from its name.
func ParseMode(name string) (Mode, error) {
	if name == "protected" {
		return ModeProtected, nil
	}
	//
	return ModeUnknown, fmt.Errorf("%w %q", ErrUnsupportedMode, name)
}

func (m Mode) String() string {
	if m == ModeProtected {
		return "protected"
	}
	//
	return "unknown"
}
