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

import (
	"testing"
)

func Test_Hash_Combine_01(t *testing.T) {
	// Deterministic
	if Combine(1, 2, 3) != Combine(1, 2, 3) {
		t.Errorf("combination not deterministic")
	}
	// Order sensitive
	if Combine(1, 2) == Combine(2, 1) {
		t.Errorf("combination not order sensitive")
	}
	// Length sensitive
	if Combine(1) == Combine(1, 0) {
		t.Errorf("combination not length sensitive")
	}
}
