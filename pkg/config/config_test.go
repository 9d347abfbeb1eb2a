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
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sievetools/go-sieve/pkg/addr"
)

func Test_Config_01(t *testing.T) {
	cfg := Default()
	//
	mode, err := cfg.Mode()
	if err != nil || mode != addr.ModeProtected {
		t.Errorf("expected protected mode by default, got %s (%v)", mode, err)
	}
	//
	if cfg.WordWidth != DefaultWordWidth {
		t.Errorf("unexpected default word width %d", cfg.WordWidth)
	}
}

func Test_Config_02(t *testing.T) {
	cfg := loadString(t, "addressing-mode: protected\nword-width: 64\n")
	//
	if cfg.WordWidth != 64 {
		t.Errorf("expected word width 64, got %d", cfg.WordWidth)
	}
	//
	if mode, err := cfg.Mode(); err != nil || mode != addr.ModeProtected {
		t.Errorf("expected protected mode, got %s (%v)", mode, err)
	}
}

func Test_Config_03(t *testing.T) {
	// Unsupported modes surface at the point of use
	cfg := loadString(t, "addressing-mode: real\n")
	//
	if _, err := cfg.Mode(); !errors.Is(err, addr.ErrUnsupportedMode) {
		t.Errorf("expected unsupported mode, got %v", err)
	}
	// Unset settings retain their defaults
	if cfg.WordWidth != DefaultWordWidth {
		t.Errorf("unexpected word width %d", cfg.WordWidth)
	}
}

func Test_Config_04(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Errorf("expected error for missing file")
	}
	//
	if _, err := loadStringErr(t, "addressing-mode: [\n"); err == nil {
		t.Errorf("expected error for malformed file")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func loadString(t *testing.T, contents string) *Config {
	cfg, err := loadStringErr(t, contents)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	return cfg
}

func loadStringErr(t *testing.T, contents string) (*Config, error) {
	path := filepath.Join(t.TempDir(), "config.yml")
	//
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	return Load(path)
}
