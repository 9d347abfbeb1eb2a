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
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/sievetools/go-sieve/pkg/addr"
)

// DefaultWordWidth is the word width assumed when the configuration does not
// specify one.
const DefaultWordWidth = 32

// Config defines all analyser settings available to be set through a
// configuration file.
type Config struct {
	// AddressingMode determines the mode under which addresses are
	// constructed.  Only "protected" is supported at this time.
	AddressingMode string `yaml:"addressing-mode"`
	// WordWidth is the default width (in bits) at which word and address
	// literals are parsed.
	WordWidth uint `yaml:"word-width"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		AddressingMode: "protected",
		WordWidth:      DefaultWordWidth,
	}
}

// Load populates a Config from a given YAML file.  Settings absent from the
// file retain their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	//
	if err != nil {
		return nil, err
	}
	//
	c := Default()
	//
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	//
	return c, nil
}

// Mode returns the configured addressing mode, or an error if the configured
// name does not identify a supported mode.
func (c *Config) Mode() (addr.Mode, error) {
	return addr.ParseMode(c.AddressingMode)
}
