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
package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sievetools/go-sieve/pkg/addr"
	"github.com/sievetools/go-sieve/pkg/config"
	"github.com/sievetools/go-sieve/pkg/word"
)

var addrCmd = &cobra.Command{
	Use:   "addr [flags] literal(s)",
	Short: "parse and deduplicate address literals.",
	Long: `Parse one or more integer literals as addresses within a given memory
	 region, reporting the resulting deduplicated address set in sorted order.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := loadConfig(GetString(cmd, "config"))
		// Determine addressing mode
		mode, err := cfg.Mode()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Determine target region
		region, err := addr.ParseRegion(GetString(cmd, "region"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		width := GetUint(cmd, "width")
		if width == 0 {
			width = cfg.WordWidth
		}
		//
		addresses := parseAddresses(mode, region, width, args)
		// Apply offset, if requested.  Any overflow is reported through the
		// log and recovered by truncation.
		if delta := GetString(cmd, "offset"); delta != "" {
			dw, err := word.Parse(delta, width)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			for i, a := range addresses {
				addresses[i] = a.AddOffset(dw)
			}
		}
		// Deduplicate and report
		printAddresses(addr.NewSet(addresses...))
	},
}

// Parse all given literals into addresses within the given region.
func parseAddresses(mode addr.Mode, region addr.Region, width uint, args []string) []addr.Address {
	addresses := make([]addr.Address, len(args))
	//
	for i, arg := range args {
		a, err := addr.Parse(mode, region, arg, width)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("parsed %q as %s", arg, a)
		//
		addresses[i] = a
	}
	//
	return addresses
}

// Print a given address set in sorted order.  When stdout is a terminal,
// addresses are packed onto lines matching the terminal width; otherwise one
// address is printed per line.
func printAddresses(set *addr.Set) {
	if term.IsTerminal(1) {
		if cols, _, err := term.GetSize(1); err == nil {
			printPacked(set, cols)
			return
		}
	}
	//
	for a := range set.Iter() {
		fmt.Println(a)
	}
}

func printPacked(set *addr.Set, cols int) {
	var line strings.Builder
	//
	for a := range set.Iter() {
		str := a.String()
		// Flush line if full
		if line.Len() > 0 && line.Len()+len(str)+1 > cols {
			fmt.Println(line.String())
			line.Reset()
		} else if line.Len() > 0 {
			line.WriteString(" ")
		}
		//
		line.WriteString(str)
	}
	//
	if line.Len() > 0 {
		fmt.Println(line.String())
	}
}

// Load configuration from a given file, or fall back on the defaults when no
// file is given.
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	//
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

func init() {
	rootCmd.AddCommand(addrCmd)
	addrCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	addrCmd.Flags().UintP("width", "w", 0, "bitwidth at which literals are parsed (0 = configured default)")
	addrCmd.Flags().StringP("region", "r", "global", "region literals are parsed into (global/stack/heap)")
	addrCmd.Flags().StringP("offset", "o", "", "offset to add to each parsed address")
	addrCmd.Flags().StringP("config", "c", "", "configuration file to load")
}
