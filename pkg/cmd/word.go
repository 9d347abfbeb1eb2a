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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sievetools/go-sieve/pkg/config"
	"github.com/sievetools/go-sieve/pkg/word"
)

var wordCmd = &cobra.Command{
	Use:   "word [flags] literal(s)",
	Short: "parse and inspect word literals.",
	Long: `Parse one or more integer literals as machine words of a given bitwidth,
	 reporting each in canonical form.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			width = GetUint(cmd, "width")
			sum   = word.Zero(width)
		)
		// Parse all literals
		for _, arg := range args {
			w, err := word.Parse(arg, width)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			log.Debugf("parsed %q as %s", arg, w)
			//
			fmt.Println(w)
			//
			sum = sum.Add(w)
		}
		// Report (widening) sum, if requested
		if GetFlag(cmd, "sum") {
			fmt.Printf("sum: %s\n", sum)
		}
	},
}

func init() {
	rootCmd.AddCommand(wordCmd)
	wordCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	wordCmd.Flags().UintP("width", "w", config.DefaultWordWidth, "bitwidth at which literals are parsed")
	wordCmd.Flags().Bool("sum", false, "report the (widening) sum of all literals")
}
