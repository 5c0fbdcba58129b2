// Copyright 2026 go-doubledouble Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ddcalc is a small calculator built on the dd package: every
// value it prints carries roughly 31 decimal digits of precision instead
// of the ~16 a plain binary64 CLI calculator would give you.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ajroetker/go-doubledouble/dd"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	precision int
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ddcalc",
	Short: "ddcalc evaluates double-double precision arithmetic",
	Long: `ddcalc is a command-line calculator built on the dd package's
double-double arithmetic: values are carried as an unevaluated sum of
two binary64 words, giving roughly 31 significant decimal digits.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", dd.MaxPrecision, "significant digits to print")
	rootCmd.AddCommand(evalCmd, convertCmd, constCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
