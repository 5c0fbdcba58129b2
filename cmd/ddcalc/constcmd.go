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

package main

import (
	"github.com/ajroetker/go-doubledouble/dd"
	"github.com/spf13/cobra"
)

var constCmd = &cobra.Command{
	Use:   "const",
	Short: "print the built-in dd constants at full precision",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		named := []struct {
			name string
			val  dd.DD
		}{
			{"pi", dd.Pi},
			{"e", dd.E},
			{"ln2", dd.Ln2},
			{"ln10", dd.Ln10},
			{"epsilon", dd.Epsilon},
			{"max", dd.MaxFinite},
			{"min", dd.MinNormal},
		}
		for _, c := range named {
			cmd.Printf("%-8s %s\n", c.name, dd.ShowPrec(c.val, dd.MaxPrecision))
		}
		return nil
	},
}
