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

var convertCmd = &cobra.Command{
	Use:   "convert <number>",
	Short: "show a dd value in every supported representation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseOperand(cmd, args[0])
		if err != nil {
			return err
		}
		cmd.Printf("show:   %s\n", dd.ShowPrec(v, precision))
		cmd.Printf("fixed:  %s\n", dd.ShowFixed(v, precision, true))
		cmd.Printf("exp:    %s\n", dd.ShowExp(v, precision, true))
		cmd.Printf("sum:    %s\n", dd.ShowSum(v))
		if v.IsFinite() {
			cmd.Printf("int:    %s\n", dd.ToInt(v).String())
		}
		return nil
	},
}
