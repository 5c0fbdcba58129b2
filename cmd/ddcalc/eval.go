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
	"fmt"
	"strconv"

	"github.com/ajroetker/go-doubledouble/dd"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <op> <operand> [operand]",
	Short: "evaluate a single dd operation",
	Long: `eval applies one of add, sub, mul, div, mod, pow, sqrt, nroot, exp,
log, log2, log10, sin, cos, tan, asin, acos, atan, atan2, sinh, cosh, tanh,
abs, neg to its operands and prints the result at the configured precision.

pow and nroot take an integer second operand rather than a dd literal.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEval,
}

func parseOperand(cmd *cobra.Command, s string) (dd.DD, error) {
	v, err := dd.Parse(s)
	if err != nil {
		return dd.DD{}, fmt.Errorf("operand %q: %w", s, err)
	}
	logger.Debug("parsed operand", "input", s, "hi", v.Hi(), "lo", v.Lo())
	return v, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	op := args[0]
	rest := args[1:]

	switch op {
	case "pow", "nroot":
		if len(rest) != 2 {
			return fmt.Errorf("%s needs exactly 2 operands", op)
		}
		x, err := parseOperand(cmd, rest[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("%s exponent %q: %w", op, rest[1], err)
		}
		var result dd.DD
		if op == "pow" {
			result = dd.Pow(x, n)
		} else {
			result = dd.NRoot(x, n)
		}
		cmd.Println(dd.ShowPrec(result, precision))
		return nil
	}

	operands := make([]dd.DD, len(rest))
	for i, s := range rest {
		v, err := parseOperand(cmd, s)
		if err != nil {
			return err
		}
		operands[i] = v
	}

	unary := func(f func(dd.DD) dd.DD) error {
		if len(operands) != 1 {
			return fmt.Errorf("%s takes exactly 1 operand", op)
		}
		cmd.Println(dd.ShowPrec(f(operands[0]), precision))
		return nil
	}
	binary := func(f func(dd.DD, dd.DD) dd.DD) error {
		if len(operands) != 2 {
			return fmt.Errorf("%s takes exactly 2 operands", op)
		}
		cmd.Println(dd.ShowPrec(f(operands[0], operands[1]), precision))
		return nil
	}

	switch op {
	case "add":
		return binary(dd.Add)
	case "sub":
		return binary(dd.Sub)
	case "mul":
		return binary(dd.Mul)
	case "div":
		return binary(dd.Div)
	case "atan2":
		return binary(dd.Atan2)
	case "mod":
		return binary(dd.Mod)
	case "sqrt":
		return unary(dd.Sqrt)
	case "exp":
		return unary(dd.Exp)
	case "log":
		return unary(dd.Log)
	case "log2":
		return unary(dd.Log2)
	case "log10":
		return unary(dd.Log10)
	case "sin":
		return unary(dd.Sin)
	case "cos":
		return unary(dd.Cos)
	case "tan":
		return unary(dd.Tan)
	case "asin":
		return unary(dd.Asin)
	case "acos":
		return unary(dd.Acos)
	case "atan":
		return unary(dd.Atan)
	case "sinh":
		return unary(dd.Sinh)
	case "cosh":
		return unary(dd.Cosh)
	case "tanh":
		return unary(dd.Tanh)
	case "abs":
		return unary(dd.Abs)
	case "neg":
		return unary(dd.Neg)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}
