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

package dd

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Parse accepts the grammar
//
//	sign? digits ('.' digits?)? ([eE] sign? digits)? ( '+' signed_double )?
//
// plus the specials "nan" and "[+-]?inf(inity)?" (case-insensitive), and
// returns an error on malformed input. It does not use a regexp tokenizer
// (spec §6 allows "any equivalent parser"); this is a small hand-written
// scanner over the same grammar.
//
// The trailing "'+' signed_double" form is the dual-word hi+lo layout
// produced by ShowSum: when present, both halves are parsed as plain
// binary64 and summed as DDs, guaranteeing an exact round trip. Without
// it, the full lexeme is parsed through an arbitrary-precision integer so
// precision is limited only by the digits actually written.
func Parse(s string) (DD, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return DD{}, fmt.Errorf("dd: cannot parse %q: empty", orig)
	}

	switch strings.ToLower(s) {
	case "nan":
		return NaN, nil
	}
	if v, ok := parseSignedInf(s); ok {
		return v, nil
	}

	pos := 0
	sign := 1
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		if s[pos] == '-' {
			sign = -1
		}
		pos++
	}

	start := pos
	for pos < len(s) && isASCIIDigit(s[pos]) {
		pos++
	}
	intPart := s[start:pos]

	fracPart := ""
	if pos < len(s) && s[pos] == '.' {
		pos++
		fstart := pos
		for pos < len(s) && isASCIIDigit(s[pos]) {
			pos++
		}
		fracPart = s[fstart:pos]
	}
	if intPart == "" && fracPart == "" {
		return DD{}, fmt.Errorf("dd: cannot parse %q: no digits", orig)
	}

	declaredExp := 0
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		epos := pos + 1
		expSign := 1
		if epos < len(s) && (s[epos] == '+' || s[epos] == '-') {
			if s[epos] == '-' {
				expSign = -1
			}
			epos++
		}
		estart := epos
		for epos < len(s) && isASCIIDigit(s[epos]) {
			epos++
		}
		if epos == estart {
			return DD{}, fmt.Errorf("dd: cannot parse %q: malformed exponent", orig)
		}
		ev, err := strconv.Atoi(s[estart:epos])
		if err != nil {
			return DD{}, fmt.Errorf("dd: cannot parse %q: %w", orig, err)
		}
		declaredExp = expSign * ev
		pos = epos
	}

	mainLexeme := s[:pos]
	rest := strings.TrimSpace(s[pos:])
	if strings.HasPrefix(rest, "+") {
		trailing := strings.TrimSpace(rest[1:])
		leadVal, err1 := strconv.ParseFloat(mainLexeme, 64)
		trailVal, err2 := strconv.ParseFloat(trailing, 64)
		if err1 != nil || err2 != nil {
			return DD{}, fmt.Errorf("dd: cannot parse dual-word literal %q", orig)
		}
		return Add(FromFloat64(leadVal), FromFloat64(trailVal)), nil
	}
	if rest != "" {
		return DD{}, fmt.Errorf("dd: cannot parse %q: unexpected trailing text", orig)
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	w := new(big.Int)
	if _, ok := w.SetString(digits, 10); !ok {
		return DD{}, fmt.Errorf("dd: cannot parse %q: bad digits", orig)
	}

	e := declaredExp - len(fracPart)
	var result DD
	if e >= 0 {
		result = fromBigIntMagnitude(scaledBigInt(w, e))
	} else {
		result = Div(fromBigIntMagnitude(w), Pow10(-e))
	}
	if sign < 0 {
		result = Neg(result)
	}
	return result, nil
}

// FromString is the lenient wrapper around Parse: a syntax error yields NaN
// instead of an error value, matching spec §7's error taxonomy for parse
// failure.
func FromString(s string) DD {
	v, err := Parse(s)
	if err != nil {
		return NaN
	}
	return v
}

func parseSignedInf(s string) (DD, bool) {
	neg := false
	rest := s
	switch {
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	}
	switch strings.ToLower(rest) {
	case "inf", "infinity":
		if neg {
			return NegInf, true
		}
		return PosInf, true
	}
	return DD{}, false
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
