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

// Package dd implements double-double arithmetic: a 128-bit-precision
// floating-point number represented as an unevaluated sum of two IEEE-754
// binary64 values (hi, lo), giving roughly 31 decimal digits of significand
// precision while keeping binary64's exponent range.
//
// A DD value denotes the real number hi+lo. After every exported operation
// (other than raw construction) the pair is normalized so that hi equals
// round-to-nearest-even(hi+lo), equivalently |lo| <= 1/2 ulp(hi).
//
// The package is pure and value-oriented: DD values have no identity, no
// mutation, and every function here is safe to call concurrently from
// multiple goroutines without synchronization.
package dd

import "math"

// DD is an immutable double-double value: the real number hi+lo.
type DD struct {
	hi, lo float64
}

// Hi returns the leading (higher-magnitude) binary64 word.
func (x DD) Hi() float64 { return x.hi }

// Lo returns the trailing correction binary64 word.
func (x DD) Lo() float64 { return x.lo }

// FromFloat64 lifts a single binary64 into a DD with a zero correction term.
func FromFloat64(d float64) DD {
	return DD{hi: d, lo: 0}
}

// raw constructs a DD from an already-normalized (hi, lo) pair. Only used
// internally where the pair's normalization is already an invariant of the
// algorithm (e.g. sums returned from the EFTs).
func raw(hi, lo float64) DD {
	return DD{hi: hi, lo: lo}
}

// dquicksum renormalizes (a, b) via quickTwoSum into a DD, per spec: if a is
// non-finite the low word is forced to zero so formatters can treat hi as
// authoritative.
func dquicksum(a, b float64) DD {
	if !isFiniteFloat(a) {
		return DD{hi: a, lo: 0}
	}
	s, e := quickTwoSum(a, b)
	return DD{hi: s, lo: e}
}

// Zero is the additive identity, +0.
var Zero = DD{hi: 0, lo: 0}

// One is the multiplicative identity.
var One = DD{hi: 1, lo: 0}

// IsZero reports whether x is +0 or -0.
func (x DD) IsZero() bool { return x.hi == 0 }

// IsNeg reports whether x is strictly negative (NaN is never negative).
func (x DD) IsNeg() bool { return !x.IsNaN() && math.Signbit(x.hi) && x.hi != 0 }

// IsPos reports whether x is strictly positive (NaN is never positive).
func (x DD) IsPos() bool { return !x.IsNaN() && !math.Signbit(x.hi) && x.hi != 0 }

// Sign returns -1, 0, or 1 according to the sign of x. NaN reports 0.
func (x DD) Sign() int {
	switch {
	case x.IsNaN() || x.hi == 0:
		return 0
	case x.hi < 0:
		return -1
	default:
		return 1
	}
}

// IsNaN reports whether x is NaN: either word being NaN makes the whole
// value NaN.
func (x DD) IsNaN() bool { return math.IsNaN(x.hi) || math.IsNaN(x.lo) }

// IsInf reports whether x is positive or negative infinity.
func (x DD) IsInf() bool { return math.IsInf(x.hi, 0) }

// IsPosInf reports whether x is exactly positive infinity.
func (x DD) IsPosInf() bool { return math.IsInf(x.hi, 1) }

// IsNegInf reports whether x is exactly negative infinity.
func (x DD) IsNegInf() bool { return math.IsInf(x.hi, -1) }

// IsFinite reports whether x is neither NaN nor infinite.
func (x DD) IsFinite() bool { return !x.IsNaN() && !x.IsInf() }

// Compare returns -1, 0, or 1 as x is less than, equal to, or greater than
// y. Comparisons involving NaN always return a value (no Go ordering
// operators are overloadable); callers that care about NaN should check
// IsNaN explicitly first.
func Compare(x, y DD) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

// Less reports whether x < y.
func Less(x, y DD) bool { return Compare(x, y) < 0 }

// Equal reports whether x == y bit-exactly (both words equal).
func Equal(x, y DD) bool { return x.hi == y.hi && x.lo == y.lo }

// Min returns the lesser of x and y.
func Min(x, y DD) DD {
	if Less(y, x) {
		return y
	}
	return x
}

// Max returns the greater of x and y.
func Max(x, y DD) DD {
	if Less(x, y) {
		return y
	}
	return x
}
