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

import "math"

// Round returns x rounded to the nearest integer, ties to even, with a
// correction for the case where the low word breaks a hi-word tie.
func Round(x DD) DD {
	if !x.IsFinite() {
		return x
	}
	r := math.RoundToEven(x.hi)
	if r == x.hi {
		s, e := quickTwoSum(r, math.RoundToEven(x.lo))
		return DD{hi: s, lo: e}
	}
	if math.Abs(r-x.hi) == 0.5 && x.lo != 0 {
		if x.lo < 0 {
			return DD{hi: math.Floor(x.hi), lo: 0}
		}
		return DD{hi: math.Ceil(x.hi), lo: 0}
	}
	return DD{hi: r, lo: 0}
}

// Floor returns the greatest integer DD value <= x.
func Floor(x DD) DD {
	if !x.IsFinite() {
		return x
	}
	r := math.Floor(x.hi)
	if r == x.hi {
		s, e := quickTwoSum(r, math.Floor(x.lo))
		return DD{hi: s, lo: e}
	}
	return DD{hi: r, lo: 0}
}

// Ceil returns the least integer DD value >= x.
func Ceil(x DD) DD {
	if !x.IsFinite() {
		return x
	}
	r := math.Ceil(x.hi)
	if r == x.hi {
		s, e := quickTwoSum(r, math.Ceil(x.lo))
		return DD{hi: s, lo: e}
	}
	return DD{hi: r, lo: 0}
}

// Trunc returns x rounded toward zero.
func Trunc(x DD) DD {
	if x.IsNeg() {
		return Ceil(x)
	}
	return Floor(x)
}

// Fraction returns x - Trunc(x), the signed fractional part.
func Fraction(x DD) DD { return Sub(x, Trunc(x)) }

// FFraction returns x - Floor(x), the non-negative (floored) fractional
// part.
func FFraction(x DD) DD { return Sub(x, Floor(x)) }

// Mod returns x - Round(x/y)*y, the remainder of rounding division.
func Mod(x, y DD) DD {
	q := Round(Div(x, y))
	return Sub(x, Mul(q, y))
}

// DivRem returns both the rounded quotient and the remainder of x/y, such
// that q*y + r == x to DD precision.
func DivRem(x, y DD) (q, r DD) {
	q = Round(Div(x, y))
	r = Sub(x, Mul(q, y))
	return q, r
}

// RoundToPrec rounds x to p decimal digits after the point. p <= 0 rounds
// to an integer; p > MaxPrecision returns x unchanged since DD cannot
// faithfully resolve finer than its ~31 decimal digits.
func RoundToPrec(x DD, p int) DD {
	if p <= 0 {
		return Round(x)
	}
	if p > MaxPrecision {
		return x
	}
	scale := Pow10(p)
	return Div(Round(Mul(x, scale)), scale)
}

// ToFloat64 returns the nearest binary64 to x (its hi word, which is
// already the correctly-rounded approximation of hi+lo).
func (x DD) ToFloat64() float64 { return x.hi }
