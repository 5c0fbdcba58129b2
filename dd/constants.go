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

// MaxPrecision is the largest number of significant decimal digits this
// package will faithfully round to (spec §6).
const MaxPrecision = 31

// Pi, E, Ln2 and Ln10 are the double-double literal pairs this package is
// built from; every other angle/log constant is derived from these by
// exact power-of-two scaling or by a single DD addition/division, so apart
// from these four pairs only the sin/cos(i*pi/16) table in init relies on
// literal values.
var (
	// Pi is the double-double value of π.
	Pi = DD{hi: 3.141592653589793116e+00, lo: 1.224646799147353207e-16}

	// E is the double-double value of Euler's number.
	E = DD{hi: 2.718281828459045091e+00, lo: 1.445646891729250158e-16}

	// Ln2 is the double-double value of ln(2).
	Ln2 = DD{hi: 6.931471805599452862e-01, lo: 2.319046813846299558e-17}

	// Ln10 is the double-double value of ln(10).
	Ln10 = DD{hi: 2.302585092994045901e+00, lo: -2.170756223382249351e-16}
)

// TwoPi, PiHalf, PiQuarter and Pi16 are exact power-of-two rescalings of Pi:
// multiplying or dividing a DD by a power of two cannot introduce rounding
// error in either word, so these are as accurate as Pi itself.
var (
	TwoPi     = Ldexp(Pi, 1)
	PiHalf    = Ldexp(Pi, -1)
	PiQuarter = Ldexp(Pi, -2)
	Pi16      = Ldexp(Pi, -4)
)

// Pi34 is 3π/4 = π/2 + π/4, computed once at init time via ordinary DD
// addition of two already-normalized double-double literals. DD addition
// is faithfully rounded to within the package's epsilon, so this carries
// the same accuracy as a literal pair without requiring a second
// independently-sourced 3π/4 constant.
var Pi34 = Add(PiHalf, PiQuarter)

// Epsilon is 2^-104 (about 4.93e-32), the double-double machine epsilon:
// the relative precision of DD arithmetic with its 106-bit significand.
var Epsilon = DD{hi: math.Ldexp(1, -104), lo: 0}

// MaxFinite is the largest finite normalized DD value.
var MaxFinite = DD{hi: 1.79769313486231570815e+308, lo: 9.97920154767359795037e+291}

// MinNormal is the smallest positive normalized DD value, below which the low
// word can no longer be distinguished from zero (spec §1 Non-goals).
var MinNormal = DD{hi: 2.0041683600089728e-292, lo: 0}

// NaN, PosInf and NegInf are the double-double special values.
var (
	NaN    = DD{hi: math.NaN(), lo: math.NaN()}
	PosInf = DD{hi: math.Inf(1), lo: 0}
	NegInf = DD{hi: math.Inf(-1), lo: 0}
)

// invFactorial holds 1/k! as a double-double, for k = 3..8, used by Exp's
// Taylor expansion. Computed once at init via DD division rather than as
// literal pairs: division is faithfully rounded, and 1/k! for small
// integer k has no simpler exact DD form.
var invFactorial [6]DD

// sinCoeff holds the 9 Horner coefficients, c[0..8], of
// sin(s)/s = sum_k c[k] * (s^2)^k = 1 - u/3! + u^2/5! - u^3/7! + ...
// used by sincos's minimax-domain (|s| <= pi/32) polynomial evaluation.
// The first omitted term, s^18/19!, is below 2^-104 on that domain.
var sinCoeff [9]DD

// sinTable[i] and cosTable[i] hold sin(i*pi/16) and cos(i*pi/16) for
// i = 0..8, used by sincos to combine the coarse quadrant/sixteenth-turn
// angle with the fine residual s.
var (
	sinTable [9]DD
	cosTable [9]DD
)

func init() {
	fact := 6.0 // 3!
	n := 3
	for k := 0; k < len(invFactorial); k++ {
		invFactorial[k] = Div(One, FromFloat64(fact))
		n++
		fact *= float64(n)
	}

	// sinCoeff[k] = (-1)^k / (2k+1)!  for k = 0..8  (matches the Taylor
	// series of sin(s)/s written as a polynomial in u = s^2).
	sign := 1.0
	fact = 1.0 // 1!
	m := 1
	for k := 0; k < len(sinCoeff); k++ {
		sinCoeff[k] = MulPwr2(Div(One, FromFloat64(fact)), sign)
		sign = -sign
		m++
		fact *= float64(m)
		m++
		fact *= float64(m)
	}

	// sin(i*pi/16), cos(i*pi/16) literal pairs, QD-library-standard values
	// for i=1..4; i=0 and i=8 are the exact endpoints; i=5..7 come from the
	// complementary-angle identity sin(x) = cos(pi/2-x).
	type pair struct{ hi, lo float64 }
	sinLit := [5]pair{
		{0, 0},
		{1.950903220161282758e-01, -7.991079068461731263e-18},
		{3.826834323650897818e-01, -1.005077269646158761e-17},
		{5.555702330196021776e-01, 4.709410940561676821e-17},
		{7.071067811865475727e-01, -4.833646656726456726e-17},
	}
	cosLit := [5]pair{
		{1, 0},
		{9.807852804032304306e-01, 1.854693999782500573e-17},
		{9.238795325112867385e-01, 1.764504708433667706e-17},
		{8.314696123025452357e-01, 1.407385698472802389e-18},
		{7.071067811865475727e-01, -4.833646656726456726e-17},
	}
	for i := 0; i <= 4; i++ {
		sinTable[i] = DD{hi: sinLit[i].hi, lo: sinLit[i].lo}
		cosTable[i] = DD{hi: cosLit[i].hi, lo: cosLit[i].lo}
	}
	for i := 5; i <= 8; i++ {
		sinTable[i] = cosTable[8-i]
		cosTable[i] = sinTable[8-i]
	}
}
