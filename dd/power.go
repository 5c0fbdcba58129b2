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

// Pow returns x raised to the integer power n, by iterative binary
// exponentiation on |n| (the source library's tail-recursive squaring,
// turned into a loop as is idiomatic in a systems language), inverting the
// result at the end when n < 0.
//
// Pow(0, 0) is NaN; Pow(x, 0) is 1 for any other x.
func Pow(x DD, n int) DD {
	if n == 0 {
		if x.IsZero() {
			return NaN
		}
		return One
	}
	neg := n < 0
	m := n
	if neg {
		m = -n
	}
	base := x
	result := One
	for m > 0 {
		if m&1 == 1 {
			result = Mul(result, base)
		}
		m >>= 1
		if m > 0 {
			base = Sqr(base)
		}
	}
	if neg {
		return Div(One, result)
	}
	return result
}

// Pow2 returns 2^n. Implemented as an exact power-of-two Ldexp rather than
// through the general Mul/Sqr ladder Pow uses for 10^n: since the base is
// itself a power of two, scaling the exponent field directly is both exact
// and cheaper, and numerically identical to Pow(FromFloat64(2), n).
func Pow2(n int) DD { return Ldexp(One, n) }

// Pow10 returns 10^n via the general integer-power kernel.
func Pow10(n int) DD { return Pow(FromFloat64(10), n) }

// Sqrt returns the square root of x using Karp's strategy: a binary64
// reciprocal-square-root seed paired with one DD correction term, combined
// without a final renormalizing pass (per spec, the two-sum result is used
// as-is).
//
// Sqrt(0) = 0, Sqrt(x) is NaN for x < 0.
func Sqrt(x DD) DD {
	if x.IsZero() {
		return Zero
	}
	if x.IsNeg() {
		return NaN
	}
	if x.IsPosInf() {
		return PosInf
	}
	if x.IsNaN() {
		return NaN
	}
	a := 1.0 / math.Sqrt(x.hi)
	t1 := x.hi * a
	diff := Sub(x, Sqr(FromFloat64(t1)))
	t2 := diff.hi * a / 2
	s, e := twoSum(t1, t2)
	return DD{hi: s, lo: e}
}

// NRoot returns the n-th root of x.
//
// NRoot(x, 1) = x, NRoot(x, 2) = Sqrt(x). NRoot is NaN when n <= 0, or when
// n is even and x is negative. Otherwise this runs one Newton iteration on
// f(a) = a^-n - |x|, seeded from a binary64 estimate of |x|^(-1/n).
func NRoot(x DD, n int) DD {
	switch {
	case n == 1:
		return x
	case n == 2:
		return Sqrt(x)
	case n <= 0:
		return NaN
	}
	if x.IsNaN() {
		return NaN
	}
	if n%2 == 0 && x.IsNeg() {
		return NaN
	}
	if x.IsZero() {
		return Zero
	}

	absX := Abs(x)
	a0 := FromFloat64(math.Exp(-math.Log(math.Abs(x.hi)) / float64(n)))
	a1 := Add(a0, Div(Mul(a0, Sub(One, Mul(absX, Pow(a0, n)))), FromFloat64(float64(n))))
	result := Div(One, a1)
	if x.IsNeg() {
		return Neg(result)
	}
	return result
}
