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

// Add returns x+y using the Briggs/QD two-pass "IEEE-style" algorithm: each
// word pair is summed error-free, the errors are folded back in, and the
// result is renormalized.
//
// Allocation-free, deterministic, safe for concurrent use.
func Add(x, y DD) DD {
	s1, e1 := twoSum(x.hi, y.hi)
	s2, e2 := twoSum(x.lo, y.lo)
	e1 += s2
	s1, e1 = quickTwoSum(s1, e1)
	e1 += e2
	return dquicksum(s1, e1)
}

// Sub returns x-y.
func Sub(x, y DD) DD {
	return Add(x, Neg(y))
}

// Neg returns -x, negating both words.
func Neg(x DD) DD {
	return DD{hi: -x.hi, lo: -x.lo}
}

// Abs returns |x|.
func Abs(x DD) DD {
	if x.IsNeg() {
		return Neg(x)
	}
	return x
}

// Mul returns x*y.
func Mul(x, y DD) DD {
	p, e := twoProd(x.hi, y.hi)
	e += x.hi*y.lo + x.lo*y.hi
	return dquicksum(p, e)
}

// Sqr returns x*x, slightly cheaper than Mul(x, x) since it needs only one
// split.
func Sqr(x DD) DD {
	p, e := twoSqr(x.hi)
	e += 2*x.hi*x.lo + x.lo*x.lo
	return dquicksum(p, e)
}

// Div returns x/y via three-step compensated long division.
func Div(x, y DD) DD {
	q1 := x.hi / y.hi
	if !isFiniteFloat(q1) {
		return DD{hi: q1, lo: 0}
	}
	r := Sub(x, Mul(y, FromFloat64(q1)))
	q2 := r.hi / y.hi
	r = Sub(r, Mul(y, FromFloat64(q2)))
	q3 := r.hi / y.hi
	return Add(dquicksum(q1, q2), DD{hi: q3, lo: 0})
}

// MulPwr2 multiplies each word of x by p, a power of two, without
// renormalizing. Exact as long as neither word over/underflows.
func MulPwr2(x DD, p float64) DD {
	return DD{hi: x.hi * p, lo: x.lo * p}
}

// Ldexp returns x * 2^k.
func Ldexp(x DD, k int) DD {
	return DD{hi: math.Ldexp(x.hi, k), lo: math.Ldexp(x.lo, k)}
}

// Inc returns x+1.
func Inc(x DD) DD { return Add(x, One) }

// Dec returns x-1.
func Dec(x DD) DD { return Sub(x, One) }

// SumOfList returns the compensated sum of xs. Each partial sum goes
// through the same two-pass Add as a binary +, so error accumulates at
// double-double (not binary64) precision regardless of list order.
func SumOfList(xs []DD) DD {
	acc := Zero
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}
