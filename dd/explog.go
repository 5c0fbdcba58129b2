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

// Exp returns e^x.
//
// Algorithm: range-reduce x to r = (x - m*ln2)/512 so |r| is tiny, evaluate
// exp(r)-1 by summing the Taylor series term by term, r + r^2/2 plus up to
// six more terms from the precomputed 1/k! (k=3..8) table, stopping once a
// term's magnitude is at most Epsilon/512; square the result 9 times to
// undo the /512 scaling
// ((1+a)^2 - 1 = 2a+a^2 each step), add 1, then apply Ldexp(., m) to undo
// the m*ln2 shift.
//
// Special cases: Exp(x) underflows to +0 for x <= -709, overflows to +Inf
// for x >= 709, Exp(0) = 1, Exp(1) = E exactly.
func Exp(x DD) DD {
	if x.hi <= -709 {
		return Zero
	}
	if x.hi >= 709 {
		return PosInf
	}
	if x.IsZero() {
		return One
	}
	if Equal(x, One) {
		return E
	}

	mf := Floor(Add(Div(x, Ln2), FromFloat64(0.5))).hi
	m := int(mf)
	r := MulPwr2(Sub(x, Mul(FromFloat64(mf), Ln2)), 1.0/512.0)

	thresh := Epsilon.hi / 512.0
	p := Sqr(r)
	s := Add(r, MulPwr2(p, 0.5))
	p = Mul(p, r)
	t := Mul(p, invFactorial[0])
	i := 0
	for math.Abs(t.hi) > thresh && i < len(invFactorial)-1 {
		s = Add(s, t)
		p = Mul(p, r)
		i++
		t = Mul(p, invFactorial[i])
	}
	s = Add(s, t)

	for k := 0; k < 9; k++ {
		s = Add(MulPwr2(s, 2), Sqr(s))
	}
	s = Add(s, One)

	return Ldexp(s, m)
}

// Log returns the natural logarithm of x.
//
// Algorithm: seed with the binary64 log of x.hi (already correct to ~16
// digits) and take one Newton step on f(y) = exp(y) - x, which doubles the
// number of correct digits — enough to reach DD precision in a single
// iteration.
//
// Special cases: Log(x) is NaN for x <= 0, Log(1) = 0 exactly,
// Log(E) = 1 exactly.
func Log(x DD) DD {
	if Equal(x, One) {
		return Zero
	}
	if x.hi <= 0 {
		return NaN
	}
	if Equal(x, E) {
		return One
	}
	y0 := FromFloat64(math.Log(x.hi))
	return Add(y0, Dec(Mul(x, Exp(Neg(y0)))))
}

// Log2 returns log base 2 of x.
func Log2(x DD) DD { return Div(Log(x), Ln2) }

// Log10 returns log base 10 of x.
func Log10(x DD) DD { return Div(Log(x), Ln10) }
