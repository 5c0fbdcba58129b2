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

// splitter is 2^27+1, the Veltkamp split constant for binary64: it divides
// a 53-bit significand into two halves of at most 27 bits each.
const splitter = 134217729.0 // 2^27 + 1

// splitThreshold is the magnitude above which split must pre-scale its
// input to avoid overflow in splitter*a.
const splitThreshold = 6.69692879491417e+299 // 2^996

// twoSum returns s = fl(a+b) and the exact error e such that s+e == a+b
// exactly, for any a, b. Knuth's algorithm, 6 flops.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	if !isFiniteFloat(s) {
		return s, s
	}
	v := s - a
	e = (a - (s - v)) + (b - v)
	return s, e
}

// quickTwoSum returns s = fl(a+b) and the exact error e such that s+e == a+b,
// valid only when |a| >= |b|. Dekker's algorithm, 3 flops.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	if !isFiniteFloat(s) {
		return s, s
	}
	e = b - (s - a)
	return s, e
}

// split breaks a into hi and lo, each representable in at most 27
// significand bits, such that hi+lo == a exactly.
func split(a float64) (hi, lo float64) {
	if math.Abs(a) > splitThreshold {
		a *= 3.7252902984619140625e-09 // 2^-28
		c := splitter * a
		hi = c - (c - a)
		lo = a - hi
		hi *= 268435456.0 // 2^28
		lo *= 268435456.0
		return hi, lo
	}
	c := splitter * a
	hi = c - (c - a)
	lo = a - hi
	return hi, lo
}

// twoProd returns p = fl(a*b) and the exact error e such that p+e == a*b
// exactly.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	if !isFiniteFloat(p) {
		return p, p
	}
	ah, al := split(a)
	bh, bl := split(b)
	e = ((ah*bh - p) + ah*bl + al*bh) + al*bl
	return p, e
}

// twoSqr returns p = fl(a*a) and the exact error e such that p+e == a*a
// exactly. Specialization of twoProd with a single split.
func twoSqr(a float64) (p, e float64) {
	p = a * a
	if !isFiniteFloat(p) {
		return p, p
	}
	ah, al := split(a)
	e = ((ah*ah - p) + 2*ah*al) + al*al
	return p, e
}

func isFiniteFloat(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
