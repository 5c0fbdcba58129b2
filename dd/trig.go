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

// SinCos returns sin(theta) and cos(theta) together, sharing the one
// argument-reduction pass.
//
// Algorithm: for |theta| < 1e-11 the small-angle approximation
// (theta, 1-theta^2/2) is already within DD precision. Otherwise theta is
// reduced modulo 2*pi, then to within pi/4 of the nearest axis (quadrant
// selector a in -2..2), then to within pi/32 of the nearest sixteenth-turn
// (table index b in -4..4). The residual s (|s| <= pi/32) is evaluated with
// a 9-term Horner polynomial in s^2 for sin(s)/s, cos(s) recovered via
// sqrt(1-sin^2(s)), and the pieces are recombined by angle addition.
func SinCos(theta DD) (sinT, cosT DD) {
	if theta.IsNaN() || theta.IsInf() {
		return NaN, NaN
	}
	if theta.IsZero() {
		return Zero, One
	}
	if math.Abs(theta.hi) < 1e-11 {
		return theta, Sub(One, MulPwr2(Sqr(theta), 0.5))
	}

	z := Round(Div(theta, TwoPi))
	r := Sub(theta, Mul(TwoPi, z))

	qa := math.Floor(r.hi/PiHalf.hi + 0.5)
	a := int(qa)
	t := Sub(r, Mul(PiHalf, FromFloat64(qa)))

	qb := math.Floor(t.hi/Pi16.hi + 0.5)
	b := int(qb)
	s := Sub(t, Mul(Pi16, FromFloat64(qb)))

	u := Sqr(s)
	poly := sinCoeff[len(sinCoeff)-1]
	for k := len(sinCoeff) - 2; k >= 0; k-- {
		poly = Add(Mul(poly, u), sinCoeff[k])
	}
	sinS := Mul(s, poly)
	cosS := Sqrt(Sub(One, Sqr(sinS)))

	idx := b
	if idx < 0 {
		idx = -idx
	}
	sinB := sinTable[idx]
	cosB := cosTable[idx]
	if b < 0 {
		sinB = Neg(sinB)
	}

	sinQ := Add(Mul(sinB, cosS), Mul(cosB, sinS))
	cosQ := Sub(Mul(cosB, cosS), Mul(sinB, sinS))

	switch a {
	case 0:
		return sinQ, cosQ
	case 1:
		return cosQ, Neg(sinQ)
	case -1:
		return Neg(cosQ), sinQ
	default: // +-2
		return Neg(sinQ), Neg(cosQ)
	}
}

// Sin returns sin(x).
func Sin(x DD) DD { s, _ := SinCos(x); return s }

// Cos returns cos(x).
func Cos(x DD) DD { _, c := SinCos(x); return c }

// Tan returns tan(x) = sin(x)/cos(x).
func Tan(x DD) DD {
	s, c := SinCos(x)
	return Div(s, c)
}

// WithSignOf returns |x| with the sign of signSrc, analogous to
// math.Copysign.
func WithSignOf(x, signSrc DD) DD {
	if signSrc.IsNeg() {
		return Neg(Abs(x))
	}
	return Abs(x)
}

// Asin returns the arcsine of x, in [-pi/2, pi/2]. NaN for |x| > 1.
func Asin(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if Compare(Abs(x), One) > 0 {
		return NaN
	}
	if Compare(Abs(x), One) == 0 {
		return WithSignOf(PiHalf, x)
	}
	return Atan2(x, Sqrt(Sub(One, Sqr(x))))
}

// Acos returns the arccosine of x, in [0, pi]. NaN for |x| > 1.
func Acos(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if Compare(Abs(x), One) > 0 {
		return NaN
	}
	if Equal(x, One) {
		return Zero
	}
	if Equal(x, Neg(One)) {
		return Pi
	}
	return Atan2(Sqrt(Sub(One, Sqr(x))), x)
}

// Atan returns the arctangent of x, in (-pi/2, pi/2).
func Atan(x DD) DD { return Atan2(x, One) }

// Atan2 returns the angle of the point (x, y) from the positive x-axis, in
// (-pi, pi]. The eight axis/quadrant-boundary special cases are handled
// exactly; the generic case seeds a binary64 atan2 and takes one Newton
// correction step.
func Atan2(y, x DD) DD {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		switch {
		case y.IsZero():
			return Zero
		case y.IsNeg():
			return Neg(PiHalf)
		default:
			return PiHalf
		}
	}
	if y.IsZero() {
		if x.IsNeg() {
			return Pi
		}
		return Zero
	}
	if Equal(x, y) {
		return WithSignOf(PiQuarter, y)
	}
	if Equal(x, Neg(y)) {
		return WithSignOf(Pi34, y)
	}

	r := Sqrt(Add(Sqr(x), Sqr(y)))
	xr := Div(x, r)
	yr := Div(y, r)
	z := FromFloat64(math.Atan2(y.hi, x.hi))
	sinZ, cosZ := SinCos(z)
	if math.Abs(xr.hi) > math.Abs(yr.hi) {
		return Add(z, Div(Sub(yr, sinZ), cosZ))
	}
	return Sub(z, Div(Sub(xr, cosZ), sinZ))
}
