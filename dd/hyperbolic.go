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

// smallSinh returns sinh(x) via its Taylor series, for |x.hi| <= 0.05 where
// the exponential form (e^x - e^-x)/2 would lose precision to catastrophic
// cancellation.
func smallSinh(x DD) DD {
	x2 := Sqr(x)
	inner := Add(One, Div(x2, FromFloat64(42)))
	inner = Add(One, Mul(Div(x2, FromFloat64(20)), inner))
	inner = Add(One, Mul(Div(x2, FromFloat64(6)), inner))
	return Mul(x, inner)
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if math.Abs(x.hi) <= 0.05 {
		return smallSinh(x)
	}
	ex := Exp(x)
	enx := Div(One, ex)
	return MulPwr2(Sub(ex, enx), 0.5)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if math.Abs(x.hi) <= 0.05 {
		s := smallSinh(x)
		return Sqrt(Add(One, Sqr(s)))
	}
	ex := Exp(x)
	enx := Div(One, ex)
	return MulPwr2(Add(ex, enx), 0.5)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if math.Abs(x.hi) <= 0.05 {
		s := smallSinh(x)
		c := Sqrt(Add(One, Sqr(s)))
		return Div(s, c)
	}
	ex := Exp(x)
	enx := Div(One, ex)
	return Div(Sub(ex, enx), Add(ex, enx))
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	return Log(Add(x, Sqrt(Add(Sqr(x), One))))
}

// Acosh returns the inverse hyperbolic cosine of x. NaN for x < 1.
func Acosh(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if Compare(x, One) < 0 {
		return NaN
	}
	return Log(Add(x, Sqrt(Sub(Sqr(x), One))))
}

// Atanh returns the inverse hyperbolic tangent of x. NaN for |x| >= 1.
func Atanh(x DD) DD {
	if x.IsNaN() {
		return NaN
	}
	if Compare(Abs(x), One) >= 0 {
		return NaN
	}
	return MulPwr2(Log(Div(Add(One, x), Sub(One, x))), 0.5)
}
