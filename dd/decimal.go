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

// ten is 10 as a DD, used throughout digit extraction.
var ten = FromFloat64(10)

// extractDigits returns the leading n significant decimal digits of |x|
// (x must be finite and non-zero) as ASCII bytes, half-up rounded at the
// n-th digit, together with the base-10 exponent exp such that the value
// equals 0.digits[0]digits[1]...digits[n-1] * 10^(exp+1).
//
// Algorithm (spec §4.J):
//  1. e0 = floor(log10(|x.hi|)), computed in binary64.
//  2. Normalize r = |x| / 10^e0 into [1, 10) and correct the inevitable
//     off-by-one from step 1's binary64 rounding. For e0 > 300, |x| is
//     scaled by 2^-53 before the division and the quotient by 2^53 after
//     it, so no intermediate product overflows.
//  3. Pull digits one at a time: d = trunc(r), r = (r - d) * 10.
//  4. Round half up at the requested precision and propagate any carry
//     back through the leading digit, bumping exp when it overflows.
func extractDigits(x DD, n int) (digits []byte, exp int) {
	ax := Abs(x)

	e0 := int(math.Floor(math.Log10(ax.hi)))

	var r DD
	if e0 > 300 {
		r = Ldexp(Div(Ldexp(ax, -53), Pow10(e0)), 53)
	} else {
		r = Mul(ax, Pow10(-e0))
	}
	for r.hi >= 10 {
		r = Div(r, ten)
		e0++
	}
	for r.hi < 1 {
		r = Mul(r, ten)
		e0--
	}

	raw := make([]byte, n+1)
	for i := 0; i <= n; i++ {
		d := int(math.Floor(r.hi))
		if d < 0 {
			d = 0
		} else if d > 9 {
			d = 9
		}
		raw[i] = byte('0' + d)
		r = Mul(Sub(r, FromFloat64(float64(d))), ten)
	}

	if raw[n] >= '5' {
		i := n - 1
		for i >= 0 {
			if raw[i] == '9' {
				raw[i] = '0'
				i--
				continue
			}
			raw[i]++
			break
		}
		if i < 0 {
			copy(raw[1:n], raw[0:n-1])
			raw[0] = '1'
			exp = e0 + 1
			return raw[:n], exp
		}
	}
	return raw[:n], e0
}

// trimTrailingZeros returns digits (as returned by extractDigits) with
// trailing '0' bytes stripped. It never strips below one digit.
func trimTrailingZeros(digits []byte) []byte {
	end := len(digits)
	for end > 1 && digits[end-1] == '0' {
		end--
	}
	return digits[:end]
}
