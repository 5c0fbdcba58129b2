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

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/remyoudompheng/bigfft"
	"modernc.org/mathutil"
)

// maxExactInt is 2^53-1, the largest integer magnitude every binary64 can
// represent exactly.
const maxExactInt = 1<<53 - 1

// chunkDigits is P in spec §4.J: the width of a decimal digit group that is
// always exactly representable as a binary64.
const chunkDigits = 15

// bigFFTDigitThreshold is the combined operand size, in decimal digits,
// above which FFT-based multiplication starts winning over schoolbook
// math/big multiplication. Below it the constant-factor overhead of an FFT
// dominates.
const bigFFTDigitThreshold = 600

// FromInt converts an arbitrary-precision integer to the nearest DD.
func FromInt(i *big.Int) DD {
	if i.Sign() == 0 {
		return Zero
	}
	mag := new(big.Int).Abs(i)
	result := fromBigIntMagnitude(mag)
	if i.Sign() < 0 {
		return Neg(result)
	}
	return result
}

// FromIntExp returns i * 10^e as a DD.
func FromIntExp(i *big.Int, e int) DD {
	return Mul(FromInt(i), Pow10(e))
}

// FromFloat64Exp returns d * 10^e as a DD.
func FromFloat64Exp(d float64, e int) DD {
	return Mul(FromFloat64(d), Pow10(e))
}

// fromBigIntMagnitude converts a non-negative *big.Int to DD by splitting
// its decimal digits into <=15-digit chunks (each exactly representable in
// a binary64) and recombining with Pow10, per spec §4.J. Integers of up to
// 30 digits use the direct two-chunk split; larger ones use a three-way
// split whose low two chunks drop trailing decimal zeros so each retains
// at most 15 *significant* digits.
func fromBigIntMagnitude(i *big.Int) DD {
	if i.Sign() == 0 {
		return Zero
	}
	if i.IsInt64() {
		if v := i.Int64(); v <= maxExactInt {
			return FromFloat64(float64(v))
		}
	}
	digits := i.Text(10)
	d := len(digits)
	if d <= 2*chunkDigits {
		split := mathutil.Max(d-chunkDigits, 0)
		return Add(Mul(chunkToDD(digits[:split]), Pow10(d-split)), chunkToDD(digits[split:]))
	}

	topLen := d - 2*chunkDigits
	top := digits[:topLen]
	mid := digits[topLen : topLen+chunkDigits]
	low := digits[topLen+chunkDigits:]
	result := Mul(chunkToDD(top), Pow10(2*chunkDigits))
	result = Add(result, Mul(chunkToDD(mid), Pow10(chunkDigits)))
	result = Add(result, chunkToDD(low))
	return result
}

// chunkToDD converts a digit substring (no sign) to DD, first stripping
// trailing zeros so the numeric conversion only touches significant
// digits; stripped zeros come back as a Pow10 multiplier. Falls back to a
// recursive fromBigIntMagnitude for chunks that, after stripping, still
// exceed chunkDigits (this only happens for the top chunk of integers with
// more than 45 digits).
func chunkToDD(digits string) DD {
	if digits == "" {
		return Zero
	}
	trimmed := strings.TrimRight(digits, "0")
	stripped := len(digits) - len(trimmed)
	if trimmed == "" {
		return Zero
	}
	if len(trimmed) <= chunkDigits {
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return NaN
		}
		return Mul(FromFloat64(float64(v)), Pow10(stripped))
	}
	sub := new(big.Int)
	sub.SetString(trimmed, 10)
	return Mul(fromBigIntMagnitude(sub), Pow10(stripped))
}

// scaledBigInt returns w * 10^e as a *big.Int, e >= 0. Large decimal
// literals (e.g. "1e600") push the combined operand size past
// bigFFTDigitThreshold, where bigfft's FFT-based multiply beats math/big's
// schoolbook algorithm; smaller ones use math/big directly.
func scaledBigInt(w *big.Int, e int) *big.Int {
	if e <= 0 {
		return new(big.Int).Set(w)
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
	if len(w.Text(10))+e >= bigFFTDigitThreshold {
		return bigfft.Mul(w, pow)
	}
	return new(big.Int).Mul(w, pow)
}

// ToInt rounds x to the nearest integer and returns it as a *big.Int,
// exactly, via repeated scale-and-truncate rather than the
// format-then-reparse path spec §9's Open Question flags as lossy at the
// +-10^30 boundary.
func ToInt(x DD) *big.Int {
	r := Round(x)
	if !r.IsFinite() {
		return big.NewInt(0)
	}
	if math.Abs(r.hi) <= maxExactInt {
		return big.NewInt(int64(r.hi))
	}
	neg := r.IsNeg()
	q := Abs(r)
	chunkMod := FromFloat64(1e15)
	chunkPow := new(big.Int).SetInt64(1_000_000_000_000_000)
	result := new(big.Int)
	scale := big.NewInt(1)
	for !q.IsZero() {
		hiPart := Trunc(Div(q, chunkMod))
		rem := Sub(q, Mul(hiPart, chunkMod))
		remInt := int64(math.Round(rem.hi))
		chunk := new(big.Int).Mul(big.NewInt(remInt), scale)
		result.Add(result, chunk)
		scale = new(big.Int).Mul(scale, chunkPow)
		q = hiPart
	}
	if neg {
		result.Neg(result)
	}
	return result
}
