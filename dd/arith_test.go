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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddBeatsBinary64(t *testing.T) {
	// 0.1 + 0.2 in plain binary64 is 0.30000000000000004; at DD precision
	// the sum of the two binary64 inputs is held exactly
	// (0.3000000000000000166533...), which prints as 0.30000000000000002
	// to 17 significant digits.
	x := FromFloat64(0.1)
	y := FromFloat64(0.2)
	sum := Add(x, y)
	assert.Equal(t, "0.30000000000000002", ShowPrec(sum, 17))
}

func TestAddCommutativeAndIdentity(t *testing.T) {
	a := FromFloat64(1.23456789)
	b := FromFloat64(-9.87654321)
	assert.True(t, Equal(Add(a, b), Add(b, a)))
	assert.True(t, Equal(Add(a, Zero), a))
}

func TestSubAndNeg(t *testing.T) {
	a := FromFloat64(5)
	b := FromFloat64(3)
	assert.True(t, Equal(Sub(a, b), FromFloat64(2)))
	assert.True(t, Equal(Neg(Neg(a)), a))
}

func TestAbs(t *testing.T) {
	assert.True(t, Equal(Abs(FromFloat64(-4)), FromFloat64(4)))
	assert.True(t, Equal(Abs(FromFloat64(4)), FromFloat64(4)))
}

func TestMulIdentityAndZero(t *testing.T) {
	a := FromFloat64(7.5)
	assert.True(t, Equal(Mul(a, One), a))
	assert.True(t, Equal(Mul(a, Zero), Zero))
}

func TestSqrMatchesMul(t *testing.T) {
	a := FromFloat64(1.0000000001)
	assert.True(t, Equal(Sqr(a), Mul(a, a)))
}

func TestDivRoundTrip(t *testing.T) {
	a := FromFloat64(22)
	b := FromFloat64(7)
	q := Div(a, b)
	back := Mul(q, b)
	diff := math.Abs(Sub(back, a).Hi())
	assert.Less(t, diff, 1e-28)
}

func TestMulPwr2AndLdexp(t *testing.T) {
	a := FromFloat64(3)
	assert.True(t, Equal(MulPwr2(a, 2), FromFloat64(6)))
	assert.True(t, Equal(Ldexp(a, 3), FromFloat64(24)))
}

func TestIncDec(t *testing.T) {
	a := FromFloat64(10)
	assert.True(t, Equal(Inc(a), FromFloat64(11)))
	assert.True(t, Equal(Dec(a), FromFloat64(9)))
}

func TestSumOfList(t *testing.T) {
	xs := []DD{FromFloat64(1), FromFloat64(2), FromFloat64(3), FromFloat64(4)}
	assert.True(t, Equal(SumOfList(xs), FromFloat64(10)))
	assert.True(t, Equal(SumOfList(nil), Zero))
}

func TestPowOfTwoExact(t *testing.T) {
	// pow(2, 100) must match exactly across all 31 printed digits.
	result := Pow(FromFloat64(2), 100)
	want := "1267650600228229401496703205376"
	assert.Equal(t, want, ShowFixed(result, 0, true))
}
