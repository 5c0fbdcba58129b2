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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTiesToEven(t *testing.T) {
	assert.True(t, Equal(Round(FromFloat64(2.5)), FromFloat64(2)))
	assert.True(t, Equal(Round(FromFloat64(3.5)), FromFloat64(4)))
	assert.True(t, Equal(Round(FromFloat64(2.4)), FromFloat64(2)))
	assert.True(t, Equal(Round(FromFloat64(-2.5)), FromFloat64(-2)))
}

func TestFloorCeil(t *testing.T) {
	x := FromFloat64(2.7)
	assert.True(t, Equal(Floor(x), FromFloat64(2)))
	assert.True(t, Equal(Ceil(x), FromFloat64(3)))
	neg := FromFloat64(-2.7)
	assert.True(t, Equal(Floor(neg), FromFloat64(-3)))
	assert.True(t, Equal(Ceil(neg), FromFloat64(-2)))
}

func TestTrunc(t *testing.T) {
	assert.True(t, Equal(Trunc(FromFloat64(2.9)), FromFloat64(2)))
	assert.True(t, Equal(Trunc(FromFloat64(-2.9)), FromFloat64(-2)))
}

func TestFractionVariants(t *testing.T) {
	x := FromFloat64(-2.25)
	assert.InDelta(t, -0.25, Fraction(x).Hi(), 1e-12)
	assert.InDelta(t, 0.75, FFraction(x).Hi(), 1e-12)
}

func TestModAndDivRem(t *testing.T) {
	x := FromFloat64(10)
	y := FromFloat64(3)
	q, r := DivRem(x, y)
	assert.True(t, Equal(q, FromFloat64(3)))
	assert.InDelta(t, 1.0, r.Hi(), 1e-12)
	assert.True(t, Equal(Mod(x, y), r))
}

func TestRoundToPrec(t *testing.T) {
	x, err := Parse("3.14159265")
	assert.NoError(t, err)
	r := RoundToPrec(x, 2)
	assert.InDelta(t, 3.14, r.Hi(), 1e-12)
}

func TestRoundToPrecBounds(t *testing.T) {
	x := FromFloat64(1.5)
	assert.True(t, Equal(RoundToPrec(x, 0), FromFloat64(2)))
	assert.True(t, Equal(RoundToPrec(x, MaxPrecision+5), x))
}
