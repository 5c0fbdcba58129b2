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

func TestSinCosPi(t *testing.T) {
	s, c := SinCos(Pi)
	assert.InDelta(t, 0.0, s.Hi(), 1e-28)
	assert.InDelta(t, -1.0, c.Hi(), 1e-28)
}

func TestSinCosZero(t *testing.T) {
	s, c := SinCos(Zero)
	assert.True(t, s.IsZero())
	assert.True(t, Equal(c, One))
}

func TestSinCosPythagorean(t *testing.T) {
	for _, f := range []float64{0.1, 1.0, 2.5, 10.0, -7.3, 100.123} {
		theta := FromFloat64(f)
		s, c := SinCos(theta)
		sum := Add(Sqr(s), Sqr(c))
		assert.InDelta(t, 1.0, sum.Hi(), 1e-25)
	}
}

func TestSinCosMatchesMath(t *testing.T) {
	for _, f := range []float64{0.3, 1.7, -2.2, 5.9} {
		s, c := SinCos(FromFloat64(f))
		assert.InDelta(t, math.Sin(f), s.Hi(), 1e-12)
		assert.InDelta(t, math.Cos(f), c.Hi(), 1e-12)
	}
}

func TestAtan2ExactAxes(t *testing.T) {
	assert.True(t, Equal(Atan2(Zero, One), Zero))
	assert.True(t, Equal(Atan2(Zero, Neg(One)), Pi))
	assert.True(t, Equal(Atan2(One, Zero), PiHalf))
	assert.True(t, Equal(Atan2(Neg(One), Zero), Neg(PiHalf)))
}

func TestAtan2Diagonals(t *testing.T) {
	one := One
	assert.True(t, Equal(Atan2(one, one), PiQuarter))
	assert.True(t, Equal(Atan2(one, Neg(one)), Pi34))
}

func TestAsinAcosRoundTrip(t *testing.T) {
	x := FromFloat64(0.5)
	assert.InDelta(t, x.Hi(), Sin(Asin(x)).Hi(), 1e-20)
	assert.InDelta(t, x.Hi(), Cos(Acos(x)).Hi(), 1e-20)
}

func TestTanConsistency(t *testing.T) {
	x := FromFloat64(0.4)
	s, c := SinCos(x)
	assert.InDelta(t, Div(s, c).Hi(), Tan(x).Hi(), 1e-20)
}
