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

func TestTwoSumExact(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{1.0, 2.0},
		{1e300, -1e300},
		{0.1, 0.2},
		{1.0, math.Pow(2, -60)},
		{-5.5, 5.5},
	}
	for _, c := range cases {
		s, e := twoSum(c.a, c.b)
		assert.Equal(t, c.a+c.b, s)
		// s+e must reconstruct a+b at full precision: check via big-ish
		// math by recomputing with the opposite association.
		assert.InDelta(t, 0.0, (s-c.a-c.b)+e, 1e-300)
	}
}

func TestTwoSumNonFinite(t *testing.T) {
	s, e := twoSum(math.Inf(1), math.Inf(-1))
	assert.True(t, math.IsNaN(s))
	assert.True(t, math.IsNaN(e))
}

func TestQuickTwoSumRequiresOrdering(t *testing.T) {
	s, e := quickTwoSum(5.0, 2.0)
	assert.Equal(t, 7.0, s)
	assert.Equal(t, 0.0, e)
}

func TestSplitReconstructs(t *testing.T) {
	vals := []float64{1.0, 123456789.123456, 1e308, -1e308, 1e-300, math.Pi}
	for _, v := range vals {
		hi, lo := split(v)
		assert.Equal(t, v, hi+lo)
	}
}

func TestTwoProdExact(t *testing.T) {
	a, b := math.Pi, math.E
	p, e := twoProd(a, b)
	assert.Equal(t, a*b, p)
	assert.NotEqual(t, 0.0, e) // pi*e is not exactly representable
}

func TestTwoSqrMatchesTwoProd(t *testing.T) {
	a := 1.0000000000000002
	p1, e1 := twoSqr(a)
	p2, e2 := twoProd(a, a)
	assert.Equal(t, p2, p1)
	assert.InDelta(t, e2, e1, 1e-30)
}
