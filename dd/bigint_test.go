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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromIntSmall(t *testing.T) {
	i := big.NewInt(-12345)
	assert.True(t, Equal(FromInt(i), FromFloat64(-12345)))
}

func TestFromIntLargeExact(t *testing.T) {
	s := "987654321098765432109876543210"
	big32, ok := new(big.Int).SetString(s, 10)
	assert.True(t, ok)
	v := FromInt(big32)
	assert.Equal(t, s, ShowFixed(v, 0, true))
}

func TestFromIntExp(t *testing.T) {
	v := FromIntExp(big.NewInt(5), 3)
	assert.True(t, Equal(v, FromFloat64(5000)))
}

func TestToIntRoundsAndNegates(t *testing.T) {
	assert.Equal(t, big.NewInt(3), ToInt(FromFloat64(2.6)))
	assert.Equal(t, big.NewInt(-3), ToInt(FromFloat64(-2.6)))
	assert.Equal(t, big.NewInt(0), ToInt(NaN))
}

func TestToIntRoundTripsLargeValues(t *testing.T) {
	s := "123456789012345678901234567890"
	want, ok := new(big.Int).SetString(s, 10)
	assert.True(t, ok)
	v := FromInt(want)
	got := ToInt(v)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestScaledBigIntMatchesSchoolbook(t *testing.T) {
	w := big.NewInt(123456789)
	got := scaledBigInt(w, 5)
	want := new(big.Int).Mul(w, big.NewInt(100000))
	assert.Equal(t, 0, want.Cmp(got))
}
