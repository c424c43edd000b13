// Copyright 2025 QCat Labs
// This file is part of CatRes, a resource estimator for cat-qubit architectures
//
// CatRes is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CatRes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with CatRes. If not, see <http://www.gnu.org/licenses/>.

package code

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterRange_StartsAtDistanceOneWithOnePhoton(t *testing.T) {
	r, err := NewParameterRange(nil, MaxDistance, MaxMeanPhotons)
	require.NoError(t, err)

	first, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, Parameter{Distance: 1, MeanPhotons: 1}, first)
}

func TestParameterRange_WalksPhotonsThenOddDistances(t *testing.T) {
	r, err := NewParameterRange(nil, 5, 2)
	require.NoError(t, err)

	var seen []Parameter
	for p, ok := r.Next(); ok; p, ok = r.Next() {
		seen = append(seen, p)
	}
	assert.Equal(t, []Parameter{
		{Distance: 1, MeanPhotons: 1},
		{Distance: 1, MeanPhotons: 2},
		{Distance: 3, MeanPhotons: 1},
		{Distance: 3, MeanPhotons: 2},
		{Distance: 5, MeanPhotons: 1},
		{Distance: 5, MeanPhotons: 2},
	}, seen)
}

func TestParameterRange_FullGridHas750Entries(t *testing.T) {
	r, err := NewParameterRange(nil, MaxDistance, MaxMeanPhotons)
	require.NoError(t, err)

	count := 0
	for _, ok := r.Next(); ok; _, ok = r.Next() {
		count++
	}
	// 25 odd distances times 30 photon numbers
	assert.Equal(t, 750, count)
}

func TestParameterRange_StartsAtTheLowerBound(t *testing.T) {
	r, err := NewParameterRange(&Parameter{Distance: 13, MeanPhotons: 19}, MaxDistance, MaxMeanPhotons)
	require.NoError(t, err)

	first, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, Parameter{Distance: 13, MeanPhotons: 19}, first)

	second, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, Parameter{Distance: 13, MeanPhotons: 20}, second)
}

func TestParameterRange_RejectsUnrepresentablePhotonNumbers(t *testing.T) {
	_, err := NewParameterRange(&Parameter{Distance: 1, MeanPhotons: math.NaN()}, MaxDistance, MaxMeanPhotons)
	assert.ErrorContains(t, err, "invalid lower bound")

	_, err = NewParameterRange(nil, MaxDistance, math.Inf(1))
	assert.ErrorContains(t, err, "invalid maximum photon number")

	_, err = NewParameterRange(&Parameter{Distance: 1, MeanPhotons: -1}, MaxDistance, MaxMeanPhotons)
	assert.Error(t, err)
}

func TestParameterRange_ExhaustedRangeStaysExhausted(t *testing.T) {
	r, err := NewParameterRange(nil, 1, 1)
	require.NoError(t, err)

	_, ok := r.Next()
	require.True(t, ok)
	_, ok = r.Next()
	assert.False(t, ok)
	_, ok = r.Next()
	assert.False(t, ok)
}

func TestParameter_StringShowsDistanceAndPhotons(t *testing.T) {
	assert.Equal(t, "13 (|ɑ|² = 19.85)", NewParameter(13, 19.85).String())
}
