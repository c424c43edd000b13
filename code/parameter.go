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
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Parameter holds one repetition-code configuration: the code distance and
// the average photon number |α|² of the cat qubits.
type Parameter struct {
	Distance    uint64
	MeanPhotons float64
}

// NewParameter creates a code parameter from a distance and |α|².
func NewParameter(distance uint64, meanPhotons float64) Parameter {
	return Parameter{Distance: distance, MeanPhotons: meanPhotons}
}

func (p Parameter) String() string {
	return fmt.Sprintf("%v (|ɑ|² = %v)", p.Distance, p.MeanPhotons)
}

// ParameterRange enumerates candidate code parameters: the outer loop walks
// odd distances up to the maximum distance, the inner loop walks integer
// photon numbers up to the maximum photon number. The sequence is finite and
// single-pass; construct a fresh range to iterate again.
type ParameterRange struct {
	distance       uint64
	meanPhotons    uint64
	maxDistance    uint64
	maxMeanPhotons uint64
}

// NewParameterRange creates a parameter enumeration starting at lowerBound,
// or at distance 1 with one photon if no lower bound is given. The photon
// numbers of the lower bound and the maximum must be representable as
// non-negative integers.
func NewParameterRange(lowerBound *Parameter, maxDistance uint64, maxMeanPhotons float64) (*ParameterRange, error) {
	start := Parameter{Distance: 1, MeanPhotons: 1.0}
	if lowerBound != nil {
		start = *lowerBound
	}
	photons, err := photonGridValue(start.MeanPhotons)
	if err != nil {
		return nil, errors.Wrap(err, "invalid lower bound")
	}
	maxPhotons, err := photonGridValue(maxMeanPhotons)
	if err != nil {
		return nil, errors.Wrap(err, "invalid maximum photon number")
	}
	return &ParameterRange{
		distance:       start.Distance,
		meanPhotons:    photons,
		maxDistance:    maxDistance,
		maxMeanPhotons: maxPhotons,
	}, nil
}

// Next produces the next parameter of the enumeration; the second return
// value is false once the range is exhausted.
func (r *ParameterRange) Next() (Parameter, bool) {
	if r.distance > r.maxDistance {
		return Parameter{}, false
	}
	result := Parameter{Distance: r.distance, MeanPhotons: float64(r.meanPhotons)}
	if r.meanPhotons >= r.maxMeanPhotons {
		r.distance += 2
		r.meanPhotons = 1
	} else {
		r.meanPhotons++
	}
	return result, true
}

// photonGridValue narrows a photon number to the integer iteration grid.
func photonGridValue(meanPhotons float64) (uint64, error) {
	if math.IsNaN(meanPhotons) || math.IsInf(meanPhotons, 0) || meanPhotons < 0 {
		return 0, errors.Newf("photon number (%v) cannot be represented on the integer grid", meanPhotons)
	}
	return uint64(meanPhotons), nil
}
