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

// Package code implements the one-dimensional repetition code used to
// suppress phase-flip errors of cat qubits.
//
// The code and its performance model are described in arXiv:2302.06639.
// Code parameters are the code distance and the average photon number |α|².
//
// Hard-coded values:
//   - 1/κ₂ = 100 ns (sets the gate speed)
//   - (κ₁/κ₂)_th = 0.013 (obtained by circuit-level simulation)
//   - max distance (for iteration) = 49
//   - max |α|² (for iteration) = 30
package code

import (
	"cmp"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/qcatlabs/catres/qubit"
)

const (
	// Threshold is the fault-tolerance threshold (κ₁/κ₂)_th of the
	// repetition code, obtained by circuit-level simulation
	// (arXiv:2302.06639, p. 4, eq. 3 and p. 28, fig. 26). Not tunable.
	Threshold = 0.013

	// MaxDistance and MaxMeanPhotons bound the parameter enumeration.
	MaxDistance    = 49
	MaxMeanPhotons = 30.0

	// phaseFlipPrefactor is the fitted prefactor of the logical phase-flip
	// rate (arXiv:2302.06639, p. 29, fig. 26).
	phaseFlipPrefactor = 5.6e-2

	// photonExponent is the fitted exponent of |α|² in the phase-flip rate.
	photonExponent = 0.86

	// cycleTimeNs is the repetition-code cycle time per unit distance:
	// 5 rounds of 1/κ₂ = 100 ns each (arXiv:2302.06639, p. 28).
	cycleTimeNs = 500
)

// RepetitionCode computes physical qubit counts, cycle times and logical
// error rates of the repetition code over its parameter space.
type RepetitionCode struct {
	threshold float64
}

// New creates a repetition code with the threshold at 0.013.
func New() *RepetitionCode {
	return &RepetitionCode{threshold: Threshold}
}

// CodeParameterRange returns a single-pass enumeration of candidate code
// parameters, seeded at lowerBound if given.
func (c *RepetitionCode) CodeParameterRange(lowerBound *Parameter) (*ParameterRange, error) {
	return NewParameterRange(lowerBound, MaxDistance, MaxMeanPhotons)
}

// PhysicalQubits returns the number of physical qubits of one logical patch,
// 2d − 1 for distance d (arXiv:2302.06639, p. 27).
func (c *RepetitionCode) PhysicalQubits(parameter Parameter) (uint64, error) {
	if parameter.Distance < 1 {
		return 0, errors.Newf("invalid code distance (%v)", parameter.Distance)
	}
	return 2*parameter.Distance - 1, nil
}

// LogicalQubits returns the number of logical qubits per patch; the
// repetition code encodes a single logical qubit.
func (c *RepetitionCode) LogicalQubits(parameter Parameter) (uint64, error) {
	return 1, nil
}

// LogicalCycleTime returns the duration of one logical cycle in nanoseconds:
// d rounds of 5/κ₂ each.
func (c *RepetitionCode) LogicalCycleTime(q *qubit.CatQubit, parameter Parameter) (uint64, error) {
	if parameter.Distance < 1 {
		return 0, errors.Newf("invalid code distance (%v)", parameter.Distance)
	}
	return cycleTimeNs * parameter.Distance, nil
}

// phaseFlipRate is the logical phase-flip probability per cycle
// (arXiv:2302.06639, p. 28, eq. E1 and p. 3, eq. 4).
func (c *RepetitionCode) phaseFlipRate(q *qubit.CatQubit, parameter Parameter) float64 {
	exponent := float64((parameter.Distance + 1) / 2)
	base := math.Pow(parameter.MeanPhotons, photonExponent) * q.LossRatio / c.threshold
	return phaseFlipPrefactor * math.Pow(base, exponent)
}

// bitFlipRate is the logical bit-flip probability per cycle: one term per
// CX gate in a code cycle, with the per-gate probability 0.5·exp(−2|α|²)
// estimated by full process tomography (arXiv:2302.06639, p. 26, eq. D8).
func bitFlipRate(parameter Parameter) float64 {
	ncx := float64(2 * (parameter.Distance - 1))
	pcx := 0.5 * math.Exp(-2*parameter.MeanPhotons)
	return ncx * pcx
}

// LogicalErrorRate returns the logical error rate per qubit and cycle,
// d·(phase-flip + bit-flip) (arXiv:2302.06639, p. 4, eq. 3 in compact form).
// The rate is not monotonic over the (distance, photons) grid: raising the
// distance lowers the phase-flip term but raises the bit-flip term.
func (c *RepetitionCode) LogicalErrorRate(q *qubit.CatQubit, parameter Parameter) (float64, error) {
	if parameter.Distance < 1 {
		return 0, errors.Newf("cannot compute logical failure probability: invalid code distance (%v)", parameter.Distance)
	}
	rate := float64(parameter.Distance) * (c.phaseFlipRate(q, parameter) + bitFlipRate(parameter))
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, errors.New("cannot compute logical failure probability")
	}
	return rate, nil
}

// CompareCodeParameter orders parameters by resulting configuration size:
// physical qubit count first, logical cycle time as tie-break. Parameters
// whose derived quantities cannot be computed compare as equal so that
// search algorithms stay total.
func (c *RepetitionCode) CompareCodeParameter(q *qubit.CatQubit, p1, p2 Parameter) int {
	qubits1, err1 := c.PhysicalQubits(p1)
	time1, err2 := c.LogicalCycleTime(q, p1)
	qubits2, err3 := c.PhysicalQubits(p2)
	time2, err4 := c.LogicalCycleTime(q, p2)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0
	}
	if r := cmp.Compare(qubits1, qubits2); r != 0 {
		return r
	}
	return cmp.Compare(time1, time2)
}

// ComputeCodeParameter finds the smallest-size parameter whose logical error
// rate does not exceed the required rate. The error rate is not monotonic
// over the two-dimensional grid, so the full range is scanned rather than
// stopping at the first acceptable entry.
func (c *RepetitionCode) ComputeCodeParameter(q *qubit.CatQubit, requiredErrorRate float64) (Parameter, error) {
	iter, err := c.CodeParameterRange(nil)
	if err != nil {
		return Parameter{}, err
	}
	var best *Parameter
	for parameter, ok := iter.Next(); ok; parameter, ok = iter.Next() {
		rate, err := c.LogicalErrorRate(q, parameter)
		if err != nil || rate > requiredErrorRate {
			continue
		}
		if best == nil || c.CompareCodeParameter(q, parameter, *best) < 0 {
			p := parameter
			best = &p
		}
	}
	if best == nil {
		return Parameter{}, errors.Newf("no code parameter reaches the required logical error rate (%v)", requiredErrorRate)
	}
	return *best, nil
}
