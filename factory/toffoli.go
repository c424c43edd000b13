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

// Package factory provides the catalog of Toffoli magic-state factories.
//
// The factories are based on fault-tolerant measurement of stabilizers of
// the Toffoli magic state, as described in arXiv:2302.06639. Their
// performance figures (error and acceptance probabilities, step counts) are
// precomputed outside the estimator (Table III, p. 35) and hard-coded in
// the catalog; the estimator only chooses among them. The precomputation
// assumes 1/κ₂ = 100 ns and κ₁/κ₂ = 1e-5.
package factory

import (
	"fmt"
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/qcatlabs/catres/estimator"
)

const (
	// gateTimeSteps is the adiabatic CNOT gate time in units of 1/(κ₂|α|²).
	// The article quotes 89 (arXiv:2302.06639, p. 32); 89.2 is the
	// unrounded fit and matches the precomputed catalog durations.
	gateTimeSteps = 89.2

	// kappa2Ns is 1/κ₂ in nanoseconds, hard-coded in the catalog
	// precomputation.
	kappa2Ns = 100.0

	// Each factory occupies 4 logical qubits plus one "horizontal" routing
	// qubit (arXiv:2302.06639, p. 27).
	logicalQubitsPerFactory = 4
	routingQubitsPerFactory = 1
)

// ToffoliFactory is one precomputed factory configuration. Its internal
// code distance and photon number are independent of the parameters of the
// main code.
type ToffoliFactory struct {
	codeDistance          uint64
	meanPhotons           float64
	errorProbability      float64
	acceptanceProbability float64
	steps                 uint64
}

// PhysicalQubits returns the number of physical qubits of one factory copy:
// (4 logical + 1 routing qubits) × (2d − 1). The formula is approximate
// when the factory's internal distance differs from the main code distance,
// but the deviation is negligible.
func (f *ToffoliFactory) PhysicalQubits() uint64 {
	return (logicalQubitsPerFactory + routingQubitsPerFactory) * (2*f.codeDistance - 1)
}

// Duration returns the average preparation time of one magic state in
// nanoseconds. The CNOTs are implemented adiabatically with a gate time of
// 89.2/(κ₂|α|²) (arXiv:2302.06639, p. 32), and the factory is heralded, so
// the duration accounts for retries through the acceptance probability.
func (f *ToffoliFactory) Duration() uint64 {
	gateTime := gateTimeSteps * kappa2Ns / f.meanPhotons
	return uint64(math.Round(gateTime * float64(f.steps) / f.acceptanceProbability))
}

// NumOutputStates returns the number of magic states of one preparation.
func (f *ToffoliFactory) NumOutputStates() uint64 {
	return 1
}

// ErrorProbability returns the logical error probability of the prepared
// magic state.
func (f *ToffoliFactory) ErrorProbability() float64 {
	return f.errorProbability
}

// NormalizedVolume is the space-time cost of the factory, physical qubits
// times duration (including retries). It defines the selection order.
func (f *ToffoliFactory) NormalizedVolume() uint64 {
	return f.PhysicalQubits() * f.Duration()
}

func (f *ToffoliFactory) String() string {
	return fmt.Sprintf("%v (|ɑ|² = %v)", f.codeDistance, f.meanPhotons)
}

// ToffoliBuilder owns the factory catalog and selects configurations that
// reach a target error rate. It is immutable after construction; selection
// is pure and safe for concurrent use.
type ToffoliBuilder struct {
	factories              []*ToffoliFactory
	lowestErrorProbability float64
}

// NewToffoliBuilder creates a builder over the precomputed catalog.
func NewToffoliBuilder() *ToffoliBuilder {
	factories := defaultCatalog()
	probabilities := make([]float64, len(factories))
	for i, f := range factories {
		probabilities[i] = f.errorProbability
	}
	return &ToffoliBuilder{
		factories:              factories,
		lowestErrorProbability: floats.Min(probabilities),
	}
}

// FindFactories returns the catalog entries whose error probability does not
// exceed the target, ascending by normalized volume. A target below the
// catalog-wide minimum cannot be met by any configuration and is reported
// as a precondition failure; a target equal to the minimum is accepted.
func (b *ToffoliBuilder) FindFactories(targetErrorRate float64) ([]estimator.Factory, error) {
	if targetErrorRate < b.lowestErrorProbability {
		return nil, errors.Newf(
			"requested error probability (%v) is too low; the catalog minimum is %v",
			targetErrorRate, b.lowestErrorProbability)
	}
	var result []estimator.Factory
	for _, f := range b.factories {
		if f.errorProbability <= targetErrorRate {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].(*ToffoliFactory).NormalizedVolume() < result[j].(*ToffoliFactory).NormalizedVolume()
	})
	return result, nil
}

// NumMagicStateTypes returns the number of magic-state species; only the
// Toffoli state is modeled.
func (b *ToffoliBuilder) NumMagicStateTypes() int {
	return 1
}

// LowestErrorProbability returns the best error probability achievable by
// any catalog entry.
func (b *ToffoliBuilder) LowestErrorProbability() float64 {
	return b.lowestErrorProbability
}
