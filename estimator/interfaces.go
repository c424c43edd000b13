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

// Package estimator searches the code parameter space and the factory
// catalog for the cheapest physical configuration meeting an error budget.
//
// The search depends only on the capability interfaces below; architecture
// specifics (the repetition code model, the Toffoli factory catalog, the
// logical-resource counter) are supplied by their own packages.
package estimator

import (
	"github.com/qcatlabs/catres/code"
	"github.com/qcatlabs/catres/qubit"
)

//go:generate mockgen -source interfaces.go -destination interfaces_mock.go -package estimator

// ErrorCorrection describes an error-correcting code over its parameter
// space. All methods are pure functions of their inputs and safe for
// concurrent use.
type ErrorCorrection interface {
	// CodeParameterRange returns a finite, single-pass enumeration of
	// candidate code parameters, seeded at lowerBound if given.
	CodeParameterRange(lowerBound *code.Parameter) (*code.ParameterRange, error)

	// PhysicalQubits returns the physical qubit count of one logical patch.
	PhysicalQubits(parameter code.Parameter) (uint64, error)

	// LogicalQubits returns the number of logical qubits per patch.
	LogicalQubits(parameter code.Parameter) (uint64, error)

	// LogicalCycleTime returns the duration of one logical cycle in
	// nanoseconds.
	LogicalCycleTime(q *qubit.CatQubit, parameter code.Parameter) (uint64, error)

	// LogicalErrorRate returns the logical error rate per qubit and cycle.
	// It reports an error when an intermediate value is not representable.
	LogicalErrorRate(q *qubit.CatQubit, parameter code.Parameter) (float64, error)

	// CompareCodeParameter orders parameters by resulting configuration
	// size; parameters whose derived quantities cannot be computed compare
	// as equal.
	CompareCodeParameter(q *qubit.CatQubit, p1, p2 code.Parameter) int

	// ComputeCodeParameter finds the smallest-size parameter whose logical
	// error rate does not exceed the required rate.
	ComputeCodeParameter(q *qubit.CatQubit, requiredErrorRate float64) (code.Parameter, error)
}

// Factory is one magic-state factory configuration.
type Factory interface {
	// PhysicalQubits returns the physical qubit count of one factory copy.
	PhysicalQubits() uint64

	// Duration returns the average preparation time of one batch of magic
	// states in nanoseconds, including heralding retries.
	Duration() uint64

	// NumOutputStates returns the number of magic states per preparation.
	NumOutputStates() uint64

	// ErrorProbability returns the error probability of a prepared state.
	ErrorProbability() float64
}

// FactoryBuilder selects factory configurations for a target error rate.
type FactoryBuilder interface {
	// FindFactories returns the configurations whose error probability does
	// not exceed the target, ascending by resource cost. A target below the
	// best achievable error probability is a precondition failure.
	FindFactories(targetErrorRate float64) ([]Factory, error)

	// NumMagicStateTypes returns the number of magic-state species.
	NumMagicStateTypes() int
}

// Overhead is the logical space-time cost of the algorithm under
// estimation, frozen after the initial counting phase.
type Overhead interface {
	// LogicalQubits returns the logical qubit requirement after mapping,
	// including horizontal routing qubits.
	LogicalQubits() uint64

	// LogicalDepth returns the minimum number of logical cycles.
	LogicalDepth(budget *ErrorBudget) uint64

	// NumMagicStates returns the magic-state demand of the given species.
	NumMagicStates(budget *ErrorBudget, index int) uint64
}
