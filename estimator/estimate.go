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

package estimator

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/qcatlabs/catres/qubit"
)

// maxCycleAdjustments bounds the runtime-stretching fixpoint: every
// adjustment grows the cycle count, so in practice one or two rounds
// suffice.
const maxCycleAdjustments = 32

// Estimation combines the capability implementations of one estimation run.
// All fields are read-only once the estimation is constructed; Estimate and
// BuildFrontier may be called repeatedly and concurrently.
type Estimation struct {
	ftp      ErrorCorrection
	qubit    *qubit.CatQubit
	builder  FactoryBuilder
	overhead Overhead
	budget   *ErrorBudget
}

// NewEstimation creates an estimation run over a code model, a physical
// qubit model, a factory builder, a frozen logical overhead, and an error
// budget.
func NewEstimation(ftp ErrorCorrection, q *qubit.CatQubit, builder FactoryBuilder, overhead Overhead, budget *ErrorBudget) *Estimation {
	return &Estimation{
		ftp:      ftp,
		qubit:    q,
		builder:  builder,
		overhead: overhead,
		budget:   budget,
	}
}

// Estimate finds the configuration of fewest physical qubits meeting the
// error budget at the shortest runtime the overhead allows.
func (e *Estimation) Estimate() (*Result, error) {
	return e.estimate(0)
}

// estimate computes a full estimate. A maxCopies above zero caps the number
// of parallel factory copies, stretching the runtime instead.
func (e *Estimation) estimate(maxCopies uint64) (*Result, error) {
	logicalQubits := e.overhead.LogicalQubits()
	if logicalQubits == 0 {
		return nil, errors.New("the algorithm requires no logical qubits; nothing to estimate")
	}
	minCycles := e.overhead.LogicalDepth(e.budget)
	if minCycles == 0 {
		minCycles = 1
	}
	magicStates := e.overhead.NumMagicStates(e.budget, 0)

	// Stretching the runtime to accommodate slow factories lowers the
	// admissible per-cycle error rate, which may change the code parameter
	// and with it the cycle time; iterate until the cycle count is stable.
	numCycles := minCycles
	for i := 0; i < maxCycleAdjustments; i++ {
		requiredRate := e.budget.Logical() / (float64(logicalQubits) * float64(numCycles))
		parameter, err := e.ftp.ComputeCodeParameter(e.qubit, requiredRate)
		if err != nil {
			return nil, err
		}
		patch, err := NewLogicalPatch(e.ftp, e.qubit, parameter)
		if err != nil {
			return nil, err
		}
		if magicStates == 0 {
			return NewResult(patch, nil, e.overhead, numCycles, 0), nil
		}

		perState := e.budget.Magic() / float64(magicStates)
		factories, err := e.builder.FindFactories(perState)
		if err != nil {
			return nil, err
		}
		if len(factories) == 0 {
			return nil, errors.Newf("no factory reaches the required error probability (%v)", perState)
		}
		runtime := numCycles * patch.LogicalCycleTime()
		part, neededCycles := selectFactoryPart(factories, magicStates, runtime, patch.LogicalCycleTime(), maxCopies, perState)
		if part != nil {
			return NewResult(patch, part, e.overhead, numCycles, magicStates), nil
		}
		if neededCycles <= numCycles {
			neededCycles = numCycles + 1
		}
		numCycles = neededCycles
	}
	return nil, errors.New("estimation did not converge while stretching the runtime")
}

// BuildFrontier explores the qubit/runtime trade-off: starting from the
// unconstrained optimum, the factory-copy budget is swept geometrically
// down to a single copy, and the non-dominated configurations are kept.
func (e *Estimation) BuildFrontier() ([]*Result, error) {
	best, err := e.Estimate()
	if err != nil {
		return nil, err
	}
	part := best.FactoryPart()
	if part == nil || part.Copies() <= 1 {
		return []*Result{best}, nil
	}
	results := []*Result{best}
	for copies := uint64(1); copies < part.Copies(); copies *= 2 {
		r, err := e.estimate(copies)
		if err != nil {
			// an extreme runtime stretch can push the required logical
			// error rate below what the code achieves; such configurations
			// are simply absent from the frontier
			continue
		}
		results = append(results, r)
	}
	return frontier(results), nil
}

// selectFactoryPart picks, among the candidates sorted by resource cost,
// the configuration of fewest physical qubits that delivers the magic
// states within the runtime. When no candidate fits, it returns a nil part
// and the smallest cycle count that would fit the fastest candidate.
func selectFactoryPart(factories []Factory, magicStates, runtime, cycleTime, maxCopies uint64, requiredRate float64) (*FactoryPart, uint64) {
	var best *FactoryPart
	var bestCost uint64
	var neededCycles uint64
	for _, f := range factories {
		runs := ceilDiv(magicStates, f.NumOutputStates())
		copies := copiesFor(runs, f.Duration(), runtime, maxCopies)
		batches := ceilDiv(runs, copies)
		if batches*f.Duration() > runtime {
			cycles := ceilDiv(batches*f.Duration(), cycleTime)
			if neededCycles == 0 || cycles < neededCycles {
				neededCycles = cycles
			}
			continue
		}
		cost := copies * f.PhysicalQubits()
		if best == nil || cost < bestCost {
			best = NewFactoryPart(f, copies, requiredRate)
			bestCost = cost
		}
	}
	return best, neededCycles
}

// copiesFor returns the number of parallel factory copies needed to run the
// given number of preparations within the runtime, honoring the copy cap.
func copiesFor(runs, duration, runtime, maxCopies uint64) uint64 {
	if duration == 0 {
		return 1
	}
	if runtime == 0 {
		runtime = 1
	}
	copies := ceilDiv(runs*duration, runtime)
	if copies == 0 {
		copies = 1
	}
	// the ceiling of runs/copies can overshoot the runtime by a fraction of
	// one batch; add copies until the batches fit or no copy can help
	for ceilDiv(runs, copies)*duration > runtime &&
		copies < runs && (maxCopies == 0 || copies < maxCopies) {
		copies++
	}
	if maxCopies > 0 && copies > maxCopies {
		copies = maxCopies
	}
	return copies
}

// frontier keeps the non-dominated (physical qubits, runtime) points,
// ascending by qubit count.
func frontier(results []*Result) []*Result {
	sort.Slice(results, func(i, j int) bool {
		if results[i].PhysicalQubits() != results[j].PhysicalQubits() {
			return results[i].PhysicalQubits() < results[j].PhysicalQubits()
		}
		return results[i].Runtime() < results[j].Runtime()
	})
	var front []*Result
	bestRuntime := uint64(math.MaxUint64)
	for _, r := range results {
		if r.Runtime() < bestRuntime {
			front = append(front, r)
			bestRuntime = r.Runtime()
		}
	}
	return front
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
