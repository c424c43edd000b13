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
	"github.com/qcatlabs/catres/code"
	"github.com/qcatlabs/catres/qubit"
)

// LogicalPatch is the chosen code configuration for one logical qubit patch
// together with its derived quantities.
type LogicalPatch struct {
	parameter        code.Parameter
	physicalQubits   uint64
	logicalCycleTime uint64
	logicalErrorRate float64
}

// NewLogicalPatch evaluates the code model at the given parameter.
func NewLogicalPatch(ftp ErrorCorrection, q *qubit.CatQubit, parameter code.Parameter) (*LogicalPatch, error) {
	physicalQubits, err := ftp.PhysicalQubits(parameter)
	if err != nil {
		return nil, err
	}
	cycleTime, err := ftp.LogicalCycleTime(q, parameter)
	if err != nil {
		return nil, err
	}
	errorRate, err := ftp.LogicalErrorRate(q, parameter)
	if err != nil {
		return nil, err
	}
	return &LogicalPatch{
		parameter:        parameter,
		physicalQubits:   physicalQubits,
		logicalCycleTime: cycleTime,
		logicalErrorRate: errorRate,
	}, nil
}

// CodeParameter returns the code parameter of the patch.
func (p *LogicalPatch) CodeParameter() code.Parameter {
	return p.parameter
}

// PhysicalQubits returns the physical qubit count of one patch.
func (p *LogicalPatch) PhysicalQubits() uint64 {
	return p.physicalQubits
}

// LogicalCycleTime returns the logical cycle time in nanoseconds.
func (p *LogicalPatch) LogicalCycleTime() uint64 {
	return p.logicalCycleTime
}

// LogicalErrorRate returns the logical error rate per qubit and cycle.
func (p *LogicalPatch) LogicalErrorRate() float64 {
	return p.logicalErrorRate
}

// FactoryPart is the factory configuration chosen for one magic-state
// species: which factory runs, and in how many parallel copies.
type FactoryPart struct {
	factory           Factory
	copies            uint64
	requiredErrorRate float64
}

// NewFactoryPart creates a factory part.
func NewFactoryPart(factory Factory, copies uint64, requiredErrorRate float64) *FactoryPart {
	return &FactoryPart{factory: factory, copies: copies, requiredErrorRate: requiredErrorRate}
}

// Factory returns the chosen factory configuration.
func (p *FactoryPart) Factory() Factory {
	return p.factory
}

// Copies returns the number of parallel factory copies.
func (p *FactoryPart) Copies() uint64 {
	return p.copies
}

// RequiredErrorRate returns the per-state error rate the part was selected
// for.
func (p *FactoryPart) RequiredErrorRate() float64 {
	return p.requiredErrorRate
}

// PhysicalQubits returns the physical qubit count of all copies.
func (p *FactoryPart) PhysicalQubits() uint64 {
	return p.copies * p.factory.PhysicalQubits()
}

// Result is one physical resource estimate: a code configuration, an
// optional factory part, and the cycle count they were derived for.
type Result struct {
	patch          *LogicalPatch
	factoryPart    *FactoryPart
	overhead       Overhead
	numCycles      uint64
	numMagicStates uint64
}

// NewResult assembles an estimation result. The factory part is nil when
// the algorithm needs no magic states.
func NewResult(patch *LogicalPatch, part *FactoryPart, overhead Overhead, numCycles, numMagicStates uint64) *Result {
	return &Result{
		patch:          patch,
		factoryPart:    part,
		overhead:       overhead,
		numCycles:      numCycles,
		numMagicStates: numMagicStates,
	}
}

// LogicalPatch returns the chosen code configuration.
func (r *Result) LogicalPatch() *LogicalPatch {
	return r.patch
}

// FactoryPart returns the chosen factory part, or nil if no magic states
// are needed.
func (r *Result) FactoryPart() *FactoryPart {
	return r.factoryPart
}

// LayoutOverhead returns the logical overhead the estimate was computed
// for.
func (r *Result) LayoutOverhead() Overhead {
	return r.overhead
}

// NumCycles returns the number of logical cycles of the computation.
func (r *Result) NumCycles() uint64 {
	return r.numCycles
}

// NumMagicStates returns the magic-state demand of the computation.
func (r *Result) NumMagicStates() uint64 {
	return r.numMagicStates
}

// Runtime returns the total runtime in nanoseconds.
func (r *Result) Runtime() uint64 {
	return r.numCycles * r.patch.logicalCycleTime
}

// PhysicalQubitsForAlgorithm returns the physical qubits of the compute
// region, logical qubits (with horizontal routing) times patch size.
func (r *Result) PhysicalQubitsForAlgorithm() uint64 {
	return r.overhead.LogicalQubits() * r.patch.physicalQubits
}

// PhysicalQubitsForFactories returns the physical qubits of the factory
// region.
func (r *Result) PhysicalQubitsForFactories() uint64 {
	if r.factoryPart == nil {
		return 0
	}
	return r.factoryPart.PhysicalQubits()
}

// PhysicalQubits returns the physical qubits of compute and factory
// regions. Vertical routing qubits are added by the composition layer on
// top of this figure.
func (r *Result) PhysicalQubits() uint64 {
	return r.PhysicalQubitsForAlgorithm() + r.PhysicalQubitsForFactories()
}
