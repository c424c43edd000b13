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

// Package estimates composes raw estimation results into the final,
// architecture-level figures: total physical qubits including vertical
// routing, the factory-qubit fraction, and the total failure probability.
package estimates

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/qcatlabs/catres/estimator"
)

// verticalRoutingFactoryWeight is the per-factory multiplier of the vertical
// routing-qubit formula; it reflects the columns a factory occupies in the
// all-to-all routing layout.
const verticalRoutingFactoryWeight = 5

const separator = "─────────────────────────────"

// CatEstimates is a read-only view over an estimation result that adds the
// cat architecture's routing-qubit overhead and error-composition rules.
type CatEstimates struct {
	*estimator.Result
}

// New wraps an estimation result.
func New(result *estimator.Result) *CatEstimates {
	return &CatEstimates{Result: result}
}

// NumFactories returns the number of parallel Toffoli factory copies.
func (e *CatEstimates) NumFactories() uint64 {
	part := e.FactoryPart()
	if part == nil {
		return 0
	}
	return part.Copies()
}

// PhysicalQubits returns the total physical qubit count, including the
// vertical routing qubits that provide all-to-all connectivity across the
// compute and factory regions.
func (e *CatEstimates) PhysicalQubits() uint64 {
	logicalQubits := e.LayoutOverhead().LogicalQubits()
	additionalRoutingQubits := 2 * (3*(logicalQubits+e.NumFactories()*verticalRoutingFactoryWeight) - 1)
	return e.Result.PhysicalQubits() + additionalRoutingQubits
}

// FactoryFraction returns the percentage of physical qubits allocated to the
// magic-state factories.
func (e *CatEstimates) FactoryFraction() float64 {
	return float64(e.PhysicalQubitsForFactories()) / float64(e.PhysicalQubits()) * 100.0
}

// RuntimeHours returns the total runtime in hours.
func (e *CatEstimates) RuntimeHours() float64 {
	return float64(e.Runtime()) / 1e9 / 3600.0
}

// TotalError returns the total failure probability, the logical contribution
// plus the magic-state contribution. The cross term is sub-leading here, and
// negative anyway, so it is dropped.
func (e *CatEstimates) TotalError() float64 {
	logical := float64(e.NumCycles()*e.LayoutOverhead().LogicalQubits()) *
		e.LogicalPatch().LogicalErrorRate()
	magicStates := 0.0
	if part := e.FactoryPart(); part != nil {
		magicStates = float64(e.NumMagicStates()) * part.Factory().ErrorProbability()
	}
	return logical + magicStates
}

// String renders the fixed-width estimation report.
func (e *CatEstimates) String() string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "#physical qubits:    %v\n", e.PhysicalQubits())
	fmt.Fprintf(&b, "runtime:             %.2f hrs\n", e.RuntimeHours())
	fmt.Fprintf(&b, "total error:         %.5f\n", e.TotalError())
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "code distance:       %v\n", e.LogicalPatch().CodeParameter())
	fmt.Fprintf(&b, "#factories:          %v\n", e.NumFactories())
	fmt.Fprintf(&b, "factory fraction:    %.2f%%\n", e.FactoryFraction())
	fmt.Fprintln(&b, separator)
	return b.String()
}

// FrontierTable renders a qubit/runtime trade-off frontier as a table,
// ascending by physical qubit count.
func FrontierTable(results []*estimator.Result) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#physical qubits", "runtime (hrs)", "total error", "code distance", "#factories", "factory fraction"})
	for _, r := range results {
		e := New(r)
		t.AppendRow(table.Row{
			e.PhysicalQubits(),
			fmt.Sprintf("%.2f", e.RuntimeHours()),
			fmt.Sprintf("%.5f", e.TotalError()),
			e.LogicalPatch().CodeParameter().String(),
			e.NumFactories(),
			fmt.Sprintf("%.2f%%", e.FactoryFraction()),
		})
	}
	return t.Render()
}
