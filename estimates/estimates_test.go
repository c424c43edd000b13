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

package estimates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcatlabs/catres/code"
	"github.com/qcatlabs/catres/counter"
	"github.com/qcatlabs/catres/estimator"
	"github.com/qcatlabs/catres/factory"
	"github.com/qcatlabs/catres/qubit"
)

// fixedEstimate builds a result with hand-picked components, so the
// composition arithmetic can be checked exactly:
// 9 logical qubits on d=3 patches (5 physical qubits, 1500 ns cycles) and
// 2 factory copies of 25 physical qubits each.
func fixedEstimate(t *testing.T) *CatEstimates {
	t.Helper()
	overhead := counter.New(5, 10, 2)
	parameter := code.Parameter{Distance: 3, MeanPhotons: 4}
	patch, err := estimator.NewLogicalPatch(code.New(), qubit.New(), parameter)
	require.NoError(t, err)
	f := factory.NewTestFactory(3, 4.0, 1e-6, 1.0, 10)
	part := estimator.NewFactoryPart(f, 2, 1e-6)
	return New(estimator.NewResult(patch, part, overhead, 100, 2))
}

func TestCatEstimates_PhysicalQubitsIncludeVerticalRouting(t *testing.T) {
	e := fixedEstimate(t)
	// compute region 9 * 5, factories 2 * 25, routing 2*(3*(9+2*5)-1)
	assert.Equal(t, uint64(95), e.Result.PhysicalQubits())
	assert.Equal(t, uint64(95+112), e.PhysicalQubits())
}

func TestCatEstimates_FactoryFractionIsRelativeToTheRoutedTotal(t *testing.T) {
	e := fixedEstimate(t)
	assert.InDelta(t, 50.0/207.0*100.0, e.FactoryFraction(), 1e-9)
}

func TestCatEstimates_RuntimeIsReportedInHours(t *testing.T) {
	e := fixedEstimate(t)
	assert.Equal(t, uint64(150000), e.Runtime())
	assert.InDelta(t, 150000.0/1e9/3600.0, e.RuntimeHours(), 1e-18)
}

func TestCatEstimates_TotalErrorAddsLogicalAndMagicContributions(t *testing.T) {
	e := fixedEstimate(t)
	logical := float64(100*9) * e.LogicalPatch().LogicalErrorRate()
	assert.InDelta(t, logical+2*1e-6, e.TotalError(), 1e-12)
}

func TestCatEstimates_NoFactoryPartMeansZeroFactories(t *testing.T) {
	overhead := counter.New(5, 10, 0)
	patch, err := estimator.NewLogicalPatch(code.New(), qubit.New(), code.Parameter{Distance: 3, MeanPhotons: 4})
	require.NoError(t, err)
	e := New(estimator.NewResult(patch, nil, overhead, 100, 0))
	assert.Equal(t, uint64(0), e.NumFactories())
	assert.Equal(t, 0.0, e.FactoryFraction())
	// routing collapses to 2*(3*9-1)
	assert.Equal(t, e.Result.PhysicalQubits()+52, e.PhysicalQubits())
}

func TestCatEstimates_ReportHasTheFixedLayout(t *testing.T) {
	report := fixedEstimate(t).String()
	assert.Contains(t, report, "#physical qubits:    207")
	assert.Contains(t, report, "runtime:             0.00 hrs")
	assert.Contains(t, report, "code distance:       3 (|ɑ|² = 4)")
	assert.Contains(t, report, "#factories:          2")
	assert.Contains(t, report, "factory fraction:    24.15%")
	assert.Contains(t, report, "─────────────────────────────")
}

func TestCatEstimates_EllipticCurve256EndToEnd(t *testing.T) {
	counts, err := counter.EllipticCurveLogCounts(256, 18)
	require.NoError(t, err)
	budget := estimator.NewErrorBudget(0.333*0.5, 0.333*0.5, 0.0)
	estimation := estimator.NewEstimation(code.New(), qubit.New(), factory.NewToffoliBuilder(), counts, budget)

	result, err := estimation.Estimate()
	require.NoError(t, err)
	e := New(result)

	assert.Greater(t, e.PhysicalQubits(), uint64(0))
	assert.Less(t, e.TotalError(), 0.333, "the estimate must meet the requested budget")
	assert.Greater(t, e.NumFactories(), uint64(0))
	assert.Greater(t, e.RuntimeHours(), 0.0)
}

func TestFrontierTable_RendersOneRowPerResult(t *testing.T) {
	counts, err := counter.EllipticCurveLogCounts(256, 18)
	require.NoError(t, err)
	budget := estimator.NewErrorBudget(0.333*0.5, 0.333*0.5, 0.0)
	estimation := estimator.NewEstimation(code.New(), qubit.New(), factory.NewToffoliBuilder(), counts, budget)

	results, err := estimation.BuildFrontier()
	require.NoError(t, err)
	require.NotEmpty(t, results)

	rendered := FrontierTable(results)
	assert.Contains(t, rendered, "#PHYSICAL QUBITS")
	assert.Contains(t, rendered, "RUNTIME (HRS)")
}
