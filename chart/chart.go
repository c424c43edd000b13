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

// Package chart renders estimation results as an html scatter chart of the
// qubit/runtime trade-off.
package chart

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/qcatlabs/catres/estimates"
	"github.com/qcatlabs/catres/estimator"
)

// convertFrontierData converts composed estimates to chart points,
// runtime in hours on the x-axis and physical qubits on the y-axis.
func convertFrontierData(results []*estimator.Result) []opts.ScatterData {
	items := []opts.ScatterData{}
	for _, r := range results {
		e := estimates.New(r)
		items = append(items, opts.ScatterData{
			Value:      [2]float64{e.RuntimeHours(), float64(e.PhysicalQubits())},
			SymbolSize: 10,
		})
	}
	return items
}

// newFrontierChart creates a scatter chart for the qubit/runtime trade-off.
func newFrontierChart(results []*estimator.Result) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Qubit/Runtime Trade-Off",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "runtime (hrs)",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "physical qubits",
			Type: "value",
		}))
	scatter.AddSeries("Estimates", convertFrontierData(results))

	return scatter
}

// RenderFrontier writes the trade-off chart of the given results into an
// html file.
func RenderFrontier(results []*estimator.Result, filepath string) error {
	if len(results) == 0 {
		return errors.New("no results to render")
	}
	file, err := os.Create(filepath)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %v", filepath)
	}
	defer file.Close()
	if err := newFrontierChart(results).Render(file); err != nil {
		return errors.Wrapf(err, "cannot render chart to %v", filepath)
	}
	return nil
}
