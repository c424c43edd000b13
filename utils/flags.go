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

package utils

import "github.com/urfave/cli/v2"

var (
	// ErrorTotalFlag sets the overall failure probability budget; it is split
	// evenly between the logical computation and the magic-state factories.
	ErrorTotalFlag = cli.Float64Flag{
		Name:  "error-total",
		Usage: "overall failure probability budget, split evenly between computation and factories",
		Value: 0.333,
	}
	// ErrorBudgetFlag sets the three budgets explicitly.
	ErrorBudgetFlag = cli.Float64SliceFlag{
		Name:  "error-budget",
		Usage: "explicit failure probability budgets as \"logical,magic,rotation\"; mutually exclusive with --error-total",
	}
	// FrontierFlag requests the exploration of the qubit/runtime trade-off
	// instead of the single best estimate.
	FrontierFlag = cli.BoolFlag{
		Name:  "frontier",
		Usage: "explore the qubit/runtime trade-off and report all non-dominated estimates",
	}
	// OutputFlag redirects the textual report into a file.
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the report to this file instead of stdout",
	}
	// EstimateDbFlag selects a database file to record the estimates in.
	EstimateDbFlag = cli.StringFlag{
		Name:  "estimate-db",
		Usage: "record the produced estimates in this sqlite3 database",
	}
	// ChartFlag selects an output file for the trade-off chart.
	ChartFlag = cli.StringFlag{
		Name:  "chart",
		Usage: "render the estimates as an html scatter chart into this file",
	}
	// BitSizeFlag sets the elliptic curve key size.
	BitSizeFlag = cli.Uint64Flag{
		Name:  "bit-size",
		Usage: "key size of the elliptic curve discrete logarithm computation",
		Value: 256,
	}
	// WindowSizeFlag sets the window size of the modular arithmetic.
	WindowSizeFlag = cli.Uint64Flag{
		Name:  "window-size",
		Usage: "window size of the windowed modular arithmetic",
		Value: 18,
	}
)
