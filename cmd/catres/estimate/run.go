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

// Package estimate implements the estimation commands of the catres app.
package estimate

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/qcatlabs/catres/chart"
	"github.com/qcatlabs/catres/code"
	"github.com/qcatlabs/catres/counter"
	"github.com/qcatlabs/catres/estimatedb"
	"github.com/qcatlabs/catres/estimates"
	"github.com/qcatlabs/catres/estimator"
	"github.com/qcatlabs/catres/factory"
	"github.com/qcatlabs/catres/logger"
	"github.com/qcatlabs/catres/qubit"
	"github.com/qcatlabs/catres/utils"
)

// runEstimation estimates the physical resources of the given logical counts
// and emits the reports the configuration asks for.
func runEstimation(cfg *utils.Config, counts *counter.LogicalCounts) error {
	log := logger.NewLogger(cfg.LogLevel, "Estimate")
	start := time.Now()

	log.Infof("estimating resources for %v logical qubits, %v CX and %v Toffoli gates",
		counts.QubitCount(), counts.CXCount(), counts.CCXCount())

	budget := estimator.NewErrorBudget(cfg.ErrorLogical, cfg.ErrorMagic, cfg.ErrorRotation)
	estimation := estimator.NewEstimation(code.New(), qubit.New(), factory.NewToffoliBuilder(), counts, budget)

	results, err := produceResults(cfg, estimation)
	if err != nil {
		return err
	}

	printers := utils.NewPrinters().
		AddPrinterToConsole(func() string { return renderReport(cfg, results) }).
		AddPrinterToFile(cfg.Output, func() string { return renderReport(cfg, results) })
	defer printers.Close()
	if err := printers.Print(); err != nil {
		return err
	}

	if err := recordResults(cfg, counts, results); err != nil {
		return err
	}
	if cfg.Chart != "" {
		if err := chart.RenderFrontier(results, cfg.Chart); err != nil {
			return err
		}
		log.Infof("trade-off chart written to %v", cfg.Chart)
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("produced %v estimate(s) in %vh %vm %vs", len(results), hours, minutes, seconds)
	return nil
}

// produceResults runs the estimation, either for the single best
// configuration or for the whole qubit/runtime trade-off frontier.
func produceResults(cfg *utils.Config, estimation *estimator.Estimation) ([]*estimator.Result, error) {
	if cfg.Frontier {
		return estimation.BuildFrontier()
	}
	result, err := estimation.Estimate()
	if err != nil {
		return nil, err
	}
	return []*estimator.Result{result}, nil
}

// renderReport renders single estimates as the fixed-width report and
// frontiers as a table.
func renderReport(cfg *utils.Config, results []*estimator.Result) string {
	if cfg.Frontier {
		return estimates.FrontierTable(results)
	}
	return estimates.New(results[0]).String()
}

// recordResults replaces the command's rows in the estimate database, if one
// is configured.
func recordResults(cfg *utils.Config, counts *counter.LogicalCounts, results []*estimator.Result) (err error) {
	if cfg.EstimateDb == "" {
		return nil
	}
	db, err := estimatedb.NewEstimateDB(cfg.EstimateDb)
	if err != nil {
		return err
	}
	defer func() {
		if e := db.Close(); e != nil {
			err = errors.CombineErrors(err, e)
		}
	}()
	if _, err := db.DeleteByCommand(cfg.CommandName); err != nil {
		return err
	}
	for _, r := range results {
		if err := db.Add(estimatedb.NewRecord(cfg.CommandName, counts, estimates.New(r))); err != nil {
			return err
		}
	}
	return nil
}
