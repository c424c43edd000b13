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

package estimate

import (
	"github.com/urfave/cli/v2"

	"github.com/qcatlabs/catres/counter"
	"github.com/qcatlabs/catres/logger"
	"github.com/qcatlabs/catres/utils"
)

// ResourcesCommand estimates from explicit logical resource tallies.
var ResourcesCommand = cli.Command{
	Action:    resourcesAction,
	Name:      "resources",
	Usage:     "estimate physical resources from logical resource tallies",
	ArgsUsage: "<qubits> <cx> <ccx>",
	Flags: []cli.Flag{
		&utils.ErrorTotalFlag,
		&utils.ErrorBudgetFlag,
		&utils.FrontierFlag,
		&utils.OutputFlag,
		&utils.EstimateDbFlag,
		&utils.ChartFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The resources command requires three arguments:
<qubits> <cx> <ccx>

<qubits> is the logical qubit count of the algorithm, <cx> and <ccx> its
CX-gate and Toffoli-gate tallies.`,
}

// resourcesAction estimates from the tallies given on the command line.
func resourcesAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.ResourceArgs)
	if err != nil {
		return err
	}
	return runEstimation(cfg, counter.New(cfg.QubitCount, cfg.CXCount, cfg.CCXCount))
}
