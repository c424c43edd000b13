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

// FileCommand estimates from a circuit file.
var FileCommand = cli.Command{
	Action:    fileAction,
	Name:      "file",
	Usage:     "estimate physical resources by counting a circuit file",
	ArgsUsage: "<circuit file>",
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
The file command requires one argument: <circuit file>

The circuit is executed against a counting backend; its logical qubit and
gate tallies drive the estimation.`,
}

// fileAction counts the circuit file and estimates from the tallies.
func fileAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.FileArg)
	if err != nil {
		return err
	}
	counts, err := counter.FromFile(cfg.CircuitFile)
	if err != nil {
		return err
	}
	return runEstimation(cfg, counts)
}
