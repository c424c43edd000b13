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

// EccCommand estimates the elliptic curve discrete logarithm computation.
var EccCommand = cli.Command{
	Action: eccAction,
	Name:   "ecc",
	Usage:  "estimate physical resources of the elliptic curve discrete logarithm computation",
	Flags: []cli.Flag{
		&utils.BitSizeFlag,
		&utils.WindowSizeFlag,
		&utils.ErrorTotalFlag,
		&utils.ErrorBudgetFlag,
		&utils.FrontierFlag,
		&utils.OutputFlag,
		&utils.EstimateDbFlag,
		&utils.ChartFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The ecc command derives the logical resource tallies of Shor's algorithm for
the elliptic curve discrete logarithm from the key size and the window size
of the modular arithmetic (arXiv:2302.06639).`,
}

// eccAction derives the tallies from the key size and estimates from them.
func eccAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	counts, err := counter.EllipticCurveLogCounts(cfg.BitSize, cfg.WindowSize)
	if err != nil {
		return err
	}
	return runEstimation(cfg, counts)
}
