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

// Package utils holds the configuration layer shared by the estimator
// commands.
package utils

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/qcatlabs/catres/logger"
)

// ArgumentMode determines the positional arguments a command expects.
type ArgumentMode int

const (
	// ResourceArgs expects three positional arguments: the logical qubit,
	// CX-gate and Toffoli-gate tallies.
	ResourceArgs ArgumentMode = iota
	// FileArg expects one positional argument, the circuit file to count.
	FileArg
	// NoArgs expects no positional arguments.
	NoArgs
)

// Config is the parsed run configuration of an estimator command.
type Config struct {
	AppName     string
	CommandName string

	// logical resource tallies (ResourceArgs mode)
	QubitCount uint64
	CXCount    uint64
	CCXCount   uint64

	// circuit file (FileArg mode)
	CircuitFile string

	// elliptic curve parameters (NoArgs mode with the ecc command)
	BitSize    uint64
	WindowSize uint64

	// failure probability budgets
	ErrorLogical  float64
	ErrorMagic    float64
	ErrorRotation float64

	Frontier   bool
	Output     string
	EstimateDb string
	Chart      string
	LogLevel   string
}

// NewConfig parses the run configuration from the flags and positional
// arguments of the cli context.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,
		BitSize:     ctx.Uint64(BitSizeFlag.Name),
		WindowSize:  ctx.Uint64(WindowSizeFlag.Name),
		Frontier:    ctx.Bool(FrontierFlag.Name),
		Output:      ctx.String(OutputFlag.Name),
		EstimateDb:  ctx.String(EstimateDbFlag.Name),
		Chart:       ctx.String(ChartFlag.Name),
		LogLevel:    ctx.String(logger.LogLevelFlag.Name),
	}

	if err := setErrorBudget(cfg, ctx); err != nil {
		return nil, err
	}
	if err := setArguments(cfg, ctx, mode); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setErrorBudget derives the failure probability budgets, either from the
// explicit triple or by splitting the total evenly between the logical
// computation and the factories. The magic and rotation budgets may be zero;
// a circuit without Toffoli gates never consumes the magic budget, and the
// cat architecture does not synthesize rotations at all.
func setErrorBudget(cfg *Config, ctx *cli.Context) error {
	if ctx.IsSet(ErrorBudgetFlag.Name) && ctx.IsSet(ErrorTotalFlag.Name) {
		return errors.Newf("flags --%v and --%v are mutually exclusive", ErrorBudgetFlag.Name, ErrorTotalFlag.Name)
	}
	if ctx.IsSet(ErrorBudgetFlag.Name) {
		budgets := ctx.Float64Slice(ErrorBudgetFlag.Name)
		if len(budgets) != 3 {
			return errors.Newf("flag --%v needs exactly three values (logical, magic, rotation); got %v", ErrorBudgetFlag.Name, len(budgets))
		}
		cfg.ErrorLogical = budgets[0]
		cfg.ErrorMagic = budgets[1]
		cfg.ErrorRotation = budgets[2]
	} else {
		total := ctx.Float64(ErrorTotalFlag.Name)
		cfg.ErrorLogical = total / 2
		cfg.ErrorMagic = total / 2
	}
	if cfg.ErrorLogical <= 0 {
		return errors.New("the logical failure probability budget must be positive")
	}
	if cfg.ErrorMagic < 0 || cfg.ErrorRotation < 0 {
		return errors.New("the failure probability budgets must not be negative")
	}
	if cfg.ErrorLogical+cfg.ErrorMagic+cfg.ErrorRotation >= 1 {
		return errors.New("the failure probability budgets must sum to less than one")
	}
	return nil
}

// setArguments parses the positional arguments of the given mode.
func setArguments(cfg *Config, ctx *cli.Context, mode ArgumentMode) error {
	switch mode {
	case ResourceArgs:
		if ctx.Args().Len() != 3 {
			return errors.Newf("command %q expects three arguments: <qubits> <cx> <ccx>", cfg.CommandName)
		}
		tallies := make([]uint64, 3)
		for i := range tallies {
			value, err := strconv.ParseUint(ctx.Args().Get(i), 10, 64)
			if err != nil {
				return errors.Wrapf(err, "cannot parse resource tally %q", ctx.Args().Get(i))
			}
			tallies[i] = value
		}
		cfg.QubitCount, cfg.CXCount, cfg.CCXCount = tallies[0], tallies[1], tallies[2]
	case FileArg:
		if ctx.Args().Len() != 1 {
			return errors.Newf("command %q expects one argument: <circuit file>", cfg.CommandName)
		}
		cfg.CircuitFile = ctx.Args().Get(0)
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return errors.Newf("command %q expects no arguments", cfg.CommandName)
		}
	default:
		return errors.Newf("unknown argument mode %v", mode)
	}
	return nil
}
