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

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/qcatlabs/catres/logger"
)

// prepareMockCliContext parses the given command line into a cli context with
// all estimator flags registered.
func prepareMockCliContext(t *testing.T, arguments ...string) *cli.Context {
	t.Helper()
	flagSet := flag.NewFlagSet("utils_config_test", flag.ContinueOnError)
	for _, f := range []cli.Flag{
		&ErrorTotalFlag,
		&ErrorBudgetFlag,
		&FrontierFlag,
		&OutputFlag,
		&EstimateDbFlag,
		&ChartFlag,
		&BitSizeFlag,
		&WindowSizeFlag,
		&logger.LogLevelFlag,
	} {
		require.NoError(t, f.Apply(flagSet))
	}
	require.NoError(t, flagSet.Parse(arguments))

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	ctx.Command = &cli.Command{Name: "test_command"}
	return ctx
}

func TestUtilsConfig_NewConfigParsesResourceArguments(t *testing.T) {
	ctx := prepareMockCliContext(t, "5", "10", "2")

	cfg, err := NewConfig(ctx, ResourceArgs)
	require.NoError(t, err)
	assert.Equal(t, "test_command", cfg.CommandName)
	assert.Equal(t, uint64(5), cfg.QubitCount)
	assert.Equal(t, uint64(10), cfg.CXCount)
	assert.Equal(t, uint64(2), cfg.CCXCount)
	assert.Equal(t, uint64(256), cfg.BitSize)
	assert.Equal(t, uint64(18), cfg.WindowSize)
}

func TestUtilsConfig_NewConfigSplitsTheTotalBudgetEvenly(t *testing.T) {
	cfg, err := NewConfig(prepareMockCliContext(t, "5", "10", "2"), ResourceArgs)
	require.NoError(t, err)
	assert.InDelta(t, 0.333/2, cfg.ErrorLogical, 1e-12)
	assert.InDelta(t, 0.333/2, cfg.ErrorMagic, 1e-12)
}

func TestUtilsConfig_NewConfigAcceptsAnExplicitBudgetTriple(t *testing.T) {
	ctx := prepareMockCliContext(t, "--error-budget", "0.1,0.15,0.05", "5", "10", "2")

	cfg, err := NewConfig(ctx, ResourceArgs)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cfg.ErrorLogical, 1e-12)
	assert.InDelta(t, 0.15, cfg.ErrorMagic, 1e-12)
	assert.InDelta(t, 0.05, cfg.ErrorRotation, 1e-12)
}

func TestUtilsConfig_NewConfigAcceptsAZeroMagicBudget(t *testing.T) {
	// a circuit without Toffoli gates never consumes the magic budget
	ctx := prepareMockCliContext(t, "--error-budget", "0.1,0,0", "5", "10", "0")

	cfg, err := NewConfig(ctx, ResourceArgs)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cfg.ErrorLogical, 1e-12)
	assert.Zero(t, cfg.ErrorMagic)
	assert.Zero(t, cfg.ErrorRotation)
}

func TestUtilsConfig_NewConfigRejectsConflictingBudgetFlags(t *testing.T) {
	ctx := prepareMockCliContext(t, "--error-total", "0.4", "--error-budget", "0.1,0.2,0", "5", "10", "2")

	_, err := NewConfig(ctx, ResourceArgs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestUtilsConfig_NewConfigValidatesTheBudgets(t *testing.T) {
	tests := map[string][]string{
		"zero total":        {"--error-total", "0", "5", "10", "2"},
		"zero logical":      {"--error-budget", "0,0.1,0", "5", "10", "2"},
		"negative magic":    {"--error-budget", "0.1,-0.2,0", "5", "10", "2"},
		"negative rotation": {"--error-budget", "0.1,0.1,-0.1", "5", "10", "2"},
		"budget too big":    {"--error-budget", "0.6,0.3,0.1", "5", "10", "2"},
		"one value only":    {"--error-budget", "0.1", "5", "10", "2"},
		"two values only":   {"--error-budget", "0.1,0.2", "5", "10", "2"},
	}
	for name, arguments := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewConfig(prepareMockCliContext(t, arguments...), ResourceArgs)
			assert.Error(t, err)
		})
	}
}

func TestUtilsConfig_NewConfigParsesAFileArgument(t *testing.T) {
	cfg, err := NewConfig(prepareMockCliContext(t, "circuit.qasm"), FileArg)
	require.NoError(t, err)
	assert.Equal(t, "circuit.qasm", cfg.CircuitFile)
}

func TestUtilsConfig_NewConfigChecksTheArgumentCount(t *testing.T) {
	tests := map[string]struct {
		mode ArgumentMode
		args []string
	}{
		"too few tallies": {ResourceArgs, []string{"5", "10"}},
		"missing file":    {FileArg, []string{}},
		"unexpected args": {NoArgs, []string{"5"}},
		"malformed tally": {ResourceArgs, []string{"a", "b", "c"}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewConfig(prepareMockCliContext(t, test.args...), test.mode)
			assert.Error(t, err)
		})
	}
}

func TestUtilsConfig_NewConfigForwardsTheOutputFlags(t *testing.T) {
	ctx := prepareMockCliContext(t,
		"--frontier", "--output", "report.txt", "--estimate-db", "est.db", "--chart", "chart.html",
		"5", "10", "2")

	cfg, err := NewConfig(ctx, ResourceArgs)
	require.NoError(t, err)
	assert.True(t, cfg.Frontier)
	assert.Equal(t, "report.txt", cfg.Output)
	assert.Equal(t, "est.db", cfg.EstimateDb)
	assert.Equal(t, "chart.html", cfg.Chart)
}
