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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrinters_PrintFansOutToAllSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)
	first.EXPECT().Print().Return(nil)
	second.EXPECT().Print().Return(nil)

	ps := NewPrinters().AddPrinter(first).AddPrinter(second)
	require.NoError(t, ps.Print())
}

func TestPrinters_PrintStopsAtTheFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := NewMockPrinter(ctrl)
	unreached := NewMockPrinter(ctrl)
	failing.EXPECT().Print().Return(errors.New("sink is gone"))

	ps := NewPrinters().AddPrinter(failing).AddPrinter(unreached)
	assert.ErrorContains(t, ps.Print(), "sink is gone")
}

func TestPrinters_CloseReachesAllSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockPrinter(ctrl)
	second := NewMockPrinter(ctrl)
	first.EXPECT().Close()
	second.EXPECT().Close()

	NewPrinters().AddPrinter(first).AddPrinter(second).Close()
}

func TestPrinterToWriter_RendersLazily(t *testing.T) {
	var b strings.Builder
	rendered := false
	p := NewPrinterToWriter(&b, func() string {
		rendered = true
		return "report"
	})
	assert.False(t, rendered, "the report must not be rendered before Print")
	require.NoError(t, p.Print())
	assert.Equal(t, "report\n", b.String())
}

func TestPrinterToFile_AppendsAcrossPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	p := NewPrinterToFile(path, func() string { return "line" })
	require.NoError(t, p.Print())
	require.NoError(t, p.Print())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\nline\n", string(content))
}

func TestPrinters_EmptyFilePathAddsNoSink(t *testing.T) {
	ps := NewPrinters().AddPrinterToFile("", func() string { return "report" })
	require.NoError(t, ps.Print())
}
