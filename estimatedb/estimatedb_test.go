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

package estimatedb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcatlabs/catres/code"
	"github.com/qcatlabs/catres/counter"
	"github.com/qcatlabs/catres/estimates"
	"github.com/qcatlabs/catres/estimator"
	"github.com/qcatlabs/catres/factory"
	"github.com/qcatlabs/catres/qubit"
)

func testRecord(command string) Record {
	return Record{
		Command:         command,
		QubitCount:      5,
		CXCount:         10,
		CCXCount:        2,
		CodeDistance:    13,
		MeanPhotons:     19.1,
		PhysicalQubits:  120000,
		RuntimeNs:       27000000000000,
		TotalError:      0.23,
		Factories:       32,
		FactoryFraction: 6.5,
	}
}

func TestEstimateDB_AddedRecordsSurviveCloseAndReopen(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "estimates.db")

	db, err := NewEstimateDB(dbFile)
	require.NoError(t, err)
	require.NoError(t, db.Add(testRecord("resources")))
	require.NoError(t, db.Add(testRecord("resources")))
	require.NoError(t, db.Close())

	db, err = NewEstimateDB(dbFile)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()
	deleted, err := db.DeleteByCommand("resources")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestEstimateDB_FlushWritesTheWholeRow(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "estimates.db")

	db, err := NewEstimateDB(dbFile)
	require.NoError(t, err)
	require.NoError(t, db.Add(testRecord("file")))
	require.NoError(t, db.Flush())
	require.NoError(t, db.Close())

	conn, err := sql.Open("sqlite3", dbFile)
	require.NoError(t, err)
	defer conn.Close()

	row := conn.QueryRow("SELECT qubitCount, codeDistance, meanPhotons, totalError, factories FROM estimate WHERE command = ?", "file")
	var qubitCount, codeDistance, factories int64
	var meanPhotons, totalError float64
	require.NoError(t, row.Scan(&qubitCount, &codeDistance, &meanPhotons, &totalError, &factories))
	assert.Equal(t, int64(5), qubitCount)
	assert.Equal(t, int64(13), codeDistance)
	assert.InDelta(t, 19.1, meanPhotons, 1e-12)
	assert.InDelta(t, 0.23, totalError, 1e-12)
	assert.Equal(t, int64(32), factories)
}

func TestEstimateDB_DeleteByCommandLeavesOtherCommandsAlone(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "estimates.db")

	db, err := NewEstimateDB(dbFile)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()
	require.NoError(t, db.Add(testRecord("resources")))
	require.NoError(t, db.Add(testRecord("file")))
	require.NoError(t, db.Flush())

	deleted, err := db.DeleteByCommand("resources")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = db.DeleteByCommand("file")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestNewRecord_FlattensAComposedEstimate(t *testing.T) {
	counts := counter.New(5, 10, 2)
	patch, err := estimator.NewLogicalPatch(code.New(), qubit.New(), code.Parameter{Distance: 3, MeanPhotons: 4})
	require.NoError(t, err)
	part := estimator.NewFactoryPart(factory.NewTestFactory(3, 4.0, 1e-6, 1.0, 10), 2, 1e-6)
	e := estimates.New(estimator.NewResult(patch, part, counts, 100, 2))

	record := NewRecord("resources", counts, e)
	assert.Equal(t, "resources", record.Command)
	assert.Equal(t, uint64(5), record.QubitCount)
	assert.Equal(t, uint64(10), record.CXCount)
	assert.Equal(t, uint64(2), record.CCXCount)
	assert.Equal(t, uint64(3), record.CodeDistance)
	assert.InDelta(t, 4.0, record.MeanPhotons, 1e-12)
	assert.Equal(t, e.PhysicalQubits(), record.PhysicalQubits)
	assert.Equal(t, e.Runtime(), record.RuntimeNs)
	assert.Equal(t, uint64(2), record.Factories)
}
