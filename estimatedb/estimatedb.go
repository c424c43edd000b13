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

// Package estimatedb records produced resource estimates in a sqlite3
// database, so runs over many algorithms or budgets can be compared later.
package estimatedb

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	// The sqlite3 driver registers itself with database/sql on import.
	_ "github.com/mattn/go-sqlite3"

	"github.com/qcatlabs/catres/counter"
	"github.com/qcatlabs/catres/estimates"
)

const (
	// bufferSize of the in-memory buffer for estimate records
	bufferSize = 100

	// SQL statement for inserting one estimate record
	insertEstimateSQL = `
INSERT INTO estimate (
	command, qubitCount, cxCount, ccxCount,
	codeDistance, meanPhotons, physicalQubits, runtimeNs, totalError,
	factories, factoryFraction
) VALUES (
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
)
`

	// SQL statement for creating the estimate table
	createSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS estimate (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	createTimestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	command TEXT,
	qubitCount INTEGER,
	cxCount INTEGER,
	ccxCount INTEGER,
	codeDistance INTEGER,
	meanPhotons FLOAT,
	physicalQubits INTEGER,
	runtimeNs INTEGER,
	totalError FLOAT,
	factories INTEGER,
	factoryFraction FLOAT
);
`
)

// Record is one row of the estimate table.
type Record struct {
	Command         string
	QubitCount      uint64
	CXCount         uint64
	CCXCount        uint64
	CodeDistance    uint64
	MeanPhotons     float64
	PhysicalQubits  uint64
	RuntimeNs       uint64
	TotalError      float64
	Factories       uint64
	FactoryFraction float64
}

// NewRecord flattens a composed estimate into a database row.
func NewRecord(command string, counts *counter.LogicalCounts, e *estimates.CatEstimates) Record {
	parameter := e.LogicalPatch().CodeParameter()
	return Record{
		Command:         command,
		QubitCount:      counts.QubitCount(),
		CXCount:         counts.CXCount(),
		CCXCount:        counts.CCXCount(),
		CodeDistance:    parameter.Distance,
		MeanPhotons:     parameter.MeanPhotons,
		PhysicalQubits:  e.PhysicalQubits(),
		RuntimeNs:       e.Runtime(),
		TotalError:      e.TotalError(),
		Factories:       e.NumFactories(),
		FactoryFraction: e.FactoryFraction(),
	}
}

//go:generate mockgen -source estimatedb.go -destination estimatedb_mock.go -package estimatedb
type EstimateDB interface {
	Close() error
	Add(record Record) error
	Flush() error
	DeleteByCommand(command string) (int64, error)
}

// estimateDB is a sqlite3-backed estimate store with a write buffer.
type estimateDB struct {
	sql        *sql.DB
	insertStmt *sql.Stmt
	buffer     []Record
}

// NewEstimateDB opens an estimate database, creating the schema if needed.
func NewEstimateDB(dbFile string) (EstimateDB, error) {
	return newEstimateDB(dbFile)
}

func newEstimateDB(dbFile string) (*estimateDB, error) {
	sqlDB, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %v", dbFile)
	}
	if _, err = sqlDB.Exec(createSQL); err != nil {
		return nil, errors.Wrap(err, "failed to create the estimate schema")
	}
	insertStmt, err := sqlDB.Prepare(insertEstimateSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare the estimate insert statement")
	}
	return &estimateDB{
		sql:        sqlDB,
		insertStmt: insertStmt,
		buffer:     make([]Record, 0, bufferSize),
	}, nil
}

// Close flushes the buffer and closes the database.
func (db *estimateDB) Close() error {
	defer func() {
		db.insertStmt.Close()
		db.sql.Close()
	}()
	return db.Flush()
}

// Add buffers an estimate record, flushing when the buffer is full.
func (db *estimateDB) Add(record Record) error {
	db.buffer = append(db.buffer, record)
	if len(db.buffer) == cap(db.buffer) {
		if err := db.Flush(); err != nil {
			return errors.Wrap(err, "unable to flush estimate records")
		}
	}
	return nil
}

// Flush writes the buffered records in one transaction.
func (db *estimateDB) Flush() error {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	for _, record := range db.buffer {
		_, err := tx.Stmt(db.insertStmt).Exec(
			record.Command,
			int64(record.QubitCount), int64(record.CXCount), int64(record.CCXCount),
			int64(record.CodeDistance), record.MeanPhotons,
			int64(record.PhysicalQubits), int64(record.RuntimeNs), record.TotalError,
			int64(record.Factories), record.FactoryFraction,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	db.buffer = db.buffer[:0]
	return tx.Commit()
}

// DeleteByCommand deletes the records of one command; used prior to
// re-running it.
func (db *estimateDB) DeleteByCommand(command string) (int64, error) {
	res, err := db.sql.Exec("DELETE FROM estimate WHERE command = ?;", command)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
