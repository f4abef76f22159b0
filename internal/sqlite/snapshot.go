// Package sqlite exports canonical record snapshots to an embedded SQLite
// database, so the joined table can be queried with plain SQL outside the
// dashboard process.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
)

// DBFileName is the database file created under the data directory.
const DBFileName = "mortalidad.db"

// Schema DDL. Each export appends one snapshots row and its records; the
// file accumulates snapshots across runs.
const (
	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    department_filter TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createRecords = `CREATE TABLE IF NOT EXISTS records (
    snapshot_id TEXT NOT NULL,
    department_code TEXT NOT NULL,
    municipality_code TEXT NOT NULL,
    month INTEGER NOT NULL,
    sex TEXT NOT NULL,
    age_group_code TEXT NOT NULL,
    cause_code TEXT NOT NULL,
    department_name TEXT NOT NULL,
    municipality_name TEXT NOT NULL,
    cause_name TEXT NOT NULL,
    age_group_label TEXT NOT NULL,
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`
)

const insertRecord = `INSERT INTO records (
    snapshot_id, department_code, municipality_code, month, sex,
    age_group_code, cause_code, department_name, municipality_name,
    cause_name, age_group_label
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Export writes records into DBFileName under dataDir and returns the
// generated snapshot ID. The departmentFilter is recorded as provenance:
// the filter that produced this record set. Insertion is transactional;
// the snapshot either lands complete or not at all.
func Export(dataDir, departmentFilter string, records []pipeline.Record) (string, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	for _, ddl := range []string{createSnapshots, createRecords} {
		if _, err := db.Exec(ddl); err != nil {
			return "", fmt.Errorf("apply schema: %w", err)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate snapshot id: %w", err)
	}
	snapshotID := id.String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO snapshots (snapshot_id, department_filter, record_count, created_at) VALUES (?, ?, ?, ?)`,
		snapshotID, departmentFilter, len(records), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.Prepare(insertRecord)
	if err != nil {
		return "", fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.Exec(
			snapshotID, rec.DepartmentCode, rec.MunicipalityCode, rec.Month, rec.Sex,
			rec.AgeGroupCode, rec.CauseCode, rec.DepartmentName, rec.MunicipalityName,
			rec.CauseName, rec.AgeGroupLabel,
		)
		if err != nil {
			return "", fmt.Errorf("insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return snapshotID, nil
}
