package export

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/college-select/college-cli/internal/model"
)

// TableName is the SQLite table holding the ranked selection.
const TableName = "college_selection"

const sqliteSchema = `
CREATE TABLE college_selection (
	"row"                   INTEGER PRIMARY KEY,
	run_id                  TEXT NOT NULL,
	id                      TEXT NOT NULL,
	name                    TEXT,
	sector                  TEXT,
	type                    TEXT,
	region                  TEXT,
	department              TEXT,
	town                    TEXT,
	session                 INTEGER,
	enrolled                INTEGER,
	admitted                INTEGER,
	admitted_highest_honors INTEGER,
	success_rate            REAL,
	longitude               REAL,
	latitude                REAL,
	distance_km             REAL,
	honors_rate             REAL,
	distance_rank           REAL,
	department_priority     INTEGER,
	created_at              DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

const sqliteInsert = `
INSERT INTO college_selection (
	"row", run_id, id, name, sector, type, region, department, town, session,
	enrolled, admitted, admitted_highest_honors, success_rate, longitude, latitude,
	distance_km, honors_rate, distance_rank, department_priority
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// WriteSQLite replaces the college_selection table in the database at dsn with
// the ranked results, tagging every row with runID.
func WriteSQLite(ctx context.Context, dsn string, results []model.RankedResult, runID string) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return eris.Wrap(err, "sqlite export: open")
	}
	defer db.Close() //nolint:errcheck

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return eris.Wrapf(err, "sqlite export: exec %s", pragma)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite export: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+TableName); err != nil {
		return eris.Wrap(err, "sqlite export: drop table")
	}
	if _, err := tx.ExecContext(ctx, sqliteSchema); err != nil {
		return eris.Wrap(err, "sqlite export: create table")
	}

	stmt, err := tx.PrepareContext(ctx, sqliteInsert)
	if err != nil {
		return eris.Wrap(err, "sqlite export: prepare insert")
	}
	defer stmt.Close() //nolint:errcheck

	for i, r := range results {
		var lon, lat sql.NullFloat64
		if r.Location != nil {
			lon = sql.NullFloat64{Float64: r.Location.Lon, Valid: true}
			lat = sql.NullFloat64{Float64: r.Location.Lat, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			i, runID, r.ID, r.Name, string(r.Sector), r.Type, r.Region, r.Department, r.Town, r.Session,
			r.Enrolled, r.Admitted, r.AdmittedHonor, r.SuccessRatePct, lon, lat,
			r.DistanceKM, r.HonorsRate, r.DistanceRank, r.DepartmentPriority,
		); err != nil {
			return eris.Wrapf(err, "sqlite export: insert %s", r.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "sqlite export: commit")
	}
	return nil
}
