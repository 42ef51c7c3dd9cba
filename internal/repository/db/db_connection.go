package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens the SQLite run store and ensures tables exist. The default DSN
// is an in-memory database, so nothing outlives the process.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}

	// A single connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

const (
	sqliteDriverName = "sqlite"

	// MemoryDSN is a private in-memory database.
	MemoryDSN = ":memory:"
)

const schemaSnapshot = `
CREATE TABLE IF NOT EXISTS thermostat_snapshot (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    run_id TEXT NOT NULL,
    taken_at TEXT NOT NULL,
    payload TEXT NOT NULL
);
`

const schemaDiagnostics = `
CREATE TABLE IF NOT EXISTS aggregation_diagnostics (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    occurred_at TEXT NOT NULL,
    stage TEXT NOT NULL,
    hardware_id INTEGER NOT NULL,
    hardware_name TEXT NOT NULL,
    message TEXT NOT NULL,
    dropped BOOLEAN NOT NULL
);
`

const indexDiagnostics = `
CREATE INDEX IF NOT EXISTS idx_diagnostics_occurred_at ON aggregation_diagnostics (occurred_at);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaSnapshot,
		schemaDiagnostics,
		indexDiagnostics,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
