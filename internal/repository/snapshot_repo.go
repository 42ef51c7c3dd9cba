package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"svt_viewer/internal/models"
)

type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

const (
	snapshotRowID = 1

	upsertSnapshotSQL = `
		INSERT INTO thermostat_snapshot (id, run_id, taken_at, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			run_id=excluded.run_id,
			taken_at=excluded.taken_at,
			payload=excluded.payload
	`

	selectSnapshotSQL = `SELECT payload FROM thermostat_snapshot WHERE id=?`
)

// Save replaces the stored snapshot.
func (r *SnapshotSQLite) Save(ctx context.Context, s models.Snapshot) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL,
		snapshotRowID,
		s.RunID,
		formatTS(s.TakenAt),
		string(payload),
	)
	return err
}

// Load returns the stored snapshot, or a zero Snapshot when none was saved yet.
func (r *SnapshotSQLite) Load(ctx context.Context) (models.Snapshot, error) {
	var payload string
	if err := r.db.QueryRowContext(ctx, selectSnapshotSQL, snapshotRowID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, nil
		}
		return models.Snapshot{}, err
	}
	var s models.Snapshot
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return models.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return s, nil
}
