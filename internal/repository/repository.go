package repository

import (
	"context"
	"database/sql"
	"time"

	"svt_viewer/internal/models"
)

// SnapshotRepo keeps the most recent aggregation snapshot.
type SnapshotRepo interface {
	Save(ctx context.Context, s models.Snapshot) error
	Load(ctx context.Context) (models.Snapshot, error)
}

// DiagnosticRepo is an append-only log of aggregation diagnostics.
type DiagnosticRepo interface {
	Append(ctx context.Context, d models.Diagnostic) error
	List(ctx context.Context, f DiagnosticQuery) ([]models.Diagnostic, error)
}

// DiagnosticQuery filters diagnostics. Zero values mean "no filter".
type DiagnosticQuery struct {
	From  time.Time // inclusive
	To    time.Time // inclusive
	Stage string
	RunID string
}

type Repository struct {
	SnapshotRepo   SnapshotRepo
	DiagnosticRepo DiagnosticRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SnapshotRepo:   NewSnapshotSQLite(db),
		DiagnosticRepo: NewDiagnosticSQLite(db),
	}
}
