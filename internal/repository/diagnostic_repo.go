package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"svt_viewer/internal/models"

	"github.com/google/uuid"
)

// tsLayout is fixed width so stored UTC timestamps compare correctly as text.
const tsLayout = "2006-01-02 15:04:05.000000000"

func formatTS(t time.Time) string { return t.UTC().Format(tsLayout) }

func parseTS(s string) (time.Time, error) {
	return time.ParseInLocation(tsLayout, s, time.UTC)
}

type DiagnosticSQLite struct {
	db *sql.DB
}

func NewDiagnosticSQLite(db *sql.DB) *DiagnosticSQLite { return &DiagnosticSQLite{db: db} }

const insertDiagnosticSQL = `
		INSERT INTO aggregation_diagnostics (id, run_id, occurred_at, stage, hardware_id, hardware_name, message, dropped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

// Append stores a diagnostic, filling in ID and OccurredAt when empty.
func (r *DiagnosticSQLite) Append(ctx context.Context, d models.Diagnostic) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.OccurredAt.IsZero() {
		d.OccurredAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertDiagnosticSQL,
		d.ID,
		d.RunID,
		formatTS(d.OccurredAt),
		strings.ToUpper(strings.TrimSpace(d.Stage)),
		d.HardwareID,
		d.HardwareName,
		d.Message,
		d.Dropped,
	)
	return err
}

// List returns diagnostics matching q, oldest first.
func (r *DiagnosticSQLite) List(ctx context.Context, q DiagnosticQuery) ([]models.Diagnostic, error) {
	var (
		conds []string
		args  []any
	)
	if !q.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, formatTS(q.From))
	}
	if !q.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, formatTS(q.To))
	}
	if stage := strings.ToUpper(strings.TrimSpace(q.Stage)); stage != "" {
		conds = append(conds, "stage = ?")
		args = append(args, stage)
	}
	if q.RunID != "" {
		conds = append(conds, "run_id = ?")
		args = append(args, q.RunID)
	}

	stmt := `SELECT id, run_id, occurred_at, stage, hardware_id, hardware_name, message, dropped FROM aggregation_diagnostics`
	if len(conds) > 0 {
		stmt += " WHERE " + strings.Join(conds, " AND ")
	}
	stmt += " ORDER BY occurred_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Diagnostic, 0, 32)
	for rows.Next() {
		var (
			d  models.Diagnostic
			ts string
		)
		if err := rows.Scan(&d.ID, &d.RunID, &ts, &d.Stage, &d.HardwareID, &d.HardwareName, &d.Message, &d.Dropped); err != nil {
			return nil, err
		}
		if d.OccurredAt, err = parseTS(ts); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
