package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"svt_viewer/internal/models"
	"svt_viewer/internal/repository"
)

// DiagnosticFilter selects diagnostics by time range, stage and run.
type DiagnosticFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Stage string    // "", CHANNELS, INDOOR, OUTDOOR, HEATER, SETPOINT
	RunID string
}

var ErrInvalidTimeRange = errors.New("invalid time range: From must be <= To")

type DiagnosticsService struct {
	repo repository.DiagnosticRepo
}

func NewDiagnosticsService(repo repository.DiagnosticRepo) *DiagnosticsService {
	return &DiagnosticsService{repo: repo}
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeFilter(f DiagnosticFilter) (repository.DiagnosticQuery, error) {
	q := repository.DiagnosticQuery{
		From:  normalizeToUTC(f.From),
		To:    normalizeToUTC(f.To),
		Stage: strings.ToUpper(strings.TrimSpace(f.Stage)),
		RunID: strings.TrimSpace(f.RunID),
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.DiagnosticQuery{}, ErrInvalidTimeRange
	}
	return q, nil
}

func (s *DiagnosticsService) List(ctx context.Context, f DiagnosticFilter) ([]models.Diagnostic, error) {
	q, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}
