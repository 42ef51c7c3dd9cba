package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"svt_viewer/internal/logger"
	"svt_viewer/internal/models"
	"svt_viewer/internal/repository"
)

// ErrThermostatNotFound is returned by Get for an unknown thermostat id.
var ErrThermostatNotFound = errors.New("thermostat not found")

type CatalogService struct {
	agg      Aggregator
	snapshot repository.SnapshotRepo
	diags    repository.DiagnosticRepo
	log      *logger.Logger

	// mu serializes refreshes triggered by the API and the background refresher.
	mu sync.Mutex
}

func NewCatalogService(agg Aggregator, snapshot repository.SnapshotRepo, diags repository.DiagnosticRepo, log *logger.Logger) *CatalogService {
	return &CatalogService{agg: agg, snapshot: snapshot, diags: diags, log: logger.OrNop(log)}
}

// List returns the latest snapshot, running an aggregation first when none exists.
func (s *CatalogService) List(ctx context.Context) (models.Snapshot, error) {
	snap, err := s.snapshot.Load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	if snap.RunID == "" {
		return s.ensureLoaded(ctx)
	}
	return snap, nil
}

// ensureLoaded runs the first aggregation unless another caller stored a
// snapshot while this one waited for the lock.
func (s *CatalogService) ensureLoaded(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshot.Load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	if snap.RunID != "" {
		return snap, nil
	}
	return s.refreshLocked(ctx)
}

// Get returns one thermostat of the latest snapshot.
func (s *CatalogService) Get(ctx context.Context, id int) (models.Thermostat, error) {
	snap, err := s.List(ctx)
	if err != nil {
		return models.Thermostat{}, err
	}
	for _, t := range snap.Thermostats {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Thermostat{}, fmt.Errorf("%w: %d", ErrThermostatNotFound, id)
}

// Refresh aggregates now, stores the snapshot and logs its diagnostics.
// A failed run leaves the previous snapshot in place.
func (s *CatalogService) Refresh(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *CatalogService) refreshLocked(ctx context.Context) (models.Snapshot, error) {
	snap, err := s.agg.Aggregate(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	if err := s.snapshot.Save(ctx, snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	for _, d := range snap.Diagnostics {
		if err := s.diags.Append(ctx, d); err != nil {
			s.log.Errorw("diagnostic_append_failed", "err", err, "run_id", snap.RunID, "stage", d.Stage)
		}
	}
	return snap, nil
}
