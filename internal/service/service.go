package service

import (
	"context"
	"time"

	"svt_viewer/internal/logger"
	"svt_viewer/internal/models"
	"svt_viewer/internal/repository"
)

// Aggregator runs the thermostat pipeline once.
type Aggregator interface {
	Aggregate(ctx context.Context) (models.Snapshot, error)
}

// Catalog serves the thermostats of the latest snapshot.
type Catalog interface {
	List(ctx context.Context) (models.Snapshot, error)
	Get(ctx context.Context, id int) (models.Thermostat, error)
	Refresh(ctx context.Context) (models.Snapshot, error)
}

// Diagnostics exposes the diagnostics log with filtering.
type Diagnostics interface {
	List(ctx context.Context, f DiagnosticFilter) ([]models.Diagnostic, error)
}

// Refresher periodically refreshes the catalog. Stop it by cancelling ctx.
type Refresher interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Aggregator
	Catalog
	Diagnostics
	Refresher
}

// Options tunes the services built by NewService.
type Options struct {
	Concurrency int
}

func NewService(repos *repository.Repository, hub Hub, opts Options, log *logger.Logger) *Service {
	agg := NewAggregatorService(hub, opts.Concurrency, log)
	catalog := NewCatalogService(agg, repos.SnapshotRepo, repos.DiagnosticRepo, log)
	return &Service{
		Aggregator:  agg,
		Catalog:     catalog,
		Diagnostics: NewDiagnosticsService(repos.DiagnosticRepo),
		Refresher:   NewRefresherService(catalog, log),
	}
}
