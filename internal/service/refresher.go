package service

import (
	"context"
	"time"

	"svt_viewer/internal/logger"
	"svt_viewer/internal/models"
)

type refresher interface {
	Refresh(ctx context.Context) (models.Snapshot, error)
}

// RefresherService re-runs the aggregation on a fixed interval.
type RefresherService struct {
	catalog refresher
	log     *logger.Logger
}

func NewRefresherService(catalog refresher, log *logger.Logger) *RefresherService {
	return &RefresherService{catalog: catalog, log: logger.OrNop(log)}
}

// Run refreshes once immediately, then every tick until ctx is cancelled.
// A non-positive tick disables the loop.
func (s *RefresherService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		return
	}
	s.refresh(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.refresh(ctx)
		}
	}
}

func (s *RefresherService) refresh(ctx context.Context) {
	if _, err := s.catalog.Refresh(ctx); err != nil && ctx.Err() == nil {
		s.log.Warnw("refresh_failed", "err", err)
	}
}
