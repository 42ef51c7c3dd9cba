package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"svt_viewer/internal/models"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (c *countingRefresher) Refresh(ctx context.Context) (models.Snapshot, error) {
	c.calls.Add(1)
	return models.Snapshot{}, nil
}

func TestRefresher_RunsUntilCancelled(t *testing.T) {
	cr := &countingRefresher{}
	r := NewRefresherService(cr, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for cr.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d refreshes", cr.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRefresher_DisabledInterval(t *testing.T) {
	cr := &countingRefresher{}
	NewRefresherService(cr, nil).Run(context.Background(), 0)
	if cr.calls.Load() != 0 {
		t.Fatalf("refreshed %d times", cr.calls.Load())
	}
}
