package service

import (
	"context"
	"fmt"

	"svt_viewer/internal/models"
)

// HardwareLister lists the hardware configured on the hub.
type HardwareLister interface {
	Hardware(ctx context.Context) ([]models.HardwareEntry, error)
}

// DiscoverThermostats returns the hardware entries tagged as thermostats.
// An empty slice means the hub has none; on error no entries are returned.
func DiscoverThermostats(ctx context.Context, hub HardwareLister) ([]models.HardwareEntry, error) {
	all, err := hub.Hardware(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover thermostats: %w", err)
	}
	out := make([]models.HardwareEntry, 0, len(all))
	for _, h := range all {
		if h.IsThermostat() {
			out = append(out, h)
		}
	}
	return out, nil
}
