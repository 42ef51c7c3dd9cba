package service

import (
	"context"
	"fmt"

	"svt_viewer/internal/models"
)

// SeriesSource serves the per-channel series of the hub.
type SeriesSource interface {
	TemperatureGraph(ctx context.Context, idx int) ([]models.Reading, error)
	LightLog(ctx context.Context, idx int) ([]models.Activation, error)
}

// SeriesFetcher fetches the trailing-day series of a channel. Results keep
// the source order.
type SeriesFetcher struct {
	src SeriesSource
}

func NewSeriesFetcher(src SeriesSource) SeriesFetcher {
	return SeriesFetcher{src: src}
}

// Temperature fetches a temperature (or setpoint) graph.
func (f SeriesFetcher) Temperature(ctx context.Context, idx int) ([]models.Reading, error) {
	rs, err := f.src.TemperatureGraph(ctx, idx)
	if err != nil {
		return nil, fmt.Errorf("temperature series of idx %d: %w", idx, err)
	}
	return rs, nil
}

// SwitchLog fetches the activation log of a switch.
func (f SeriesFetcher) SwitchLog(ctx context.Context, idx int) ([]models.Activation, error) {
	log, err := f.src.LightLog(ctx, idx)
	if err != nil {
		return nil, fmt.Errorf("switch log of idx %d: %w", idx, err)
	}
	return log, nil
}
