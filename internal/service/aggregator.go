package service

import (
	"context"
	"fmt"
	"time"

	"svt_viewer/internal/logger"
	"svt_viewer/internal/metrics"
	"svt_viewer/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Hub is everything the aggregation needs from the home-automation hub.
type Hub interface {
	HardwareLister
	SeriesSource
	Devices(ctx context.Context) ([]models.DeviceEntry, error)
}

// AggregatorService builds thermostat snapshots from the hub.
type AggregatorService struct {
	hub         Hub
	series      SeriesFetcher
	concurrency int
	log         *logger.Logger
}

// NewAggregatorService returns an aggregator. concurrency below 1 means sequential.
func NewAggregatorService(hub Hub, concurrency int, log *logger.Logger) *AggregatorService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AggregatorService{
		hub:         hub,
		series:      NewSeriesFetcher(hub),
		concurrency: concurrency,
		log:         logger.OrNop(log),
	}
}

// thermostatResult is the outcome of one hardware entry. thermostat is nil
// when the entry was dropped.
type thermostatResult struct {
	thermostat *models.Thermostat
	diags      []models.Diagnostic
}

// Aggregate runs the whole pipeline once. Hardware discovery and device list
// failures abort the run; problems with a single thermostat end up in the
// snapshot diagnostics.
func (s *AggregatorService) Aggregate(ctx context.Context) (models.Snapshot, error) {
	start := time.Now()
	snap := models.Snapshot{RunID: uuid.NewString(), TakenAt: start.UTC(), Thermostats: []models.Thermostat{}}
	log := s.log.With("run_id", snap.RunID)
	log.Debugw("aggregation_started")

	snap, err := s.aggregate(ctx, snap)
	metrics.ObserveRun(err == nil, time.Since(start), len(snap.Thermostats))
	if err != nil {
		log.Errorw("aggregation_failed", "err", err)
		return models.Snapshot{}, err
	}

	for _, d := range snap.Diagnostics {
		metrics.ObserveDiagnostic(d.Stage)
		log.Warnw("aggregation_diagnostic", "stage", d.Stage, "hardware_id", d.HardwareID,
			"hardware", d.HardwareName, "dropped", d.Dropped, "msg", d.Message)
	}
	log.Infow("aggregation_finished", "thermostats", len(snap.Thermostats),
		"diagnostics", len(snap.Diagnostics), "took", time.Since(start))
	return snap, nil
}

func (s *AggregatorService) aggregate(ctx context.Context, snap models.Snapshot) (models.Snapshot, error) {
	entries, err := DiscoverThermostats(ctx, s.hub)
	if err != nil {
		return snap, err
	}
	if len(entries) == 0 {
		return snap, nil
	}

	devices, err := s.hub.Devices(ctx)
	if err != nil {
		return snap, fmt.Errorf("fetch device list: %w", err)
	}

	// Each entry writes only its own slot; order follows discovery.
	results := make([]thermostatResult, len(entries))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, h := range entries {
		g.Go(func() error {
			results[i] = s.aggregateOne(ctx, h, devices)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return snap, fmt.Errorf("aggregation interrupted: %w", err)
	}

	for _, r := range results {
		snap.Diagnostics = append(snap.Diagnostics, r.diags...)
		if r.thermostat == nil {
			continue
		}
		var added bool
		snap.Thermostats, added = AppendThermostat(snap.Thermostats, *r.thermostat)
		if !added {
			snap.Diagnostics = append(snap.Diagnostics, newDiagnostic(models.StageChannels,
				models.HardwareEntry{ID: r.thermostat.ID, Name: r.thermostat.Name},
				fmt.Errorf("duplicate hardware id %d", r.thermostat.ID), true))
		}
	}

	now := utcNow()
	for i := range snap.Diagnostics {
		snap.Diagnostics[i].ID = uuid.NewString()
		snap.Diagnostics[i].RunID = snap.RunID
		snap.Diagnostics[i].OccurredAt = now
	}
	return snap, nil
}

// aggregateOne runs resolve → fetch → align → cross-reference → assemble for
// one hardware entry. Every step waits for the one it depends on.
func (s *AggregatorService) aggregateOne(ctx context.Context, h models.HardwareEntry, devices []models.DeviceEntry) thermostatResult {
	var res thermostatResult

	channels, err := ResolveChannels(h)
	if err != nil {
		res.diags = append(res.diags, newDiagnostic(models.StageChannels, h, err, true))
		return res
	}

	f := fetched{hardware: h, channels: channels}

	f.indoor, err = s.series.Temperature(ctx, channels.IndoorIdx)
	if err != nil {
		res.diags = append(res.diags, newDiagnostic(models.StageIndoor, h, err, true))
		return res
	}

	if channels.OutdoorIdx != nil {
		if f.outdoor, err = s.series.Temperature(ctx, *channels.OutdoorIdx); err != nil {
			res.diags = append(res.diags, newDiagnostic(models.StageOutdoor, h, err, false))
		}
	}

	if channels.HeaterIdx != nil {
		if f.heaterLog, err = s.series.SwitchLog(ctx, *channels.HeaterIdx); err != nil {
			res.diags = append(res.diags, newDiagnostic(models.StageHeater, h, err, false))
		}
	}

	f.crossRef = CrossReference(devices, h.ID, channels.HeaterIdx)
	if len(f.crossRef.ExtraSetpoints) > 0 {
		res.diags = append(res.diags, newDiagnostic(models.StageSetpoint, h,
			fmt.Errorf("multiple setpoint devices %v, using last idx %d", f.crossRef.ExtraSetpoints, *f.crossRef.SetpointIdx), false))
	}
	if f.crossRef.SetpointIdx != nil {
		if f.setpoint, err = s.series.Temperature(ctx, *f.crossRef.SetpointIdx); err != nil {
			res.diags = append(res.diags, newDiagnostic(models.StageSetpoint, h, err, false))
		}
	}

	t := Assemble(f)
	res.thermostat = &t
	return res
}

func newDiagnostic(stage string, h models.HardwareEntry, err error, dropped bool) models.Diagnostic {
	return models.Diagnostic{
		Stage:        stage,
		HardwareID:   h.ID,
		HardwareName: h.Name,
		Message:      err.Error(),
		Dropped:      dropped,
	}
}
