package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"svt_viewer/internal/models"
)

var base = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

// at returns base + n hours.
func at(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

func readingsAt(hours ...int) []models.Reading {
	out := make([]models.Reading, 0, len(hours))
	for _, h := range hours {
		out = append(out, models.Reading{Time: at(h), Value: float64(h)})
	}
	return out
}

func activationsAt(hours ...int) []models.Activation {
	out := make([]models.Activation, 0, len(hours))
	for _, h := range hours {
		out = append(out, models.Activation{Time: at(h), Status: "On"})
	}
	return out
}

func hoursOf(log []models.Activation) []int {
	out := make([]int, 0, len(log))
	for _, a := range log {
		out = append(out, int(a.Time.Sub(base)/time.Hour))
	}
	return out
}

var errHubDown = errors.New("hub down")

// fakeHub is an in-memory Hub recording the calls made to it.
type fakeHub struct {
	mu sync.Mutex

	hardware    []models.HardwareEntry
	hardwareErr error
	devices     []models.DeviceEntry
	devicesErr  error
	graphs      map[int][]models.Reading
	graphErrs   map[int]error
	logs        map[int][]models.Activation
	logErrs     map[int]error

	calls []string
}

func (f *fakeHub) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeHub) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeHub) Hardware(ctx context.Context) ([]models.HardwareEntry, error) {
	f.record("hardware")
	if f.hardwareErr != nil {
		return nil, f.hardwareErr
	}
	return f.hardware, nil
}

func (f *fakeHub) Devices(ctx context.Context) ([]models.DeviceEntry, error) {
	f.record("devices")
	if f.devicesErr != nil {
		return nil, f.devicesErr
	}
	return f.devices, nil
}

func (f *fakeHub) TemperatureGraph(ctx context.Context, idx int) ([]models.Reading, error) {
	f.record(fmt.Sprintf("graph:%d", idx))
	if err := f.graphErrs[idx]; err != nil {
		return nil, err
	}
	return append([]models.Reading{}, f.graphs[idx]...), nil
}

func (f *fakeHub) LightLog(ctx context.Context, idx int) ([]models.Activation, error) {
	f.record(fmt.Sprintf("lightlog:%d", idx))
	if err := f.logErrs[idx]; err != nil {
		return nil, err
	}
	return append([]models.Activation{}, f.logs[idx]...), nil
}
