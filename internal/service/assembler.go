package service

import (
	"time"

	"svt_viewer/internal/models"
)

// fetched holds everything retrieved for one thermostat before assembly.
type fetched struct {
	hardware  models.HardwareEntry
	channels  models.ChannelSet
	indoor    []models.Reading
	outdoor   []models.Reading // nil: no sensor or fetch failed
	heaterLog []models.Activation
	setpoint  []models.Reading
	crossRef  CrossRef
}

// Assemble merges already retrieved data into a Thermostat. It never fetches.
func Assemble(f fetched) models.Thermostat {
	t := models.Thermostat{
		ID:       f.hardware.ID,
		Name:     f.hardware.Name,
		Indoor:   f.indoor,
		Outdoor:  f.outdoor,
		Setpoint: f.setpoint,
	}

	minDate, ok := ComputeWindow(f.indoor, f.outdoor)
	if ok {
		ws := minDate
		t.WindowStart = &ws
	}

	if f.channels.HeaterIdx != nil {
		t.Heater = &models.HeaterInfo{IsDimmer: f.crossRef.IsDimmer}
		if f.heaterLog != nil {
			t.Heater.History = TrimHeaterLog(f.heaterLog, minDate, ok)
		}
	}
	return t
}

// AppendThermostat adds t to out unless a thermostat with the same id is already present.
func AppendThermostat(out []models.Thermostat, t models.Thermostat) ([]models.Thermostat, bool) {
	for _, existing := range out {
		if existing.ID == t.ID {
			return out, false
		}
	}
	return append(out, t), true
}

func utcNow() time.Time { return time.Now().UTC() }
