package models

import "time"

// Pipeline stages a diagnostic can originate from.
const (
	StageChannels = "CHANNELS"
	StageIndoor   = "INDOOR"
	StageOutdoor  = "OUTDOOR"
	StageHeater   = "HEATER"
	StageSetpoint = "SETPOINT"
)

// Diagnostic records a per-thermostat problem met during an aggregation run.
type Diagnostic struct {
	ID           string    `json:"id"`
	RunID        string    `json:"run_id"`
	OccurredAt   time.Time `json:"occurred_at"`
	Stage        string    `json:"stage"`
	HardwareID   int       `json:"hardware_id"`
	HardwareName string    `json:"hardware_name"`
	Message      string    `json:"message"`
	Dropped      bool      `json:"dropped"` // thermostat left out of the result
}
