package models

import "time"

// Reading is a single timestamped sample of a temperature or setpoint series.
type Reading struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Activation is one entry of a switch log.
type Activation struct {
	Time   time.Time `json:"time"`
	Status string    `json:"status"`          // On | Off | Set Level ...
	Level  int       `json:"level,omitempty"` // dimmer level in %, 0 for plain switches
}

// HeaterInfo describes the heater channel of a thermostat.
type HeaterInfo struct {
	History  []Activation `json:"history"` // trimmed to the thermostat window, ascending
	IsDimmer bool         `json:"is_dimmer"`
}

// Thermostat is the aligned view of one SVT hardware entry.
type Thermostat struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Indoor      []Reading   `json:"indoor"`
	Outdoor     []Reading   `json:"outdoor"`  // null without an outdoor sensor, [] when it had no readings
	Setpoint    []Reading   `json:"setpoint"` // null without a setpoint device, [] when it had no readings
	Heater      *HeaterInfo `json:"heater,omitempty"`   // present iff a heater channel was resolved
	WindowStart *time.Time  `json:"window_start,omitempty"`
}

// Snapshot is the outcome of one aggregation run.
type Snapshot struct {
	RunID       string       `json:"run_id"`
	TakenAt     time.Time    `json:"taken_at"`
	Thermostats []Thermostat `json:"thermostats"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
