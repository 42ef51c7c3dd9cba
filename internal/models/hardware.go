package models

// ThermostatProductTag is the hardware "Extra" value the hub assigns to
// Smart Virtual Thermostat instances.
const ThermostatProductTag = "SVT"

// HardwareEntry is one configured hardware record as reported by the hub.
// Mode1..Mode3 carry the thermostat's channel configuration as CSV strings.
type HardwareEntry struct {
	ID    int    `json:"idx"`
	Name  string `json:"name"`
	Extra string `json:"extra"` // product tag, "SVT" for thermostats
	Mode1 string `json:"mode1"` // indoor sensor idx list
	Mode2 string `json:"mode2"` // outdoor sensor idx
	Mode3 string `json:"mode3"` // heater switch idx list
}

// IsThermostat reports whether the entry is tagged with the thermostat product type.
func (h HardwareEntry) IsThermostat() bool {
	return h.Extra == ThermostatProductTag
}

// ChannelSet holds the channel indices resolved from a hardware entry.
type ChannelSet struct {
	IndoorIdx  int
	OutdoorIdx *int // nil when no outdoor sensor is configured
	HeaterIdx  *int // nil when no heater switch is configured
}
