package models

const (
	// SetpointUnit is the sub-unit number the thermostat plugin uses for its setpoint device.
	SetpointUnit = 4
	// DimmerSwitchType marks a variable-output switch.
	DimmerSwitchType = "Dimmer"
)

// DeviceEntry is one device record from the hub's device list. It is only
// used for cross-referencing and never ends up in a Thermostat.
type DeviceEntry struct {
	Idx        int    `json:"idx"`
	HardwareID int    `json:"hardware_id"`
	Unit       int    `json:"unit"`
	SwitchType string `json:"switch_type"`
	Name       string `json:"name"`
}

// IsSetpointOf reports whether the device is the setpoint channel of the given hardware.
func (d DeviceEntry) IsSetpointOf(hardwareID int) bool {
	return d.HardwareID == hardwareID && d.Unit == SetpointUnit
}

// IsDimmer reports whether the device switch type is a dimmer.
func (d DeviceEntry) IsDimmer() bool {
	return d.SwitchType == DimmerSwitchType
}
