package service

import "svt_viewer/internal/models"

// CrossRef is what the device list tells about one thermostat.
type CrossRef struct {
	// SetpointIdx is the device whose series is the thermostat setpoint; nil when none.
	SetpointIdx *int
	// ExtraSetpoints lists the other setpoint candidates that lost to SetpointIdx.
	ExtraSetpoints []int
	IsDimmer       bool
}

// CrossReference scans the device list once. Among devices belonging to the
// hardware with the setpoint sub-unit the last one wins; the others are
// reported in ExtraSetpoints. The dimmer flag is set from the device whose
// idx equals the heater channel, false when there is none.
func CrossReference(devices []models.DeviceEntry, hardwareID int, heaterIdx *int) CrossRef {
	var ref CrossRef
	for _, d := range devices {
		if d.IsSetpointOf(hardwareID) {
			if ref.SetpointIdx != nil {
				ref.ExtraSetpoints = append(ref.ExtraSetpoints, *ref.SetpointIdx)
			}
			idx := d.Idx
			ref.SetpointIdx = &idx
		}
		if heaterIdx != nil && d.Idx == *heaterIdx {
			ref.IsDimmer = d.IsDimmer()
		}
	}
	return ref
}
