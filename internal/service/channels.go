package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"svt_viewer/internal/models"
)

var (
	errEmptyChannel    = errors.New("no channel index configured")
	errNegativeChannel = errors.New("channel index must not be negative")
)

// ConfigParseError reports a hardware entry whose channel configuration
// cannot be parsed. The entry is skipped; the run continues.
type ConfigParseError struct {
	HardwareID int
	Field      string // Mode1 | Mode3
	Value      string
	Err        error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("hardware %d: invalid %s %q: %v", e.HardwareID, e.Field, e.Value, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// ResolveChannels parses the Mode1/Mode2/Mode3 strings of a thermostat
// hardware entry. Only the first index of the Mode1 and Mode3 lists is used.
func ResolveChannels(h models.HardwareEntry) (models.ChannelSet, error) {
	indoor, err := firstIndex(h.Mode1)
	if err != nil {
		return models.ChannelSet{}, &ConfigParseError{HardwareID: h.ID, Field: "Mode1", Value: h.Mode1, Err: err}
	}

	set := models.ChannelSet{IndoorIdx: indoor}

	// Outdoor is optional: anything that is not a single non-negative integer means "none".
	if n, err := strconv.Atoi(strings.TrimSpace(h.Mode2)); err == nil && n >= 0 {
		set.OutdoorIdx = &n
	}

	if strings.TrimSpace(h.Mode3) != "" {
		heater, err := firstIndex(h.Mode3)
		if err != nil {
			return models.ChannelSet{}, &ConfigParseError{HardwareID: h.ID, Field: "Mode3", Value: h.Mode3, Err: err}
		}
		set.HeaterIdx = &heater
	}
	return set, nil
}

// firstIndex returns the first entry of a comma separated index list.
func firstIndex(csv string) (int, error) {
	first, _, _ := strings.Cut(csv, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return 0, errEmptyChannel
	}
	n, err := strconv.Atoi(first)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegativeChannel
	}
	return n, nil
}
