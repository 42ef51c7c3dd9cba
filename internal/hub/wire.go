package hub

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"svt_viewer/internal/models"
)

const statusOK = "OK"

// Timestamp layouts used by the hub: graphs carry minutes, switch logs seconds.
var timeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}

type envelope[T any] struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Result  []T    `json:"result"`
}

// flexInt accepts both 12 and "12"; the hub quotes most idx fields.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", b)
	}
	*f = flexInt(n)
	return nil
}

// flexString accepts strings and bare numbers; plugin Mode fields come both ways.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(b)
	return nil
}

type hardwareItem struct {
	Idx   *flexInt   `json:"idx"`
	Name  string     `json:"Name"`
	Extra string     `json:"Extra"`
	Mode1 flexString `json:"Mode1"`
	Mode2 flexString `json:"Mode2"`
	Mode3 flexString `json:"Mode3"`
}

type deviceItem struct {
	Idx        *flexInt `json:"idx"`
	HardwareID flexInt  `json:"HardwareID"`
	Unit       flexInt  `json:"Unit"`
	SwitchType string   `json:"SwitchType"`
	Name       string   `json:"Name"`
}

type graphItem struct {
	D  string   `json:"d"`
	Te *float64 `json:"te"`
	Ta *float64 `json:"ta"`
}

type lightLogItem struct {
	Date   string  `json:"Date"`
	Status string  `json:"Status"`
	Data   string  `json:"Data"`
	Level  flexInt `json:"Level"`
}

var (
	errMissingIdx   = errors.New("missing idx")
	errMissingDate  = errors.New("missing timestamp")
	errMissingValue = errors.New("missing temperature value")
)

func parseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errMissingDate
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (it hardwareItem) toModel(i int) (models.HardwareEntry, error) {
	if it.Idx == nil {
		return models.HardwareEntry{}, fmt.Errorf("result[%d]: %w", i, errMissingIdx)
	}
	return models.HardwareEntry{
		ID:    int(*it.Idx),
		Name:  it.Name,
		Extra: it.Extra,
		Mode1: string(it.Mode1),
		Mode2: string(it.Mode2),
		Mode3: string(it.Mode3),
	}, nil
}

func (it deviceItem) toModel(i int) (models.DeviceEntry, error) {
	if it.Idx == nil {
		return models.DeviceEntry{}, fmt.Errorf("result[%d]: %w", i, errMissingIdx)
	}
	return models.DeviceEntry{
		Idx:        int(*it.Idx),
		HardwareID: int(it.HardwareID),
		Unit:       int(it.Unit),
		SwitchType: it.SwitchType,
		Name:       it.Name,
	}, nil
}

func (it graphItem) toModel(i int, loc *time.Location) (models.Reading, error) {
	ts, err := parseTime(it.D, loc)
	if err != nil {
		return models.Reading{}, fmt.Errorf("result[%d]: %w", i, err)
	}
	v := it.Te
	if v == nil {
		v = it.Ta
	}
	if v == nil {
		return models.Reading{}, fmt.Errorf("result[%d]: %w", i, errMissingValue)
	}
	return models.Reading{Time: ts, Value: *v}, nil
}

func (it lightLogItem) toModel(i int, loc *time.Location) (models.Activation, error) {
	ts, err := parseTime(it.Date, loc)
	if err != nil {
		return models.Activation{}, fmt.Errorf("result[%d]: %w", i, err)
	}
	status := it.Status
	if status == "" {
		status = it.Data
	}
	return models.Activation{Time: ts, Status: status, Level: int(it.Level)}, nil
}
