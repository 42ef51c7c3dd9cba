package service

import (
	"slices"
	"time"

	"svt_viewer/internal/models"
)

// ComputeWindow returns the earliest timestamp over the indoor readings and,
// when given, the outdoor readings. ok is false when indoor is empty: the
// window is undefined and callers must not trim against it.
func ComputeWindow(indoor, outdoor []models.Reading) (minDate time.Time, ok bool) {
	if len(indoor) == 0 {
		return time.Time{}, false
	}
	minDate = earliest(indoor)
	if len(outdoor) > 0 {
		if o := earliest(outdoor); o.Before(minDate) {
			minDate = o
		}
	}
	return minDate, true
}

func earliest(rs []models.Reading) time.Time {
	m := rs[0].Time
	for _, r := range rs[1:] {
		if r.Time.Before(m) {
			m = r.Time
		}
	}
	return m
}

// TrimHeaterLog keeps the activations at or after minDate and returns them in
// ascending time order. When the window is undefined (ok == false) nothing is
// dropped. The input slice is not modified.
func TrimHeaterLog(log []models.Activation, minDate time.Time, ok bool) []models.Activation {
	out := make([]models.Activation, 0, len(log))
	for _, a := range log {
		if ok && a.Time.Before(minDate) {
			continue
		}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b models.Activation) int {
		return a.Time.Compare(b.Time)
	})
	return out
}
