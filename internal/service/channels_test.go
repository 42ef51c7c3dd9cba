package service

import (
	"errors"
	"testing"

	"svt_viewer/internal/models"
)

func TestResolveChannels(t *testing.T) {
	intp := func(n int) *int { return &n }

	cases := []struct {
		name    string
		h       models.HardwareEntry
		want    models.ChannelSet
		wantErr string // field of the ConfigParseError, "" for success
	}{
		{
			name: "all channels",
			h:    models.HardwareEntry{ID: 1, Mode1: "10", Mode2: "11", Mode3: "20"},
			want: models.ChannelSet{IndoorIdx: 10, OutdoorIdx: intp(11), HeaterIdx: intp(20)},
		},
		{
			name: "first index of lists wins",
			h:    models.HardwareEntry{ID: 1, Mode1: " 10 , 12", Mode2: "11", Mode3: "20,21,22"},
			want: models.ChannelSet{IndoorIdx: 10, OutdoorIdx: intp(11), HeaterIdx: intp(20)},
		},
		{
			name: "outdoor absent",
			h:    models.HardwareEntry{ID: 1, Mode1: "10", Mode2: "", Mode3: "20"},
			want: models.ChannelSet{IndoorIdx: 10, HeaterIdx: intp(20)},
		},
		{
			name: "outdoor negative",
			h:    models.HardwareEntry{ID: 1, Mode1: "10", Mode2: "-1", Mode3: "20"},
			want: models.ChannelSet{IndoorIdx: 10, HeaterIdx: intp(20)},
		},
		{
			name: "outdoor list is not a single index",
			h:    models.HardwareEntry{ID: 1, Mode1: "10", Mode2: "11,12", Mode3: "20"},
			want: models.ChannelSet{IndoorIdx: 10, HeaterIdx: intp(20)},
		},
		{
			name: "outdoor zero is valid",
			h:    models.HardwareEntry{ID: 1, Mode1: "10", Mode2: "0", Mode3: "20"},
			want: models.ChannelSet{IndoorIdx: 10, OutdoorIdx: intp(0), HeaterIdx: intp(20)},
		},
		{
			name: "no heater",
			h:    models.HardwareEntry{ID: 1, Mode1: "10", Mode3: "  "},
			want: models.ChannelSet{IndoorIdx: 10},
		},
		{name: "empty indoor", h: models.HardwareEntry{ID: 2, Mode1: "", Mode3: "20"}, wantErr: "Mode1"},
		{name: "text indoor", h: models.HardwareEntry{ID: 2, Mode1: "abc", Mode3: "20"}, wantErr: "Mode1"},
		{name: "negative indoor", h: models.HardwareEntry{ID: 2, Mode1: "-3", Mode3: "20"}, wantErr: "Mode1"},
		{name: "bad heater", h: models.HardwareEntry{ID: 2, Mode1: "10", Mode3: "x,20"}, wantErr: "Mode3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveChannels(tc.h)
			if tc.wantErr != "" {
				var cpe *ConfigParseError
				if !errors.As(err, &cpe) {
					t.Fatalf("want ConfigParseError, got %v", err)
				}
				if cpe.Field != tc.wantErr || cpe.HardwareID != tc.h.ID {
					t.Fatalf("unexpected error details: %+v", cpe)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.IndoorIdx != tc.want.IndoorIdx {
				t.Errorf("IndoorIdx: got %d want %d", got.IndoorIdx, tc.want.IndoorIdx)
			}
			if !equalIntPtr(got.OutdoorIdx, tc.want.OutdoorIdx) {
				t.Errorf("OutdoorIdx: got %v want %v", derefOr(got.OutdoorIdx), derefOr(tc.want.OutdoorIdx))
			}
			if !equalIntPtr(got.HeaterIdx, tc.want.HeaterIdx) {
				t.Errorf("HeaterIdx: got %v want %v", derefOr(got.HeaterIdx), derefOr(tc.want.HeaterIdx))
			}
		})
	}
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func derefOr(p *int) any {
	if p == nil {
		return "absent"
	}
	return *p
}
