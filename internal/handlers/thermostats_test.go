package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"svt_viewer/internal/hub"
	"svt_viewer/internal/models"
	"svt_viewer/internal/service"
)

func sampleSnapshot() models.Snapshot {
	ws := time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC)
	return models.Snapshot{
		RunID:   "run-1",
		TakenAt: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		Thermostats: []models.Thermostat{{
			ID:          1,
			Name:        "Living",
			Indoor:      []models.Reading{{Time: ws, Value: 20.5}},
			Heater:      &models.HeaterInfo{IsDimmer: true},
			WindowStart: &ws,
		}},
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing request id header")
	}
}

func TestThermostatHandlers_ListGetRefresh(t *testing.T) {
	cat := &mockCatalog{snap: sampleSnapshot(), thermostat: sampleSnapshot().Thermostats[0]}
	r := newTestRouter(&service.Service{Catalog: cat})

	// GET list → 200 with count and thermostats
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thermostats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var list ThermostatList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if list.RunID != "run-1" || list.Count != 1 || list.Thermostats[0].Name != "Living" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list.TakenAt != "2024-01-10T12:00:00Z" {
		t.Fatalf("taken_at: %q", list.TakenAt)
	}

	// GET by id → 200, id forwarded
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thermostats/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	if cat.lastGetID != 1 {
		t.Fatalf("expected id 1, got %d", cat.lastGetID)
	}
	var raw map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &raw)
	if raw["window_start"] != "2024-01-10T01:00:00Z" {
		t.Fatalf("window_start: %v", raw["window_start"])
	}
	if v, ok := raw["outdoor"]; !ok || v != nil {
		t.Fatalf("absent outdoor series should be null, got %v (present=%v)", v, ok)
	}

	// POST refresh → 200, runs Refresh once
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/thermostats/refresh", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("refresh status=%d, body=%s", w.Code, w.Body.String())
	}
	if cat.refreshCalls != 1 {
		t.Fatalf("expected Refresh to be called once, got %d", cat.refreshCalls)
	}
}

func TestThermostatHandlers_EmptyListIsArray(t *testing.T) {
	r := newTestRouter(&service.Service{Catalog: &mockCatalog{snap: models.Snapshot{RunID: "r"}}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thermostats", nil))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["thermostats"]) != "[]" {
		t.Fatalf("thermostats: %s", raw["thermostats"])
	}
}

func TestThermostatHandlers_Errors(t *testing.T) {
	transport := &hub.TransportError{Op: "hardware", URL: "http://hub/json.htm", Err: errors.New("connection refused")}
	malformed := &hub.MalformedResponseError{Op: "devices", URL: "http://hub/json.htm", Err: errors.New("bad json")}

	cases := []struct {
		name   string
		method string
		path   string
		cat    *mockCatalog
		want   int
	}{
		{"list hub down", http.MethodGet, "/api/v1/thermostats", &mockCatalog{listErr: fmt.Errorf("discover: %w", transport)}, http.StatusBadGateway},
		{"list malformed", http.MethodGet, "/api/v1/thermostats", &mockCatalog{listErr: malformed}, http.StatusBadGateway},
		{"list store", http.MethodGet, "/api/v1/thermostats", &mockCatalog{listErr: errors.New("db")}, http.StatusInternalServerError},
		{"get bad id", http.MethodGet, "/api/v1/thermostats/abc", &mockCatalog{}, http.StatusBadRequest},
		{"get not found", http.MethodGet, "/api/v1/thermostats/5", &mockCatalog{getErr: fmt.Errorf("%w: 5", service.ErrThermostatNotFound)}, http.StatusNotFound},
		{"refresh hub down", http.MethodPost, "/api/v1/thermostats/refresh", &mockCatalog{refreshErr: transport}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Catalog: tc.cat})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error == "" {
				t.Fatal("missing error message")
			}
		})
	}
}

func TestThermostatHandlers_EmptySeriesStayEmpty(t *testing.T) {
	cat := &mockCatalog{thermostat: models.Thermostat{
		ID:       3,
		Name:     "Attic",
		Indoor:   []models.Reading{},
		Setpoint: []models.Reading{},
	}}
	r := newTestRouter(&service.Service{Catalog: cat})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thermostats/3", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key, want := range map[string]string{"setpoint": "[]", "indoor": "[]", "outdoor": "null"} {
		if got := string(raw[key]); got != want {
			t.Errorf("%s: got %s want %s", key, got, want)
		}
	}
}
