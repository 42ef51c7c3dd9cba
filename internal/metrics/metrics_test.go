package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveHubRequest("hardware", OutcomeOK)
	ObserveRun(true, 150*time.Millisecond, 3)
	ObserveRun(false, time.Second, 0)
	ObserveDiagnostic("INDOOR")

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	for _, want := range []string{
		`svtview_hub_requests_total{endpoint="hardware",outcome="ok"}`,
		`svtview_aggregation_runs_total{result="ok"}`,
		`svtview_aggregation_runs_total{result="error"}`,
		`svtview_thermostats 3`,
		`svtview_diagnostics_total{stage="INDOOR"}`,
		`svtview_aggregation_duration_seconds_count`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
