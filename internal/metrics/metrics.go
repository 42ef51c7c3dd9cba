// Package metrics holds the Prometheus collectors of the viewer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	hubRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "svtview",
		Name:      "hub_requests_total",
		Help:      "Hub API calls by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	aggregationRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "svtview",
		Name:      "aggregation_runs_total",
		Help:      "Aggregation runs by result.",
	}, []string{"result"})

	aggregationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "svtview",
		Name:      "aggregation_duration_seconds",
		Help:      "Wall time of one aggregation run.",
		Buckets:   prometheus.DefBuckets,
	})

	thermostats = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "svtview",
		Name:      "thermostats",
		Help:      "Thermostats assembled by the last successful run.",
	})

	diagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "svtview",
		Name:      "diagnostics_total",
		Help:      "Per-thermostat diagnostics by pipeline stage.",
	}, []string{"stage"})
)

// Hub request outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeRetry     = "retry"
	OutcomeTransport = "transport_error"
	OutcomeMalformed = "malformed"
)

func init() {
	registry.MustRegister(hubRequests, aggregationRuns, aggregationDuration, thermostats, diagnostics)
}

// ObserveHubRequest counts one hub call attempt.
func ObserveHubRequest(endpoint, outcome string) {
	hubRequests.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveRun records a finished aggregation run. count is ignored for failed runs.
func ObserveRun(ok bool, took time.Duration, count int) {
	aggregationDuration.Observe(took.Seconds())
	if !ok {
		aggregationRuns.WithLabelValues("error").Inc()
		return
	}
	aggregationRuns.WithLabelValues("ok").Inc()
	thermostats.Set(float64(count))
}

// ObserveDiagnostic counts one diagnostic.
func ObserveDiagnostic(stage string) {
	diagnostics.WithLabelValues(stage).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
