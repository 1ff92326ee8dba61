// Package metrics provides Prometheus metrics for the thesis export service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	ExportsTotal    *prometheus.CounterVec
	ExportDuration  *prometheus.HistogramVec
	PlanPages       prometheus.Histogram
	CacheHitsTotal  *prometheus.CounterVec
	ArtifactBytes   *prometheus.HistogramVec
	ErrorsTotal     *prometheus.CounterVec
	ExportsInFlight prometheus.Gauge

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thesis_exports_total",
				Help: "Total number of export requests by format and status.",
			},
			[]string{"format", "status"},
		),
		ExportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "thesis_export_duration_seconds",
				Help:    "Export pipeline duration by format.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		PlanPages: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "thesis_plan_pages",
				Help:    "Number of pages in built page plans.",
				Buckets: []float64{1, 2, 5, 10, 15, 20, 30},
			},
		),
		CacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thesis_artifact_cache_total",
				Help: "Artifact cache lookups by outcome.",
			},
			[]string{"outcome"},
		),
		ArtifactBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "thesis_artifact_bytes",
				Help:    "Rendered artifact size in bytes by format.",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
			[]string{"format"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thesis_errors_total",
				Help: "Total errors by component and type.",
			},
			[]string{"component", "type"},
		),
		ExportsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "thesis_exports_in_flight",
				Help: "Number of exports currently rendering.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(m.ExportsTotal)
	reg.MustRegister(m.ExportDuration)
	reg.MustRegister(m.PlanPages)
	reg.MustRegister(m.CacheHitsTotal)
	reg.MustRegister(m.ArtifactBytes)
	reg.MustRegister(m.ErrorsTotal)
	reg.MustRegister(m.ExportsInFlight)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordExport increments the export counter.
func (m *Metrics) RecordExport(format, status string) {
	m.ExportsTotal.WithLabelValues(format, status).Inc()
}

// RecordError increments the error counter.
func (m *Metrics) RecordError(component, errType string) {
	m.ErrorsTotal.WithLabelValues(component, errType).Inc()
}

// RecordCacheLookup increments the artifact cache counter.
// Outcome is "hit" or "miss".
func (m *Metrics) RecordCacheLookup(outcome string) {
	m.CacheHitsTotal.WithLabelValues(outcome).Inc()
}

// ObserveExportDuration records export pipeline duration.
func (m *Metrics) ObserveExportDuration(format string, seconds float64) {
	m.ExportDuration.WithLabelValues(format).Observe(seconds)
}

// ObservePlanPages records the size of a built page plan.
func (m *Metrics) ObservePlanPages(pages int) {
	m.PlanPages.Observe(float64(pages))
}

// ObserveArtifactBytes records a rendered artifact's size.
func (m *Metrics) ObserveArtifactBytes(format string, bytes int) {
	m.ArtifactBytes.WithLabelValues(format).Observe(float64(bytes))
}
