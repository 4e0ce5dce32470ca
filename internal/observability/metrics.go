package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// simulation service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: route={simulate,story,save}, outcome={ok,client_error,server_error}
	RequestDuration *prometheus.HistogramVec // labels: route

	// NEO enrichment metrics.
	NeoLookups     *prometheus.CounterVec // labels: outcome={success,not_found,transport_error,decode_error}
	NeoCache       *prometheus.CounterVec // labels: result={hit,miss}
	NeoAPIDuration prometheus.Histogram
	NeoEnabled     prometheus.Gauge

	// Persistence metrics.
	RecordsSaved     prometheus.Counter
	RecordSaveErrors prometheus.Counter
	SaveEnabled      prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "requests_total",
			Help:      "API requests by route and outcome.",
		}, []string{"route", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "impact_sim",
			Name:      "request_duration_seconds",
			Help:      "End-to-end request handling duration.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		NeoLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "neo_lookups_total",
			Help:      "NEO catalog lookups by outcome.",
		}, []string{"outcome"}),
		NeoCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "neo_cache_total",
			Help:      "NEO cache lookups by result.",
		}, []string{"result"}),
		NeoAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "impact_sim",
			Name:      "neo_api_duration_seconds",
			Help:      "NeoWs API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		NeoEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "impact_sim",
			Name:      "neo_enabled",
			Help:      "1 when NEO enrichment is enabled, 0 otherwise.",
		}),
		RecordsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "records_saved_total",
			Help:      "Raw payloads persisted to the record store.",
		}),
		RecordSaveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "record_save_errors_total",
			Help:      "Failed record store writes.",
		}),
		SaveEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "impact_sim",
			Name:      "save_enabled",
			Help:      "1 when persistence is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.NeoLookups,
		m.NeoCache,
		m.NeoAPIDuration,
		m.NeoEnabled,
		m.RecordsSaved,
		m.RecordSaveErrors,
		m.SaveEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RequestsTotal:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impact_sim", Name: "requests_total"}, []string{"route", "outcome"}),
		RequestDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "impact_sim", Name: "request_duration_seconds"}, []string{"route"}),
		NeoLookups:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impact_sim", Name: "neo_lookups_total"}, []string{"outcome"}),
		NeoCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impact_sim", Name: "neo_cache_total"}, []string{"result"}),
		NeoAPIDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "impact_sim", Name: "neo_api_duration_seconds"}),
		NeoEnabled:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "impact_sim", Name: "neo_enabled"}),
		RecordsSaved:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "impact_sim", Name: "records_saved_total"}),
		RecordSaveErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "impact_sim", Name: "record_save_errors_total"}),
		SaveEnabled:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "impact_sim", Name: "save_enabled"}),
	}
}
