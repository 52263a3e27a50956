package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the scoring
// service.
type Metrics struct {
	ScoreRequests    *prometheus.CounterVec   // labels: species, outcome={ok,unknown_species,bad_request}
	ScoreValue       *prometheus.HistogramVec // labels: species
	ScoreDuration    *prometheus.HistogramVec // labels: species
	UnsafeResults    *prometheus.CounterVec   // labels: species
	GatekeeperHits   *prometheus.CounterVec   // labels: species, gatekeeper
	BatchRequests    prometheus.Counter
	BatchDuration    prometheus.Histogram
	BatchBatchSize   prometheus.Histogram
	RequestsInFlight prometheus.Gauge
}

// NewMetrics creates and registers all scoring metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ScoreRequests,
		m.ScoreValue,
		m.ScoreDuration,
		m.UnsafeResults,
		m.GatekeeperHits,
		m.BatchRequests,
		m.BatchDuration,
		m.BatchBatchSize,
		m.RequestsInFlight,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ScoreRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "score_requests_total",
			Help:      "Score requests by species and outcome.",
		}, []string{"species", "outcome"}),
		ScoreValue: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fishcast",
			Name:      "score_value",
			Help:      "Distribution of final scores on the 0-10 scale.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		}, []string{"species"}),
		ScoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fishcast",
			Name:      "score_duration_seconds",
			Help:      "Duration of a single species evaluation.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"species"}),
		UnsafeResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "unsafe_results_total",
			Help:      "Evaluations that produced safety warnings, by species.",
		}, []string{"species"}),
		GatekeeperHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "gatekeeper_hits_total",
			Help:      "Evaluations short-circuited by a gatekeeper.",
		}, []string{"species", "gatekeeper"}),
		BatchRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fishcast",
			Name:      "batch_requests_total",
			Help:      "All-species batch score requests.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fishcast",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a complete all-species batch evaluation.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		BatchBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fishcast",
			Name:      "batch_size",
			Help:      "Number of species evaluated per batch request.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fishcast",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
	}
}

// ObserveResult records the metrics derived from one completed evaluation.
func (m *Metrics) ObserveResult(species string, total float64, safe bool, gatekeeper string, seconds float64) {
	m.ScoreRequests.WithLabelValues(species, "ok").Inc()
	m.ScoreValue.WithLabelValues(species).Observe(total)
	m.ScoreDuration.WithLabelValues(species).Observe(seconds)
	if !safe {
		m.UnsafeResults.WithLabelValues(species).Inc()
	}
	if gatekeeper != "" {
		m.GatekeeperHits.WithLabelValues(species, gatekeeper).Inc()
	}
}
