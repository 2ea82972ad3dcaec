package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes Prometheus metrics for upstream fetches and analytics.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	rowsKept      *prometheus.GaugeVec
	errorsTotal   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "housepulse_upstream_fetches_total",
				Help: "Total upstream CSV fetches by provider, dataset and outcome",
			},
			[]string{"provider", "dataset", "outcome"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "housepulse_upstream_fetch_duration_seconds",
				Help:    "Duration of upstream CSV fetches in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90},
			},
			[]string{"provider", "dataset"},
		),
		rowsKept: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "housepulse_dataset_rows_kept",
				Help: "Rows surviving the cleaning pass of the last fetch",
			},
			[]string{"provider", "dataset"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "housepulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "housepulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records a completed upstream fetch.
func (r *Recorder) RecordFetch(provider, dataset, outcome string, seconds float64) {
	r.fetchesTotal.WithLabelValues(provider, dataset, outcome).Inc()
	r.fetchDuration.WithLabelValues(provider, dataset).Observe(seconds)
}

// RecordRowsKept records how many rows survived cleaning.
func (r *Recorder) RecordRowsKept(provider, dataset string, rows int) {
	r.rowsKept.WithLabelValues(provider, dataset).Set(float64(rows))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
