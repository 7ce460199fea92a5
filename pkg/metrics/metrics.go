// Package metrics provides performance tracking for Nova using Prometheus
// metrics. Collectors are registered automatically via promauto and are
// safe for concurrent use.
//
// Basic usage:
//
//	metrics.RecordsProcessed.WithLabelValues("document", "dot").Add(42)
//
//	timer := metrics.NewTimer()
//	runConversion()
//	metrics.ConversionDuration.WithLabelValues("csv").Observe(timer.Stop().Seconds())
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsProcessed counts input records by input format and flatten
	// policy.
	RecordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_records_processed_total",
			Help: "Total number of input records processed",
		},
		[]string{"format", "policy"},
	)

	// RowsEmitted counts flat rows handed to the destination.
	RowsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_rows_emitted_total",
			Help: "Total number of flat rows emitted to destinations",
		},
		[]string{"destination"},
	)

	// RecordsDropped counts records that produced zero rows, e.g. an empty
	// array at the explode field.
	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_records_dropped_total",
			Help: "Total number of records that produced no output rows",
		},
		[]string{"reason"},
	)

	// ConversionDuration tracks end-to-end conversion latency.
	ConversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nova_conversion_duration_seconds",
			Help:    "End-to-end conversion duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"destination"},
	)
)

// Timer measures elapsed time for an operation.
type Timer struct {
	start time.Time
}

// NewTimer starts a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop returns the elapsed time since the timer started.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
