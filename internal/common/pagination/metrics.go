package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of pagination requests.
	// Labels: status (HTTP status code), offset_range (offset bucket)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"status", "offset_range"},
	)

	// DurationSeconds tracks request duration distribution.
	// Labels: operation (handler, service, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "post_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// TotalCount tracks the current total number of published posts.
	// This is updated on each COUNT query.
	TotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "post_total_count",
			Help: "Current total number of published posts",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, database, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(statusCode int, offset int) {
	RequestsTotal.WithLabelValues(
		fmt.Sprintf("%d", statusCode),
		getOffsetRangeBucket(offset),
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// UpdateTotalCount updates the published post count gauge.
func UpdateTotalCount(count int64) {
	TotalCount.Set(float64(count))
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database", "timeout"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getOffsetRangeBucket returns the offset range bucket for a given offset.
// Deep offsets are increasingly expensive for the store, so they get their
// own buckets for monitoring.
func getOffsetRangeBucket(offset int) string {
	switch {
	case offset < 100:
		return "0-99"
	case offset < 1000:
		return "100-999"
	case offset < 5000:
		return "1000-4999"
	default:
		return "5000+"
	}
}
