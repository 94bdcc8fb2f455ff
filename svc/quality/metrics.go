package quality

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the scanner.
type Metrics struct {
	// Last observed number of failing records per check
	FailingRecords *prometheus.GaugeVec

	// Last observed number of records in the directory
	TotalRecords prometheus.Gauge

	// Rows selected by SQL that the validator accepted
	PredicateDrift *prometheus.CounterVec

	// Store query latency by operation
	QueryLatency *prometheus.HistogramVec
}

// NewMetrics registers the scanner metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FailingRecords: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "directory_quality_failing_records",
			Help: "Number of therapist records failing a data-quality check at the last count",
		}, []string{"check"}),

		TotalRecords: f.NewGauge(prometheus.GaugeOpts{
			Name: "directory_quality_records",
			Help: "Number of therapist records at the last summary",
		}),

		PredicateDrift: f.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_quality_predicate_drift_total",
			Help: "Rows returned by a check query that the field validator accepted",
		}, []string{"check"}),

		QueryLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directory_quality_query_duration_seconds",
			Help:    "Duration of data-quality store queries",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}), // operation: "scan", "count", "summary"
	}
}

// SetFailing records the failing count of a check.
func (m *Metrics) SetFailing(check string, n int64) {
	if m != nil {
		m.FailingRecords.WithLabelValues(check).Set(float64(n))
	}
}

// SetTotal records the directory size.
func (m *Metrics) SetTotal(n int64) {
	if m != nil {
		m.TotalRecords.Set(float64(n))
	}
}

// IncrementDrift counts one row dropped by re-verification.
func (m *Metrics) IncrementDrift(check string) {
	if m != nil {
		m.PredicateDrift.WithLabelValues(check).Inc()
	}
}

// ObserveQuery records the duration of a store query.
func (m *Metrics) ObserveQuery(operation string, d time.Duration) {
	if m != nil {
		m.QueryLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
