package remediation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Edit outcomes used as metric labels.
const (
	OutcomeApplied     = "applied"
	OutcomeRejected    = "rejected"
	OutcomeNotEditable = "not_editable"
	OutcomeNotFound    = "not_found"
	OutcomeFailed      = "failed"
)

// Metrics provides observability for inline edits.
type Metrics struct {
	// Edits by field and outcome
	Edits *prometheus.CounterVec
}

// NewMetrics registers the remediation metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Edits: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "directory_remediation_edits_total",
			Help: "Inline field edits by field and outcome",
		}, []string{"field", "outcome"}),
	}
}

// IncrementEdit records one edit attempt.
func (m *Metrics) IncrementEdit(field, outcome string) {
	if m != nil {
		m.Edits.WithLabelValues(field, outcome).Inc()
	}
}
