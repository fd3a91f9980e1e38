// Package metrics holds the Prometheus collectors for the application core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the wizard service.
type Metrics struct {
	ApplicationsSubmitted prometheus.Counter
	SubmissionFailures    *prometheus.CounterVec
	GateFailures          *prometheus.CounterVec
	EligibilityRejections prometheus.Counter
	PreferenceSaveErrors  prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ApplicationsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "certflow_applications_submitted_total",
			Help: "Total number of certification applications submitted",
		}),
		SubmissionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "certflow_submission_failures_total",
			Help: "Submission attempts rejected, by reason",
		}, []string{"reason"}),
		GateFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "certflow_step_gate_failures_total",
			Help: "Forward transitions blocked by a step gate, by step",
		}, []string{"step"}),
		EligibilityRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "certflow_program_eligibility_rejections_total",
			Help: "Program selections rejected by the eligibility policy",
		}),
		PreferenceSaveErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "certflow_preference_save_errors_total",
			Help: "Fire-and-forget preference writes that failed",
		}),
	}
}

// NewForTest creates metrics on a private registry so parallel test
// packages do not collide on promauto's default registerer.
func NewForTest() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		ApplicationsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "certflow_applications_submitted_total",
			Help: "Total number of certification applications submitted",
		}),
		SubmissionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "certflow_submission_failures_total",
			Help: "Submission attempts rejected, by reason",
		}, []string{"reason"}),
		GateFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "certflow_step_gate_failures_total",
			Help: "Forward transitions blocked by a step gate, by step",
		}, []string{"step"}),
		EligibilityRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "certflow_program_eligibility_rejections_total",
			Help: "Program selections rejected by the eligibility policy",
		}),
		PreferenceSaveErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "certflow_preference_save_errors_total",
			Help: "Fire-and-forget preference writes that failed",
		}),
	}
}
