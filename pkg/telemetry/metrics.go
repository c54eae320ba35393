package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/veldt-labs/detent/pkg/domain"
)

// Metrics exposes the machine lifecycle as Prometheus collectors.
type Metrics struct {
	entries    *prometheus.CounterVec
	dwell      *prometheus.HistogramVec
	rejections *prometheus.CounterVec
}

// NewMetrics creates and registers the lifecycle collectors.
// Pass prometheus.DefaultRegisterer for the usual global registry, or a
// private registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detent_state_entries_total",
				Help: "Total number of state entries, by state.",
			},
			[]string{"state"},
		),
		dwell: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "detent_state_dwell_seconds",
				Help: "Time spent in a state per occupancy.",
			},
			[]string{"state"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detent_transition_rejections_total",
				Help: "Total number of rejected transitions, by state and operation.",
			},
			[]string{"state", "op"},
		),
	}
	reg.MustRegister(m.entries, m.dwell, m.rejections)
	return m
}

// Hooks adapts the metrics into lifecycle callbacks.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnEnter: func(e *domain.EnterEvent) {
			m.entries.WithLabelValues(e.State).Inc()
		},
		OnExit: func(e *domain.ExitEvent) {
			m.dwell.WithLabelValues(e.State).Observe(e.Dwell.Seconds())
		},
		OnReject: func(e *domain.RejectEvent) {
			m.rejections.WithLabelValues(e.State, string(e.Op)).Inc()
		},
	}
}
