package observability

import (
	"context"

	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes journal operation counters as Prometheus collectors.
type Metrics struct {
	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
	trailLen   prometheus.Gauge
}

// NewMetrics creates the journal collectors and registers them with the
// given registerer (pass prometheus.DefaultRegisterer for the default).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blotter_journal_operations_total",
				Help: "Total number of journal operations by type",
			},
			[]string{"op"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blotter_journal_rejections_total",
				Help: "Total number of mutations rejected by the portfolio",
			},
			[]string{"kind"},
		),
		trailLen: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "blotter_journal_trail_length",
				Help: "Current number of actions in the audit trail",
			},
		),
	}
	reg.MustRegister(m.operations, m.rejections, m.trailLen)
	return m
}

// Hooks returns journal hooks that feed the collectors. Compose with your
// own hooks if you need both logging and metrics.
func (m *Metrics) Hooks() domain.JournalHooks {
	record := func(op string) func(context.Context, *domain.JournalEvent) {
		return func(_ context.Context, e *domain.JournalEvent) {
			m.operations.WithLabelValues(op).Inc()
			m.trailLen.Set(float64(e.TrailLen))
		}
	}
	return domain.JournalHooks{
		OnExecute:  record("execute"),
		OnUndo:     record("undo"),
		OnRedo:     record("redo"),
		OnSnapshot: record("snapshot"),
		OnRejected: func(_ context.Context, e *domain.JournalEvent) {
			m.rejections.WithLabelValues(string(e.Action.Kind)).Inc()
		},
	}
}
