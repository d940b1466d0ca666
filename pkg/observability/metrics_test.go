package observability_test

import (
	"context"
	"testing"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherCounter(t *testing.T, reg *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue == "" && len(m.GetLabel()) == 0 {
				if m.GetGauge() != nil {
					return m.GetGauge().GetValue()
				}
				return m.GetCounter().GetValue()
			}
			for _, l := range m.GetLabel() {
				if l.GetValue() == labelValue {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestMetrics_CountsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	desk, err := blotter.New(blotter.WithHooks(metrics.Hooks()))
	require.NoError(t, err)

	ctx := context.Background()
	p := domain.NewPortfolio(1_000_000)

	require.NoError(t, desk.Execute(ctx, domain.Buy("AAPL", 100, 185.50), p))
	require.NoError(t, desk.Execute(ctx, domain.Buy("GOOGL", 50, 140.25), p))
	_, err = desk.Undo(ctx, p)
	require.NoError(t, err)
	desk.Snapshot(ctx)

	// One rejection: not enough cash.
	err = desk.Execute(ctx, domain.Buy("BRK.A", 1_000, 700_000), p)
	require.ErrorIs(t, err, domain.ErrInsufficientCash)

	assert.EqualValues(t, 2, gatherCounter(t, reg, "blotter_journal_operations_total", "execute"))
	assert.EqualValues(t, 1, gatherCounter(t, reg, "blotter_journal_operations_total", "undo"))
	assert.EqualValues(t, 1, gatherCounter(t, reg, "blotter_journal_operations_total", "snapshot"))
	assert.EqualValues(t, 1, gatherCounter(t, reg, "blotter_journal_rejections_total", "buy"))
	assert.EqualValues(t, 1, gatherCounter(t, reg, "blotter_journal_trail_length", ""))
}
