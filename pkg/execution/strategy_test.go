package execution_test

import (
	"context"
	"testing"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/execution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTWAP_EvenSplitWithRemainder(t *testing.T) {
	slices := execution.TWAP{Slices: 5}.Plan("AAPL", 10_003, 185.50)

	require.Len(t, slices, 5)
	var total int64
	for _, s := range slices {
		total += s.Quantity
	}
	assert.EqualValues(t, 10_003, total)
	assert.EqualValues(t, 2003, slices[4].Quantity, "last slice absorbs the remainder")
}

func TestVWAP_Participation(t *testing.T) {
	slices := execution.VWAP{ParticipationRate: 0.1}.Plan("MSFT", 5_000, 420.00)

	require.Len(t, slices, 1)
	assert.EqualValues(t, 500, slices[0].Quantity)
}

func TestIceberg_VisibleChunks(t *testing.T) {
	slices := execution.Iceberg{VisibleQty: 300}.Plan("NVDA", 1_000, 890.50)

	require.Len(t, slices, 4)
	assert.EqualValues(t, 300, slices[0].Quantity)
	assert.EqualValues(t, 100, slices[3].Quantity)
}

func TestOrder_SwapStrategy(t *testing.T) {
	order := execution.NewOrder("AAPL", 10_000, 185.50, execution.TWAP{Slices: 5})
	assert.Equal(t, "TWAP", order.Strategy())

	plan, err := order.Send()
	require.NoError(t, err)
	assert.Len(t, plan, 5)

	order.SetStrategy(execution.Iceberg{VisibleQty: 4_000})
	assert.Equal(t, "Iceberg", order.Strategy())

	plan, err = order.Send()
	require.NoError(t, err)
	assert.Len(t, plan, 3)
}

func TestOrder_NoStrategy(t *testing.T) {
	order := execution.NewOrder("AAPL", 100, 185.50, nil)
	_, err := order.Send()
	assert.Error(t, err)
}

func TestSlices_FeedTheJournal(t *testing.T) {
	desk, err := blotter.New()
	require.NoError(t, err)
	p := domain.NewPortfolio(10_000_000)
	ctx := context.Background()

	order := execution.NewOrder("AAPL", 1_000, 185.50, execution.TWAP{Slices: 4})
	plan, err := order.Send()
	require.NoError(t, err)

	for _, s := range plan {
		require.NoError(t, desk.Execute(ctx, s.Action(domain.KindBuy), p))
	}
	assert.EqualValues(t, 1_000, p.Position("AAPL"))
	assert.Equal(t, 4, desk.Len())

	// Child fills undo individually, like any other journal action.
	ok, err := desk.Undo(ctx, p)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 750, p.Position("AAPL"))
}
