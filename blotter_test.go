package blotter_test

import (
	"context"
	"testing"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/pkg/adapters/memory"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesk_Integration(t *testing.T) {
	store := memory.NewStore()

	var events []domain.EventType
	hooks := domain.JournalHooks{
		OnExecute:  func(_ context.Context, e *domain.JournalEvent) { events = append(events, e.Type) },
		OnUndo:     func(_ context.Context, e *domain.JournalEvent) { events = append(events, e.Type) },
		OnRedo:     func(_ context.Context, e *domain.JournalEvent) { events = append(events, e.Type) },
		OnSnapshot: func(_ context.Context, e *domain.JournalEvent) { events = append(events, e.Type) },
		OnRejected: func(_ context.Context, e *domain.JournalEvent) { events = append(events, e.Type) },
	}

	desk, err := blotter.New(blotter.WithArchive(store), blotter.WithHooks(hooks))
	require.NoError(t, err)

	ctx := context.Background()
	portfolio := domain.NewPortfolio(1_000_000)

	require.NoError(t, desk.Execute(ctx, domain.Buy("AAPL", 100, 185.50), portfolio))
	require.NoError(t, desk.Execute(ctx, domain.Buy("GOOGL", 50, 140.25), portfolio))

	ok, err := desk.Undo(ctx, portfolio)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, desk.Archive(ctx, "mid-session"))

	require.NoError(t, desk.Execute(ctx, domain.Sell("AAPL", 50, 190.00), portfolio))

	// The archived trail is frozen at one action.
	archived, err := store.Load(ctx, "mid-session")
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, domain.Buy("AAPL", 100, 185.50), archived[0])

	// Replaying the archived trail reproduces the mid-session state.
	fresh := domain.NewPortfolio(1_000_000)
	for _, a := range archived {
		require.NoError(t, domain.Apply(a, fresh))
	}
	assert.InDelta(t, 981_450.00, fresh.Cash(), 0.001)

	ok, err = desk.Redo(ctx, portfolio)
	require.NoError(t, err)
	assert.False(t, ok, "redo after a new branch must be a no-op")

	assert.Equal(t, []domain.EventType{
		domain.EventExecute,
		domain.EventExecute,
		domain.EventUndo,
		domain.EventSnapshot, // Archive snapshots internally
		domain.EventExecute,
	}, events)
}

func TestDesk_ArchiveWithoutStore(t *testing.T) {
	desk, err := blotter.New()
	require.NoError(t, err)

	err = desk.Archive(context.Background(), "nope")
	assert.ErrorIs(t, err, blotter.ErrNoArchive)
}

func TestDesk_RejectionEmitsHook(t *testing.T) {
	var rejected []domain.JournalEvent
	desk, err := blotter.New(blotter.WithHooks(domain.JournalHooks{
		OnRejected: func(_ context.Context, e *domain.JournalEvent) { rejected = append(rejected, *e) },
	}))
	require.NoError(t, err)

	p := domain.NewPortfolio(100)
	err = desk.Execute(context.Background(), domain.Buy("AAPL", 10, 100), p)
	require.ErrorIs(t, err, domain.ErrInsufficientCash)

	require.Len(t, rejected, 1)
	assert.Equal(t, domain.KindBuy, rejected[0].Action.Kind)
	assert.ErrorIs(t, rejected[0].Err, domain.ErrInsufficientCash)
	assert.Equal(t, 0, desk.Len())
}
