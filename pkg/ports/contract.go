package ports

import (
	"context"
	"testing"
	"time"

	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunArchiveStoreContract runs a suite of tests to verify that an
// ArchiveStore implementation adheres to the defined interface contract.
func RunArchiveStoreContract(t *testing.T, store ArchiveStore) {
	ctx := context.Background()
	name := "contract-test-trail-" + time.Now().Format("20060102150405")

	trail := []domain.TradeAction{
		domain.Buy("AAPL", 100, 185.50),
		domain.Sell("AAPL", 40, 190.00),
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, trail)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, trail, loaded)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, trail))

		first, err := store.Load(ctx, name)
		require.NoError(t, err)
		first[0].Symbol = "MUTATED"

		second, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "AAPL", second[0].Symbol, "mutating a loaded trail must not affect the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrTrailNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, trail))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrTrailNotFound, "Load after Delete should return ErrTrailNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, id1, trail))
		require.NoError(t, store.Save(ctx, id2, trail))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
	})
}
