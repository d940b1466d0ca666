package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/blotterhq/blotter/pkg/adapters/redis"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunArchiveStoreContract(t, store)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	trail := []domain.TradeAction{domain.Buy("AAPL", 1, 100)}
	require.NoError(t, store.Save(ctx, "ephemeral", trail))

	mr.FastForward(2 * time.Second)

	_, err := store.Load(ctx, "ephemeral")
	assert.ErrorIs(t, err, domain.ErrTrailNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "t1", []domain.TradeAction{domain.Buy("AAPL", 1, 100)}))
	assert.True(t, mr.Exists("custom:t1"))
}
