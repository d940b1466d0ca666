package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blotterhq/blotter/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.ArchiveStore using Redis.
//
// Trails are frozen data: each archived trail is a JSON blob plus a ZSET
// index entry used for listing and lazy expiry cleanup.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for archived trails.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for archived trails.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis archive store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis archive store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "blotter:trail:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists a trail to Redis.
func (s *Store) Save(ctx context.Context, name string, trail []domain.TradeAction) error {
	data, err := json.Marshal(trail)
	if err != nil {
		return fmt.Errorf("failed to marshal trail: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(name), data, s.ttl)

	// Index score = expiry instant; infinite trails sort far in the future.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: name,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save trail to redis: %w", err)
	}
	return nil
}

// Load retrieves a trail from Redis.
func (s *Store) Load(ctx context.Context, name string) ([]domain.TradeAction, error) {
	val, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrTrailNotFound
		}
		return nil, fmt.Errorf("failed to get trail from redis: %w", err)
	}

	var trail []domain.TradeAction
	if err := json.Unmarshal([]byte(val), &trail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trail: %w", err)
	}
	return trail, nil
}

// Delete removes an archived trail.
func (s *Store) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns archived trail names, pruning expired index entries lazily.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired trails: %w", err)
	}

	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list trails: %w", err)
	}
	return names, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
