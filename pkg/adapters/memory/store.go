package memory

import (
	"context"
	"sync"

	"github.com/blotterhq/blotter/pkg/domain"
)

// Store implements ports.ArchiveStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]domain.TradeAction
	mu   sync.RWMutex
}

// NewStore creates a new in-memory archive store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]domain.TradeAction),
	}
}

// Save persists a trail in memory.
func (s *Store) Save(ctx context.Context, name string, trail []domain.TradeAction) error {
	// Copy on write so the caller's slice stays independent of the store.
	stored := make([]domain.TradeAction, len(trail))
	copy(stored, trail)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = stored
	return nil
}

// Load retrieves a trail from memory.
func (s *Store) Load(ctx context.Context, name string) ([]domain.TradeAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trail, ok := s.data[name]
	if !ok {
		return nil, domain.ErrTrailNotFound
	}

	// Copy on read so the caller can't mutate stored trails by aliasing.
	out := make([]domain.TradeAction, len(trail))
	copy(out, trail)
	return out, nil
}

// Delete removes a trail.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the names of archived trails.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}
