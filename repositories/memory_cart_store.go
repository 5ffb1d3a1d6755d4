package repositories

import (
	"context"
	"sync"

	"easygames/models"
)

// MemoryCartStore is the Redis-less CartStore: a plain keyed map guarded by
// a mutex. Used in tests and when no Redis instance is configured.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]models.CartLine)}
}

func (s *MemoryCartStore) Load(_ context.Context, sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return &models.Cart{}, nil
	}

	lines := make([]models.CartLine, len(stored))
	copy(lines, stored)
	return &models.Cart{Lines: lines}, nil
}

func (s *MemoryCartStore) Save(_ context.Context, sessionID string, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	s.carts[sessionID] = lines
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
