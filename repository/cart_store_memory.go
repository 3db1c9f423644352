package repository

import (
	"context"
	"sync"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
)

// MemoryCartStore backs tests and redis-less local runs.
type MemoryCartStore struct {
	mu       sync.Mutex
	carts    map[string]entity.Cart
	lastSent map[string]int64
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts:    make(map[string]entity.Cart),
		lastSent: make(map[string]int64),
	}
}

func (s *MemoryCartStore) Get(_ context.Context, sessionID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		cp := c
		cp.Items = append([]entity.CartItem(nil), c.Items...)
		return &cp, nil
	}
	return &entity.Cart{SessionID: sessionID}, nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.UpdatedAt = time.Now()
	cp := *cart
	cp.Items = append([]entity.CartItem(nil), cart.Items...)
	s.carts[cart.SessionID] = cp
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

func (s *MemoryCartStore) LastSent(_ context.Context, sessionID string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unix, ok := s.lastSent[sessionID]
	return unix, ok, nil
}

func (s *MemoryCartStore) MarkSent(_ context.Context, sessionID string, unix int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSent[sessionID] = unix
	return nil
}
