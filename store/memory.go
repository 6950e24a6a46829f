package store

import (
	"context"
	"sort"
	"sync"

	"adspanel/models"
)

// MemoryStore keeps records in a process-wide map. It is the default backend:
// ephemeral, no persistence guarantees.
type MemoryStore struct {
	mu     sync.Mutex
	orders map[string]models.OrderRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]models.OrderRecord)}
}

func (s *MemoryStore) Put(ctx context.Context, userID string, fields models.OrderFields, orderID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.orders[userID]
	apply(&rec, userID, fields, orderID)
	s.orders[userID] = rec
	return rec.OrderID, nil
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*models.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.orders[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) All(ctx context.Context) ([]models.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.OrderRecord, 0, len(s.orders))
	for _, rec := range s.orders {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.orders, userID)
	return nil
}
