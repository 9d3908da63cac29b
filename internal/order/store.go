package order

import (
	"sync"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// Store is the process-wide append-only order log. Orders are never
// mutated or deleted within the process lifetime.
type Store struct {
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[string]*domain.Order
}

func NewStore() *Store {
	return &Store{
		byID: make(map[string]*domain.Order),
	}
}

func (s *Store) Append(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	s.byID[o.OrderID] = o
}

func (s *Store) Get(orderID string) (*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.byID[orderID]
	return o, exists
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
