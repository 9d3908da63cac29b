package cart

import "sync"

// Store hands out one cart per session id. It stands in for the session
// layer of the routing tier, which is outside this module.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// GetOrCreate returns the session's cart, creating an empty one on
// first use.
func (s *Store) GetOrCreate(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, exists := s.carts[sessionID]; exists {
		return c
	}
	c := New()
	s.carts[sessionID] = c
	return c
}

// Delete drops the session's cart entirely.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
