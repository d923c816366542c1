package cart

import "sync"

// Store holds the active carts, one per signed-in user. Carts are created
// on demand and reset on login, so each session starts from scratch.
type Store struct {
	mu    sync.RWMutex
	carts map[uint]*Cart
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{carts: make(map[uint]*Cart)}
}

// Get returns the cart for userID, creating an empty one if needed
func (s *Store) Get(userID uint) *Cart {
	s.mu.RLock()
	c, ok := s.carts[userID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[userID]; ok {
		return c
	}
	c = New()
	s.carts[userID] = c
	return c
}

// Reset discards any existing cart for userID and starts a fresh one
func (s *Store) Reset(userID uint) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := New()
	s.carts[userID] = c
	return c
}
