package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions keeps one Cart per browsing session, keyed by an opaque uuid.
// Carts live in process memory and vanish on restart; there is nothing to
// persist in this scope.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*Cart)}
}

// Update runs fn against the cart for id under the registry lock, minting
// a fresh session when id is empty or unknown, and returns the session id
// actually used. fn must not retain the *Cart past its return.
func (s *Sessions) Update(id string, fn func(c *Cart)) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		if id == "" {
			id = uuid.NewString()
		}
		c = New()
		s.carts[id] = c
	}

	fn(c)
	return id
}

// View runs fn against the cart for id, or against a throwaway empty cart
// when id is unknown. Unlike Update it never stores anything, so read-only
// callers cannot grow the registry.
func (s *Sessions) View(id string, fn func(c *Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		c = New()
	}
	fn(c)
}

// Drop discards the session entirely.
func (s *Sessions) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
