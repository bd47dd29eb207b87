package landing

import (
	"sync"

	"github.com/dmitrymomot/landing/pkg/carousel"
)

// DefaultMaxSessions bounds the number of carousels driven at once.
const DefaultMaxSessions = 10000

// Sessions holds the carousel controller of every open page, keyed by the
// page's carousel id.
type Sessions struct {
	mu    sync.RWMutex
	max   int
	items map[string]*carousel.Controller
}

// NewSessions returns a registry holding at most max controllers. Zero or
// less uses DefaultMaxSessions.
func NewSessions(max int) *Sessions {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &Sessions{max: max, items: make(map[string]*carousel.Controller)}
}

// Add registers c under id. A reconnecting page replaces its previous
// controller, which is closed.
func (s *Sessions) Add(id string, c *carousel.Controller) error {
	s.mu.Lock()
	prev, exists := s.items[id]
	if !exists && len(s.items) >= s.max {
		s.mu.Unlock()
		return ErrTooManySessions
	}
	s.items[id] = c
	s.mu.Unlock()

	if exists && prev != c {
		_ = prev.Close()
	}
	return nil
}

// Admit reports whether id could be added now. Streams call it before
// opening so a full registry is answered with a status, not an event.
func (s *Sessions) Admit(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, exists := s.items[id]; !exists && len(s.items) >= s.max {
		return ErrTooManySessions
	}
	return nil
}

func (s *Sessions) Get(id string) (*carousel.Controller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[id]
	return c, ok
}

// Remove closes c and drops it if it is still the controller for id.
func (s *Sessions) Remove(id string, c *carousel.Controller) {
	s.mu.Lock()
	if cur, ok := s.items[id]; ok && cur == c {
		delete(s.items, id)
	}
	s.mu.Unlock()
	_ = c.Close()
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// CloseAll closes and drops every controller.
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*carousel.Controller)
	s.mu.Unlock()

	for _, c := range items {
		_ = c.Close()
	}
}
