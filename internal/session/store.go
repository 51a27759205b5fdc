// Package session holds the current authenticated identity for one user
// session and lets dependents react to sign-in and sign-out.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Identity is the reference a signed-in session carries. Business data
// (profile, activities) lives behind the store gateway, not here.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Store is an explicit handle injected into components that need the
// current identity. The identity is swapped whole under the lock, so an
// observer sees either the previous identity or the new one, never a
// half-written mix.
type Store struct {
	mu       sync.RWMutex
	current  *Identity
	handlers []func(Identity, bool)
}

func New() *Store {
	return &Store{}
}

// Current returns the signed-in identity, if any.
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}

// Set records a completed sign-in and notifies observers.
func (s *Store) Set(id Identity) {
	s.mu.Lock()
	s.current = &id
	handlers := append([]func(Identity, bool){}, s.handlers...)
	s.mu.Unlock()

	for _, h := range handlers {
		h(id, true)
	}
}

// Clear records a sign-out and notifies observers.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	handlers := append([]func(Identity, bool){}, s.handlers...)
	s.mu.Unlock()

	for _, h := range handlers {
		h(Identity{}, false)
	}
}

// OnChange registers a handler invoked after every sign-in or sign-out.
// The bool reports whether an identity is present.
func (s *Store) OnChange(h func(Identity, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, h)
}
