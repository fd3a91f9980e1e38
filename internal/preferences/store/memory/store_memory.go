// Package memory provides an in-memory preference store for tests and for
// running without a Redis backend.
package memory

import (
	"context"
	"sync"

	"certflow/internal/preferences"
	id "certflow/pkg/domain"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	prefs map[id.UserID]preferences.Preferences
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{prefs: make(map[id.UserID]preferences.Preferences)}
}

func (s *InMemoryStore) Get(_ context.Context, userID id.UserID) preferences.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs[userID]
}

func (s *InMemoryStore) Merge(_ context.Context, userID id.UserID, patch preferences.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.prefs[userID]
	current.Apply(patch)
	s.prefs[userID] = current
	return nil
}
