// Package memory provides an in-memory profile store for tests and for
// running without a database.
package memory

import (
	"context"
	"sync"

	"certflow/internal/profile/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID]models.Profile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.UserID]models.Profile)}
}

func (s *InMemoryStore) Get(_ context.Context, userID id.UserID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
	}
	copied := profile
	return &copied, nil
}

func (s *InMemoryStore) Save(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = *profile
	return nil
}
