// Package memory provides an in-memory session store for tests and for
// running without a Redis backend.
package memory

import (
	"context"
	"sync"

	"certflow/internal/wizard/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[id.UserID]models.Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[id.UserID]models.Session)}
}

func (s *InMemoryStore) Get(_ context.Context, userID id.UserID) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "wizard session not found")
	}
	copied := session
	return &copied, nil
}

func (s *InMemoryStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = *session
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
