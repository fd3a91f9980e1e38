// Package memory provides an in-memory application store for tests and for
// running without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"certflow/internal/application/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

type InMemoryStore struct {
	mu           sync.RWMutex
	applications map[id.ApplicationID]models.Application
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{applications: make(map[id.ApplicationID]models.Application)}
}

func (s *InMemoryStore) Insert(_ context.Context, application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.applications {
		if existing.UserID == application.UserID && existing.RoleID == application.RoleID &&
			existing.Status == models.StatusSubmitted {
			return dErrors.New(dErrors.CodeConflict, "an application for this role has already been submitted")
		}
	}
	s.applications[application.ID] = *application
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Application
	for _, a := range s.applications {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
