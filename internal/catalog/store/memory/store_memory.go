// Package memory provides an in-memory catalog store, pre-populated with
// seed data when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"certflow/internal/catalog/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	programs map[id.ProgramID]models.Program
	roles    []models.Role
	courses  []models.Course
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{programs: make(map[id.ProgramID]models.Program)}
}

// NewSeededStore returns a store populated with the built-in catalog.
func NewSeededStore() *InMemoryStore {
	s := NewInMemoryStore()
	for _, p := range seedPrograms {
		s.programs[p.ID] = p
	}
	s.roles = append(s.roles, seedRoles...)
	s.courses = append(s.courses, seedCourses...)
	return s
}

func (s *InMemoryStore) ListPrograms(_ context.Context) ([]models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	programs := make([]models.Program, 0, len(s.programs))
	for _, p := range s.programs {
		programs = append(programs, p)
	}
	sort.Slice(programs, func(i, j int) bool {
		if programs[i].ProviderName != programs[j].ProviderName {
			return programs[i].ProviderName < programs[j].ProviderName
		}
		return programs[i].ProgramName < programs[j].ProgramName
	})
	return programs, nil
}

func (s *InMemoryStore) GetProgram(_ context.Context, programID id.ProgramID) (*models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	program, ok := s.programs[programID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "program not found")
	}
	return &program, nil
}

func (s *InMemoryStore) ListRoles(_ context.Context) ([]models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roles := make([]models.Role, len(s.roles))
	copy(roles, s.roles)
	return roles, nil
}

func (s *InMemoryStore) ListCourses(_ context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]models.Course, len(s.courses))
	copy(courses, s.courses)
	return courses, nil
}

// AddProgram inserts a program. Used by tests and seeding.
func (s *InMemoryStore) AddProgram(program models.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs[program.ID] = program
}
