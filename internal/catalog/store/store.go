// Package store defines read access to the program, role and course
// catalogs.
package store

import (
	"context"

	"certflow/internal/catalog/models"
	id "certflow/pkg/domain"
)

// CatalogStore reads the catalogs the wizard renders. ListPrograms returns
// programs ordered by provider name; GetProgram returns a not_found error
// for unknown IDs.
type CatalogStore interface {
	ListPrograms(ctx context.Context) ([]models.Program, error)
	GetProgram(ctx context.Context, programID id.ProgramID) (*models.Program, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}
