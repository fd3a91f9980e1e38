// Package store defines persistence for applicant profiles.
package store

import (
	"context"

	"certflow/internal/profile/models"
	id "certflow/pkg/domain"
)

// ProfileStore persists applicant profiles. Get returns a not_found error
// for unknown applicants.
type ProfileStore interface {
	Get(ctx context.Context, userID id.UserID) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}
