// Package session defines persistence for in-progress wizard sessions.
package session

import (
	"context"

	"certflow/internal/wizard/models"
	id "certflow/pkg/domain"
)

// Store persists one wizard session per applicant. Get returns a not_found
// error when no session exists; the wizard seeds a fresh one in that case.
type Store interface {
	Get(ctx context.Context, userID id.UserID) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, userID id.UserID) error
}
