// Package store defines persistence for submitted applications.
package store

import (
	"context"

	"certflow/internal/application/models"
	id "certflow/pkg/domain"
)

// ApplicationStore persists submitted application records. Insert returns
// a conflict error when the applicant already has a submitted application
// for the same role.
type ApplicationStore interface {
	Insert(ctx context.Context, application *models.Application) error
	ListByUser(ctx context.Context, userID id.UserID) ([]models.Application, error)
}
