// Package postgres persists submitted applications in Postgres.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"certflow/internal/application/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

// uniqueViolation is the Postgres error code raised by the partial unique
// index on (user_id, role_id) for submitted applications.
const uniqueViolation = "23505"

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Insert(ctx context.Context, application *models.Application) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO applications
			(id, user_id, role_id, industry, certification_level,
			 total_experience_years, segment_experience_years, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		application.ID.String(), application.UserID.String(), application.RoleID,
		application.Industry, application.CertificationLevel,
		application.TotalExperienceYears, application.SegmentExperienceYears,
		application.Status, application.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return dErrors.New(dErrors.CodeConflict, "an application for this role has already been submitted")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to insert application")
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]models.Application, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, role_id, industry, certification_level,
		       total_experience_years, segment_experience_years, status, created_at
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID.String())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list applications")
	}
	defer rows.Close()

	var applications []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.RoleID, &a.Industry, &a.CertificationLevel,
			&a.TotalExperienceYears, &a.SegmentExperienceYears, &a.Status, &a.CreatedAt); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to scan application")
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list applications")
	}
	return applications, nil
}
