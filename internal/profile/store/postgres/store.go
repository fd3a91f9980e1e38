// Package postgres persists applicant profiles in Postgres.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"certflow/internal/profile/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	var p models.Profile
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, first_name, last_name, email, phone, updated_at
		FROM profiles
		WHERE user_id = $1`, userID.String()).
		Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to load profile")
	}
	return &p, nil
}

func (s *PostgresStore) Save(ctx context.Context, profile *models.Profile) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name, email, phone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			updated_at = EXCLUDED.updated_at`,
		profile.UserID.String(), profile.FirstName, profile.LastName,
		profile.Email, profile.Phone, profile.UpdatedAt)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to save profile")
	}
	return nil
}
