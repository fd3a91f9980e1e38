// Package postgres loads the program, role and course catalogs from
// Postgres.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"certflow/internal/catalog/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListPrograms(ctx context.Context) ([]models.Program, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, provider_name, program_name, url, required_level
		FROM programs
		ORDER BY provider_name, program_name`)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list programs")
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.ProviderName, &p.ProgramName, &p.URL, &p.RequiredLevel); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to scan program")
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list programs")
	}
	return programs, nil
}

func (s *PostgresStore) GetProgram(ctx context.Context, programID id.ProgramID) (*models.Program, error) {
	var p models.Program
	err := s.pool.QueryRow(ctx, `
		SELECT id, provider_name, program_name, url, required_level
		FROM programs
		WHERE id = $1`, programID).
		Scan(&p.ID, &p.ProviderName, &p.ProgramName, &p.URL, &p.RequiredLevel)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, dErrors.New(dErrors.CodeNotFound, "program not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to load program")
	}
	return &p, nil
}

func (s *PostgresStore) ListRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list roles")
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to scan role")
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list roles")
	}
	return roles, nil
}

func (s *PostgresStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM courses ORDER BY name`)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list courses")
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to scan course")
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list courses")
	}
	return courses, nil
}
