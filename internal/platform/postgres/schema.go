package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full database layout, applied idempotently on startup.
// The partial unique index enforces one submitted application per
// applicant and role; resubmission after a rejection stays possible.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	first_name TEXT NOT NULL DEFAULT '',
	last_name  TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS applications (
	id                       TEXT PRIMARY KEY,
	user_id                  TEXT NOT NULL,
	role_id                  TEXT NOT NULL,
	industry                 TEXT NOT NULL,
	certification_level      TEXT NOT NULL,
	total_experience_years   INTEGER NOT NULL,
	segment_experience_years INTEGER NOT NULL,
	status                   TEXT NOT NULL,
	created_at               TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS applications_user_role_submitted
	ON applications (user_id, role_id)
	WHERE status = 'submitted';

CREATE TABLE IF NOT EXISTS programs (
	id             TEXT PRIMARY KEY,
	provider_name  TEXT NOT NULL,
	program_name   TEXT NOT NULL,
	url            TEXT NOT NULL DEFAULT '',
	required_level TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS roles (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS courses (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS outbox (
	id             TEXT PRIMARY KEY,
	aggregate_type TEXT NOT NULL,
	aggregate_id   TEXT NOT NULL,
	event_type     TEXT NOT NULL,
	payload        JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	published_at   TIMESTAMPTZ
);
`

// EnsureSchema applies the schema. Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
