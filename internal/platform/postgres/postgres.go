// Package postgres opens the database handles used by the stores. Domain
// stores use the pgx pool; the audit outbox keeps a database/sql handle for
// the relay's transactional scans.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

// Handles bundles both connection styles against the same database.
type Handles struct {
	Pool *pgxpool.Pool
	DB   *sql.DB
}

// Open connects to postgres. Returns nil if the DSN is empty (postgres not
// configured; the server runs on in-memory stores).
func Open(ctx context.Context, dsn string) (*Handles, error) {
	if dsn == "" {
		return nil, nil
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open database/sql handle: %w", err)
	}

	return &Handles{Pool: pool, DB: db}, nil
}

// Close releases both handles.
func (h *Handles) Close() {
	if h == nil {
		return
	}
	h.Pool.Close()
	_ = h.DB.Close()
}
