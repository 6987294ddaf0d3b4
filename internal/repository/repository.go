// Package repository provides the postgres-backed document store.
package repository

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portfolio/portfolio/internal/store"
	"github.com/portfolio/portfolio/migrations"
)

// Repository provides database access methods.
// The schema is applied on first use, so the database may be down when
// the Repository is created.
type Repository struct {
	pool *pgxpool.Pool

	schemaMu    sync.Mutex
	schemaReady bool
}

var _ store.Store = (*Repository)(nil)

// New creates a new Repository with a connection pool.
// The pool connects lazily; only a malformed URL is an error.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Migrate applies every embedded *.up.sql file in name order.
// The schema files are idempotent.
func (r *Repository) Migrate(ctx context.Context) error {
	names, err := fs.Glob(migrations.FS, "*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := r.pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", strings.TrimSuffix(name, ".up.sql"), err)
		}
	}

	return nil
}

// Ping checks database connectivity and applies the schema if it is missing.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w: %w", store.ErrUnavailable, err)
	}
	return r.ensureSchema(ctx)
}

// ensureSchema runs Migrate until it succeeds once.
func (r *Repository) ensureSchema(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()

	if r.schemaReady {
		return nil
	}
	if err := r.Migrate(ctx); err != nil {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	r.schemaReady = true
	return nil
}

// Close closes the database connection pool.
func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// Pool returns the underlying connection pool.
// Use sparingly - prefer adding methods to Repository.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}
