// Package kind implements the ingredient kind registry using PostgreSQL.
// The registry is the source of truth for the open set of recognized
// ingredient kinds; kind names are exact case-sensitive keys.
package kind

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// Repo provides kind registry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new kind repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	registerSQL = `INSERT INTO ingredient_kinds (name) VALUES ($1) RETURNING name, created_at`
	existsSQL   = `SELECT EXISTS (SELECT 1 FROM ingredient_kinds WHERE name = $1)`
	listSQL     = `SELECT name, created_at FROM ingredient_kinds ORDER BY name`
)

// Register inserts a new kind and returns the persisted record.
// Returns domain.ErrAlreadyExists if the kind is already registered.
func (r *Repo) Register(ctx context.Context, name string) (*domain.IngredientKind, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var kind domain.IngredientKind
	err := q.QueryRow(ctx, registerSQL, name).Scan(&kind.Name, &kind.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "kind", name)
	}

	return &kind, nil
}

// Exists reports whether a kind with the exact name is registered.
func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("kind exists: %w", err)
	}

	return exists, nil
}

// List returns all registered kinds ordered by name.
// Returns an empty slice (not nil) when the registry is empty.
func (r *Repo) List(ctx context.Context) ([]domain.IngredientKind, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var kinds []domain.IngredientKind
	if err := pgxscan.Select(ctx, q, &kinds, listSQL); err != nil {
		return nil, fmt.Errorf("list kinds: %w", err)
	}

	if kinds == nil {
		kinds = []domain.IngredientKind{}
	}

	return kinds, nil
}
