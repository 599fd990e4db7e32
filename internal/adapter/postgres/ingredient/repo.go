// Package ingredient implements the ingredient store using PostgreSQL.
// It provides CRUD operations for standalone ingredient records; entries
// owned by recipes are managed through the recipe repository's cascades.
package ingredient

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// Repo provides ingredient persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ingredient repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// builder is the squirrel statement builder with PostgreSQL placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const ingredientColumns = "id, kind, amount, created_at, updated_at"

const (
	createSQL = `INSERT INTO ingredients (kind, amount)
VALUES ($1, $2)
RETURNING ` + ingredientColumns

	getByIDSQL = `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`

	updateSQL = `UPDATE ingredients
SET kind = $2, amount = $3, updated_at = now()
WHERE id = $1
RETURNING ` + ingredientColumns

	deleteSQL = `DELETE FROM ingredients WHERE id = $1`
)

// Create inserts a new ingredient and returns the persisted record with a
// fresh id. Returns domain.ErrUnknownKind if the kind is not registered and
// domain.ErrValidation if the amount violates the non-negative check.
func (r *Repo) Create(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var created domain.Ingredient
	err := q.QueryRow(ctx, createSQL, ing.Kind, ing.Amount).
		Scan(&created.ID, &created.Kind, &created.Amount, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "ingredient", ing.Kind)
	}

	return &created, nil
}

// GetByID returns an ingredient by primary key.
// Returns domain.ErrNotFound if no ingredient has that id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ing domain.Ingredient
	err := q.QueryRow(ctx, getByIDSQL, id).
		Scan(&ing.ID, &ing.Kind, &ing.Amount, &ing.CreatedAt, &ing.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "ingredient", id.String())
	}

	return &ing, nil
}

// Update applies a partial update (nil fields keep their current value) and
// returns the updated record. Returns domain.ErrNotFound if the id is absent,
// domain.ErrUnknownKind if the new kind is not registered.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.IngredientUpdateParams) (*domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	// Fetch current values to apply the partial update.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kind := current.Kind
	if params.Kind != nil {
		kind = *params.Kind
	}
	amount := current.Amount
	if params.Amount != nil {
		amount = *params.Amount
	}

	var updated domain.Ingredient
	err = q.QueryRow(ctx, updateSQL, id, kind, amount).
		Scan(&updated.ID, &updated.Kind, &updated.Amount, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "ingredient", id.String())
	}

	return &updated, nil
}

// Delete removes a standalone ingredient. Returns domain.ErrNotFound if the
// id is absent and domain.ErrConflict if the ingredient is still owned by a
// recipe (the link row blocks the delete).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		// A foreign key violation here means a recipe link row still
		// references this ingredient.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("ingredient %s: owned by a recipe: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "ingredient", id.String())
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ingredient %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns ingredients matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := builder.
		Select("id", "kind", "amount", "created_at", "updated_at").
		From("ingredients").
		OrderBy("created_at DESC", "id")

	if filter.Kind != nil {
		query = query.Where(squirrel.Eq{"kind": *filter.Kind})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var ingredients []domain.Ingredient
	if err := pgxscan.Select(ctx, q, &ingredients, sql, args...); err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}

	return ingredients, nil
}
