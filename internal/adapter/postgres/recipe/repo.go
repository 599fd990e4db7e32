// Package recipe implements the recipe store using PostgreSQL.
//
// A recipe owns its ingredient entries exclusively; ownership is recorded in
// the recipe_ingredients link table. All multi-row mutations are written in
// an order that keeps the link table valid at every step: an entry is always
// created before it is linked, and unlinked before it is deleted. The
// mutating methods are meant to run inside a transaction (see
// postgres.TxManager); the service layer is responsible for opening one.
package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new recipe repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const recipeColumns = "id, name, description, price, created_at, updated_at"

const (
	insertRecipeSQL = `INSERT INTO recipes (name, description, price)
VALUES ($1, $2, $3)
RETURNING ` + recipeColumns

	getByIDSQL   = `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	getByNameSQL = `SELECT ` + recipeColumns + ` FROM recipes WHERE name = $1`
	listSQL      = `SELECT ` + recipeColumns + ` FROM recipes ORDER BY name`

	lockRecipeSQL = `SELECT id FROM recipes WHERE id = $1 FOR UPDATE`

	updateRecipeSQL = `UPDATE recipes
SET name = $2, description = $3, price = $4, updated_at = now()
WHERE id = $1
RETURNING ` + recipeColumns

	deleteRecipeSQL = `DELETE FROM recipes WHERE id = $1`

	insertEntrySQL = `INSERT INTO ingredients (kind, amount)
VALUES ($1, $2)
RETURNING id, kind, amount, created_at, updated_at`

	linkEntrySQL = `INSERT INTO recipe_ingredients (recipe_id, ingredient_id, position)
VALUES ($1, $2, $3)`

	setPositionSQL = `UPDATE recipe_ingredients SET position = $3
WHERE recipe_id = $1 AND ingredient_id = $2`

	unlinkEntrySQL = `DELETE FROM recipe_ingredients
WHERE recipe_id = $1 AND ingredient_id = $2`

	unlinkAllSQL = `DELETE FROM recipe_ingredients WHERE recipe_id = $1`

	updateEntryAmountSQL = `UPDATE ingredients SET amount = $2, updated_at = now() WHERE id = $1`

	deleteEntrySQL = `DELETE FROM ingredients WHERE id = $1`

	deleteEntriesSQL = `DELETE FROM ingredients WHERE id = ANY($1::uuid[])`

	linkedEntryIDsSQL = `SELECT ingredient_id FROM recipe_ingredients WHERE recipe_id = $1`

	entriesByRecipeSQL = `
SELECT i.id, i.kind, i.amount, i.created_at, i.updated_at
FROM recipe_ingredients ri
JOIN ingredients i ON ri.ingredient_id = i.id
WHERE ri.recipe_id = $1
ORDER BY ri.position`

	entriesByRecipeIDsSQL = `
SELECT ri.recipe_id, i.id, i.kind, i.amount, i.created_at, i.updated_at
FROM recipe_ingredients ri
JOIN ingredients i ON ri.ingredient_id = i.id
WHERE ri.recipe_id = ANY($1::uuid[])
ORDER BY ri.recipe_id, ri.position`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists the recipe and all of its entries. Entries are inserted
// before they are linked. Returns domain.ErrAlreadyExists if a recipe with
// the same name exists and domain.ErrUnknownKind if an entry's kind is not
// registered. Run inside a transaction for all-or-nothing semantics.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var created domain.Recipe
	err := q.QueryRow(ctx, insertRecipeSQL, rec.Name, rec.Description, rec.Price).
		Scan(&created.ID, &created.Name, &created.Description, &created.Price, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.Name)
	}

	created.Entries = make([]domain.Ingredient, 0, len(rec.Entries))
	for pos, entry := range rec.Entries {
		persisted, err := r.createEntry(ctx, q, created.ID, entry.Kind, entry.Amount, pos)
		if err != nil {
			return nil, err
		}
		created.Entries = append(created.Entries, *persisted)
	}

	return &created, nil
}

// Update atomically replaces the recipe's name, description, price and
// entry set. Entries whose kind survives keep their persisted id and get the
// new amount; removed kinds are unlinked then deleted; added kinds are
// created then linked. Returns domain.ErrNotFound if the id is absent and
// domain.ErrAlreadyExists if the new name collides with another recipe.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.RecipeUpdateParams) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	// Lock the recipe row so concurrent edits of the same recipe serialize.
	var lockedID uuid.UUID
	if err := q.QueryRow(ctx, lockRecipeSQL, id).Scan(&lockedID); err != nil {
		return nil, postgres.MapError(err, "recipe", id.String())
	}

	var updated domain.Recipe
	err := q.QueryRow(ctx, updateRecipeSQL, id, params.Name, params.Description, params.Price).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Price, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", params.Name)
	}

	current, err := r.entriesByRecipeID(ctx, q, id)
	if err != nil {
		return nil, err
	}

	diff := domain.DiffEntries(current, params.Entries)

	for _, entry := range diff.Update {
		if _, err := q.Exec(ctx, updateEntryAmountSQL, entry.ID, entry.Amount); err != nil {
			return nil, postgres.MapError(err, "entry", entry.ID.String())
		}
	}

	// Unlink before delete so the link table never references a missing row.
	for _, entry := range diff.Remove {
		if _, err := q.Exec(ctx, unlinkEntrySQL, id, entry.ID); err != nil {
			return nil, postgres.MapError(err, "entry", entry.ID.String())
		}
		if _, err := q.Exec(ctx, deleteEntrySQL, entry.ID); err != nil {
			return nil, postgres.MapError(err, "entry", entry.ID.String())
		}
	}

	kept := make(map[string]uuid.UUID, len(current))
	for _, entry := range current {
		kept[entry.Kind] = entry.ID
	}

	// Walk the desired set once: create what is new, reposition what is kept.
	for pos, spec := range params.Entries {
		if existingID, ok := kept[spec.Kind]; ok {
			if _, err := q.Exec(ctx, setPositionSQL, id, existingID, pos); err != nil {
				return nil, postgres.MapError(err, "entry", existingID.String())
			}
			continue
		}
		if _, err := r.createEntry(ctx, q, id, spec.Kind, spec.Amount, pos); err != nil {
			return nil, err
		}
	}

	entries, err := r.entriesByRecipeID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	updated.Entries = entries

	return &updated, nil
}

// Delete removes the recipe and cascades deletion to every owned entry.
// Links are removed first, then the now-unreferenced entries, then the
// recipe row. Returns domain.ErrNotFound if the id is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, linkedEntryIDsSQL, id)
	if err != nil {
		return fmt.Errorf("collect recipe entries: %w", err)
	}
	entryIDs, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return fmt.Errorf("collect recipe entries: %w", err)
	}

	if _, err := q.Exec(ctx, unlinkAllSQL, id); err != nil {
		return postgres.MapError(err, "recipe", id.String())
	}

	if len(entryIDs) > 0 {
		if _, err := q.Exec(ctx, deleteEntriesSQL, entryIDs); err != nil {
			return postgres.MapError(err, "recipe", id.String())
		}
	}

	tag, err := q.Exec(ctx, deleteRecipeSQL, id)
	if err != nil {
		return postgres.MapError(err, "recipe", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recipe with its entries populated in stored order.
// Returns domain.ErrNotFound if no recipe has that id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	return r.getOne(ctx, q, getByIDSQL, id.String(), id)
}

// FindByName returns a recipe by its unique name, entries populated.
// Returns domain.ErrNotFound if no recipe has that name.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	return r.getOne(ctx, q, getByNameSQL, name, name)
}

// List returns all recipes ordered by name, each with entries populated.
// Returns an empty slice (not nil) when the store is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	if len(recipes) == 0 {
		return []domain.Recipe{}, nil
	}

	ids := make([]uuid.UUID, len(recipes))
	index := make(map[uuid.UUID]int, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
		index[recipes[i].ID] = i
		recipes[i].Entries = []domain.Ingredient{}
	}

	entryRows, err := q.Query(ctx, entriesByRecipeIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("list recipe entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var recipeID uuid.UUID
		var entry domain.Ingredient
		if err := entryRows.Scan(&recipeID, &entry.ID, &entry.Kind, &entry.Amount, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe entry: %w", err)
		}
		i := index[recipeID]
		recipes[i].Entries = append(recipes[i].Entries, entry)
	}
	if err := entryRows.Err(); err != nil {
		return nil, fmt.Errorf("list recipe entries: %w", err)
	}

	return recipes, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// createEntry inserts an ingredient row and then links it to the recipe.
func (r *Repo) createEntry(ctx context.Context, q postgres.Querier, recipeID uuid.UUID, kind string, amount, position int) (*domain.Ingredient, error) {
	var entry domain.Ingredient
	err := q.QueryRow(ctx, insertEntrySQL, kind, amount).
		Scan(&entry.ID, &entry.Kind, &entry.Amount, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "entry", kind)
	}

	if _, err := q.Exec(ctx, linkEntrySQL, recipeID, entry.ID, position); err != nil {
		return nil, postgres.MapError(err, "entry", kind)
	}

	return &entry, nil
}

func (r *Repo) getOne(ctx context.Context, q postgres.Querier, sql, ref string, arg any) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := q.QueryRow(ctx, sql, arg).
		Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", ref)
	}

	entries, err := r.entriesByRecipeID(ctx, q, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Entries = entries

	return &rec, nil
}

// entriesByRecipeID loads a recipe's entries in stored (position) order.
func (r *Repo) entriesByRecipeID(ctx context.Context, q postgres.Querier, recipeID uuid.UUID) ([]domain.Ingredient, error) {
	rows, err := q.Query(ctx, entriesByRecipeSQL, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Ingredient
	for rows.Next() {
		var entry domain.Ingredient
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Amount, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recipe entries: %w", err)
	}

	if entries == nil {
		entries = []domain.Ingredient{}
	}

	return entries, nil
}

// scanRecipes scans recipe rows without entries.
func scanRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	defer rows.Close()

	var result []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
