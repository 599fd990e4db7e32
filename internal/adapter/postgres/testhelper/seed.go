package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedKind registers an ingredient kind, ignoring duplicates so parallel
// tests can share the common kinds (COFFEE, MILK, ...).
func SeedKind(t *testing.T, pool *pgxpool.Pool, name string) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO ingredient_kinds (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedKind %q: %v", name, err)
	}
}

// SeedKinds registers several kinds at once.
func SeedKinds(t *testing.T, pool *pgxpool.Pool, names ...string) {
	t.Helper()
	for _, name := range names {
		SeedKind(t, pool, name)
	}
}

// SeedIngredient creates a standalone ingredient (its kind is registered
// first) and returns the persisted record.
func SeedIngredient(t *testing.T, pool *pgxpool.Pool, kind string, amount int) domain.Ingredient {
	t.Helper()
	ctx := context.Background()

	SeedKind(t, pool, kind)

	var ing domain.Ingredient
	err := pool.QueryRow(ctx,
		`INSERT INTO ingredients (kind, amount) VALUES ($1, $2)
		 RETURNING id, kind, amount, created_at, updated_at`,
		kind, amount,
	).Scan(&ing.ID, &ing.Kind, &ing.Amount, &ing.CreatedAt, &ing.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedIngredient: %v", err)
	}

	return ing
}

// SeedRecipe creates a recipe with the given entries (kinds registered
// first) and returns it with entries populated in insertion order.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, name string, price int, entries ...domain.EntrySpec) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	rec := domain.Recipe{Name: name, Price: price}
	err := pool.QueryRow(ctx,
		`INSERT INTO recipes (name, price) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		name, price,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe: %v", err)
	}

	for pos, spec := range entries {
		ing := SeedIngredient(t, pool, spec.Kind, spec.Amount)
		_, err := pool.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, position) VALUES ($1, $2, $3)`,
			rec.ID, ing.ID, pos,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRecipe link: %v", err)
		}
		rec.Entries = append(rec.Entries, ing)
	}

	return rec
}
