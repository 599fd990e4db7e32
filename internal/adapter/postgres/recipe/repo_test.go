package recipe_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*recipe.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return recipe.New(pool), pool
}

// newRecipe builds an unsaved recipe with registered kinds.
func newRecipe(t *testing.T, pool *pgxpool.Pool, name string, price int, entries ...domain.EntrySpec) *domain.Recipe {
	t.Helper()

	rec := &domain.Recipe{Name: name, Price: price}
	for _, spec := range entries {
		testhelper.SeedKind(t, pool, spec.Kind)
		if err := rec.AddEntry(spec.Kind, spec.Amount); err != nil {
			t.Fatalf("AddEntry(%q): %v", spec.Kind, err)
		}
	}
	return rec
}

// entrySet projects entries to an unordered set of (kind, amount) pairs.
func entrySet(entries []domain.Ingredient) map[domain.EntrySpec]bool {
	set := make(map[domain.EntrySpec]bool, len(entries))
	for _, e := range entries {
		set[domain.EntrySpec{Kind: e.Kind, Amount: e.Amount}] = true
	}
	return set
}

func TestRepo_Create_AndGetByID_RoundTrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	suffix := testhelper.UniqueSuffix()
	specs := []domain.EntrySpec{
		{Kind: "COFFEE_" + suffix, Amount: 10},
		{Kind: "PUMPKIN_SPICE_" + suffix, Amount: 3},
		{Kind: "MILK_" + suffix, Amount: 2},
	}
	created, err := repo.Create(ctx, newRecipe(t, pool, "Pumpkin Latte "+suffix, 450, specs...))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil recipe ID")
	}
	if created.Price != 450 {
		t.Errorf("Price = %d, want 450", created.Price)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	want := entrySet(created.Entries)
	if len(got.Entries) != len(specs) {
		t.Fatalf("entry count = %d, want %d", len(got.Entries), len(specs))
	}
	for _, spec := range specs {
		if !want[spec] {
			t.Errorf("entry set missing %+v", spec)
		}
	}

	// Stored order follows insertion order.
	for i, spec := range specs {
		if got.Entries[i].Kind != spec.Kind {
			t.Errorf("entry %d kind = %q, want %q", i, got.Entries[i].Kind, spec.Kind)
		}
	}
}

func TestRepo_Create_DuplicateName(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	name := "Duplicate-" + testhelper.UniqueSuffix()
	if _, err := repo.Create(ctx, newRecipe(t, pool, name, 100)); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	_, err := repo.Create(ctx, newRecipe(t, pool, name, 200))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_Create_RollsBackInTx(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	txm := postgres.NewTxManager(pool)
	ctx := context.Background()

	name := "Rollback-" + testhelper.UniqueSuffix()
	rec := newRecipe(t, pool, name, 100, domain.EntrySpec{Kind: "RB_" + testhelper.UniqueSuffix(), Amount: 1})
	// An unregistered kind makes the second entry insert fail mid-cascade.
	rec.Entries = append(rec.Entries, domain.Ingredient{Kind: "MISSING_" + testhelper.UniqueSuffix(), Amount: 1})

	err := txm.RunInTx(ctx, func(txCtx context.Context) error {
		_, createErr := repo.Create(txCtx, rec)
		return createErr
	})
	if !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	// Nothing from the failed cascade is visible.
	if _, err := repo.FindByName(ctx, name); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after rollback, got %v", err)
	}
}

func TestRepo_FindByName(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	name := "Named-" + testhelper.UniqueSuffix()
	created, err := repo.Create(ctx, newRecipe(t, pool, name, 250,
		domain.EntrySpec{Kind: "NAMED_" + testhelper.UniqueSuffix(), Amount: 7}))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByName(ctx, name)
	if err != nil {
		t.Fatalf("FindByName: unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, created.ID)
	}
	if len(got.Entries) != 1 {
		t.Errorf("entries not populated: got %d, want 1", len(got.Entries))
	}

	if _, err := repo.FindByName(ctx, "Absent-"+testhelper.UniqueSuffix()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Update_DiffsEntriesByKind(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	suffix := testhelper.UniqueSuffix()
	coffee := "COFFEE_" + suffix
	milk := "MILK_" + suffix
	sugar := "SUGAR_" + suffix
	testhelper.SeedKind(t, pool, sugar)

	created, err := repo.Create(ctx, newRecipe(t, pool, "Diff-"+suffix, 300,
		domain.EntrySpec{Kind: coffee, Amount: 10},
		domain.EntrySpec{Kind: milk, Amount: 2},
	))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	coffeeEntry, ok := created.EntryByKind(coffee)
	if !ok {
		t.Fatal("created recipe missing COFFEE entry")
	}
	milkEntry, _ := created.EntryByKind(milk)

	updated, err := repo.Update(ctx, created.ID, domain.RecipeUpdateParams{
		Name:  "Diff-" + suffix,
		Price: 320,
		Entries: []domain.EntrySpec{
			{Kind: coffee, Amount: 12},
			{Kind: sugar, Amount: 1},
		},
	})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if len(updated.Entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(updated.Entries))
	}

	// Surviving kind keeps its persisted id and takes the new amount.
	gotCoffee, ok := updated.EntryByKind(coffee)
	if !ok {
		t.Fatal("updated recipe missing COFFEE entry")
	}
	if gotCoffee.ID != coffeeEntry.ID {
		t.Errorf("COFFEE entry id changed: got %s, want %s", gotCoffee.ID, coffeeEntry.ID)
	}
	if gotCoffee.Amount != 12 {
		t.Errorf("COFFEE amount = %d, want 12", gotCoffee.Amount)
	}

	// Added kind is present.
	if gotSugar, ok := updated.EntryByKind(sugar); !ok || gotSugar.Amount != 1 {
		t.Errorf("SUGAR entry = %+v, want amount 1", gotSugar)
	}

	// Removed kind's row is gone, not orphaned.
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM ingredients WHERE id = $1`, milkEntry.ID).Scan(&count); err != nil {
		t.Fatalf("count milk rows: %v", err)
	}
	if count != 0 {
		t.Errorf("removed MILK entry still persisted (%d rows)", count)
	}

	if updated.Price != 320 {
		t.Errorf("Price = %d, want 320", updated.Price)
	}
}

func TestRepo_Update_DuplicateName(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	other := "Taken-" + testhelper.UniqueSuffix()
	if _, err := repo.Create(ctx, newRecipe(t, pool, other, 100)); err != nil {
		t.Fatalf("Create other: %v", err)
	}
	created, err := repo.Create(ctx, newRecipe(t, pool, "Mine-"+testhelper.UniqueSuffix(), 100))
	if err != nil {
		t.Fatalf("Create mine: %v", err)
	}

	_, err = repo.Update(ctx, created.ID, domain.RecipeUpdateParams{Name: other, Price: 100})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Update(ctx, uuid.New(), domain.RecipeUpdateParams{Name: "X", Price: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete_CascadesToEntries(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newRecipe(t, pool, "Doomed-"+testhelper.UniqueSuffix(), 100,
		domain.EntrySpec{Kind: "DOOMED_A_" + testhelper.UniqueSuffix(), Amount: 1},
		domain.EntrySpec{Kind: "DOOMED_B_" + testhelper.UniqueSuffix(), Amount: 2},
	))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Owned entries are gone too.
	for _, entry := range created.Entries {
		var count int
		if err := pool.QueryRow(ctx, `SELECT count(*) FROM ingredients WHERE id = $1`, entry.ID).Scan(&count); err != nil {
			t.Fatalf("count entry rows: %v", err)
		}
		if count != 0 {
			t.Errorf("entry %s survived recipe delete", entry.ID)
		}
	}

	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRepo_List_PopulatesEntries(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	suffix := testhelper.UniqueSuffix()
	created, err := repo.Create(ctx, newRecipe(t, pool, "Listed-"+suffix, 150,
		domain.EntrySpec{Kind: "LISTED_" + suffix, Amount: 5}))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	recipes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	var found *domain.Recipe
	for i := range recipes {
		if recipes[i].ID == created.ID {
			found = &recipes[i]
			break
		}
	}
	if found == nil {
		t.Fatal("created recipe missing from List")
	}
	if len(found.Entries) != 1 || found.Entries[0].Kind != "LISTED_"+suffix {
		t.Errorf("List entries = %+v, want the seeded entry", found.Entries)
	}
}

func TestRepo_Create_ConcurrentSameName(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	txm := postgres.NewTxManager(pool)
	ctx := context.Background()

	name := "Mocha-" + testhelper.UniqueSuffix()
	kind := "MOCHA_" + testhelper.UniqueSuffix()
	testhelper.SeedKind(t, pool, kind)

	const attempts = 10
	errCh := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- txm.RunInTx(ctx, func(txCtx context.Context) error {
				rec := &domain.Recipe{Name: name, Price: 400}
				if err := rec.AddEntry(kind, 3); err != nil {
					return err
				}
				_, err := repo.Create(txCtx, rec)
				return err
			})
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, duplicates int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrAlreadyExists):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("succeeded = %d, want exactly 1", succeeded)
	}
	if duplicates != attempts-1 {
		t.Errorf("duplicates = %d, want %d", duplicates, attempts-1)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM recipes WHERE name = $1`, name).Scan(&count); err != nil {
		t.Fatalf("count recipes: %v", err)
	}
	if count != 1 {
		t.Errorf("store holds %d recipes named %q, want 1", count, name)
	}
}
