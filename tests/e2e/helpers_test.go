//go:build e2e

package e2e_test

import (
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	ingredientrepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/ingredient"
	kindrepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/kind"
	reciperepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/brewbook-backend/internal/config"
	catalogsvc "github.com/heartmarshall/brewbook-backend/internal/service/catalog"
	ingredientsvc "github.com/heartmarshall/brewbook-backend/internal/service/ingredient"
	recipesvc "github.com/heartmarshall/brewbook-backend/internal/service/recipe"
)

// testServices is the fully wired service graph backed by the shared test
// database: the same assembly the application performs, minus config loading.
type testServices struct {
	Pool        *pgxpool.Pool
	Catalog     *catalogsvc.Service
	Ingredients *ingredientsvc.Service
	Recipes     *recipesvc.Service
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	txm := postgres.NewTxManager(pool)
	log := slog.Default()

	kinds := kindrepo.New(pool)

	return &testServices{
		Pool:        pool,
		Catalog:     catalogsvc.NewService(log, kinds, txm),
		Ingredients: ingredientsvc.NewService(log, ingredientrepo.New(pool), kinds, txm),
		Recipes:     recipesvc.NewService(log, reciperepo.New(pool), kinds, txm, config.RecipesConfig{MaxEntries: 50}),
	}
}

// uniqueName prefixes a label with a short random suffix so parallel tests
// never collide on unique indexes.
func uniqueName(label string) string {
	return label + "-" + testhelper.UniqueSuffix()
}
