// Package app wires configuration, the database pool, repositories and
// services into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	ingredientrepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/ingredient"
	kindrepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/kind"
	reciperepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/brewbook-backend/internal/config"
	"github.com/heartmarshall/brewbook-backend/internal/service/catalog"
	"github.com/heartmarshall/brewbook-backend/internal/service/ingredient"
	"github.com/heartmarshall/brewbook-backend/internal/service/recipe"
)

// App holds the assembled application: configuration, logger, database pool
// and the three services. Construct it with New and release resources with
// Close.
type App struct {
	Cfg   *config.Config
	Log   *slog.Logger
	Pool  *pgxpool.Pool
	TxM   *postgres.TxManager
	Kinds *catalog.Service
	Stock *ingredient.Service
	Brews *recipe.Service
}

// New loads configuration, connects to the database and builds the service
// graph. Dependencies are passed explicitly; nothing is global except the
// default slog logger.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	kinds := kindrepo.New(pool)
	ingredients := ingredientrepo.New(pool)
	recipes := reciperepo.New(pool)

	app := &App{
		Cfg:   cfg,
		Log:   logger,
		Pool:  pool,
		TxM:   txm,
		Kinds: catalog.NewService(logger, kinds, txm),
		Stock: ingredient.NewService(logger, ingredients, kinds, txm),
		Brews: recipe.NewService(logger, recipes, kinds, txm, cfg.Recipes),
	}

	logger.Info("application assembled",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return app, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
