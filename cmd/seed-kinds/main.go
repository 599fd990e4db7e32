// Command seed-kinds registers a baseline set of ingredient kinds in the
// catalog. Kinds that are already registered are skipped, so the command is
// safe to re-run.
//
// Flags:
//
//	--kinds  comma-separated kind names (default: the catalog config's seed list)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/brewbook-backend/internal/adapter/postgres"
	kindrepo "github.com/heartmarshall/brewbook-backend/internal/adapter/postgres/kind"
	"github.com/heartmarshall/brewbook-backend/internal/app"
	"github.com/heartmarshall/brewbook-backend/internal/config"
	"github.com/heartmarshall/brewbook-backend/internal/service/catalog"
)

func main() {
	kindsFlag := flag.String("kinds", "", "comma-separated kind names (default: config seed list)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	names := cfg.Catalog.DefaultKinds
	if *kindsFlag != "" {
		names, err = config.ParseKindList(*kindsFlag)
		if err != nil {
			logger.Error("parse kinds flag", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	svc := catalog.NewService(logger, kindrepo.New(pool), txm)

	registered, err := svc.EnsureKinds(ctx, names)
	if err != nil {
		logger.Error("seed kinds", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalog seeded",
		slog.Int("requested", len(names)),
		slog.Int("registered", len(registered)),
		slog.Any("new_kinds", registered),
	)
}
