package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

type kindRepo interface {
	Register(ctx context.Context, name string) (*domain.IngredientKind, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.IngredientKind, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides ingredient kind registry operations. The registry is an
// open set: any kind may be registered at runtime, and registered kinds are
// never removed.
type Service struct {
	kinds kindRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, kinds kindRepo, tx txManager) *Service {
	return &Service{
		kinds: kinds,
		tx:    tx,
		log:   log.With("service", "catalog"),
	}
}
