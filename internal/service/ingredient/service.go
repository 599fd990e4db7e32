package ingredient

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

type ingredientRepo interface {
	Create(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
	Update(ctx context.Context, id uuid.UUID, params domain.IngredientUpdateParams) (*domain.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error)
}

type kindRepo interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides standalone ingredient operations. Ingredients owned by a
// recipe are managed through the recipe service; deleting an owned ingredient
// here fails with domain.ErrConflict.
type Service struct {
	ingredients ingredientRepo
	kinds       kindRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new ingredient service.
func NewService(log *slog.Logger, ingredients ingredientRepo, kinds kindRepo, tx txManager) *Service {
	return &Service{
		ingredients: ingredients,
		kinds:       kinds,
		tx:          tx,
		log:         log.With("service", "ingredient"),
	}
}
