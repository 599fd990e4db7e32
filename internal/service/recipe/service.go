package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/config"
	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

type recipeRepo interface {
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	FindByName(ctx context.Context, name string) (*domain.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, params domain.RecipeUpdateParams) (*domain.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Recipe, error)
}

type kindRepo interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides recipe operations. A recipe owns its ingredient entries:
// every create, update and delete runs as one transaction covering the
// recipe row, its entries and the links between them.
type Service struct {
	recipes recipeRepo
	kinds   kindRepo
	tx      txManager
	cfg     config.RecipesConfig
	log     *slog.Logger
}

// NewService creates a new recipe service.
func NewService(
	log *slog.Logger,
	recipes recipeRepo,
	kinds kindRepo,
	tx txManager,
	cfg config.RecipesConfig,
) *Service {
	return &Service{
		recipes: recipes,
		kinds:   kinds,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "recipe"),
	}
}

// checkKinds verifies every entry kind is registered in the catalog.
func (s *Service) checkKinds(ctx context.Context, entries []EntryInput) error {
	for _, entry := range entries {
		known, err := s.kinds.Exists(ctx, entry.Kind)
		if err != nil {
			return fmt.Errorf("check kind: %w", err)
		}
		if !known {
			return fmt.Errorf("kind %q: %w", entry.Kind, domain.ErrUnknownKind)
		}
	}
	return nil
}
