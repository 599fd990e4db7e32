package recipe

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// GetRecipe returns a single recipe with its entries by id.
func (s *Service) GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	return rec, nil
}

// GetRecipeByName returns a single recipe with its entries by exact name.
func (s *Service) GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	rec, err := s.recipes.FindByName(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("get recipe by name: %w", err)
	}

	return rec, nil
}
