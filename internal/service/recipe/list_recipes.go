package recipe

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// ListRecipes returns all recipes with their entries, ordered by name.
func (s *Service) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	return recipes, nil
}
