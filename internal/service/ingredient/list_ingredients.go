package ingredient

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// ListIngredientsInput narrows the listing. Zero value lists everything.
type ListIngredientsInput struct {
	Kind *string
}

// ListIngredients returns ingredients, optionally filtered by kind.
func (s *Service) ListIngredients(ctx context.Context, input ListIngredientsInput) ([]domain.Ingredient, error) {
	var filter domain.IngredientFilter
	if input.Kind != nil {
		kind := strings.TrimSpace(*input.Kind)
		if err := domain.ValidateKindName(kind); err != nil {
			return nil, err
		}
		filter.Kind = &kind
	}

	ingredients, err := s.ingredients.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	return ingredients, nil
}
