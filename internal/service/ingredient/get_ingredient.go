package ingredient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// GetIngredient returns a single ingredient by id.
func (s *Service) GetIngredient(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	ing, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}

	return ing, nil
}
