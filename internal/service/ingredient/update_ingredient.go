package ingredient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// UpdateIngredient applies a partial update. When the kind changes, the new
// kind must be registered in the catalog.
func (s *Service) UpdateIngredient(ctx context.Context, input UpdateIngredientInput) (*domain.Ingredient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.IngredientUpdateParams{Amount: input.Amount}
	if input.Kind != nil {
		kind := strings.TrimSpace(*input.Kind)
		params.Kind = &kind
	}

	var ing *domain.Ingredient
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if params.Kind != nil {
			known, existsErr := s.kinds.Exists(txCtx, *params.Kind)
			if existsErr != nil {
				return fmt.Errorf("check kind: %w", existsErr)
			}
			if !known {
				return fmt.Errorf("kind %q: %w", *params.Kind, domain.ErrUnknownKind)
			}
		}

		var updateErr error
		ing, updateErr = s.ingredients.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update ingredient: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ingredient updated",
		slog.String("ingredient_id", ing.ID.String()),
		slog.String("kind", ing.Kind),
		slog.Int("amount", ing.Amount),
	)

	return ing, nil
}
