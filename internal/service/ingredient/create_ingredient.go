package ingredient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// CreateIngredient creates a standalone ingredient with a fresh id. The kind
// must be registered in the catalog; unregistered kinds fail with
// domain.ErrUnknownKind.
func (s *Service) CreateIngredient(ctx context.Context, input CreateIngredientInput) (*domain.Ingredient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind := strings.TrimSpace(input.Kind)

	var ing *domain.Ingredient
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		known, existsErr := s.kinds.Exists(txCtx, kind)
		if existsErr != nil {
			return fmt.Errorf("check kind: %w", existsErr)
		}
		if !known {
			return fmt.Errorf("kind %q: %w", kind, domain.ErrUnknownKind)
		}

		var createErr error
		ing, createErr = s.ingredients.Create(txCtx, &domain.Ingredient{
			Kind:   kind,
			Amount: input.Amount,
		})
		if createErr != nil {
			return fmt.Errorf("create ingredient: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ingredient created",
		slog.String("ingredient_id", ing.ID.String()),
		slog.String("kind", ing.Kind),
		slog.Int("amount", ing.Amount),
	)

	return ing, nil
}
