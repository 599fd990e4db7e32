package ingredient

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteIngredient removes a standalone ingredient. Ingredients owned by a
// recipe cannot be deleted directly; the attempt fails with
// domain.ErrConflict.
func (s *Service) DeleteIngredient(ctx context.Context, input DeleteIngredientInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.ingredients.Delete(txCtx, input.ID); deleteErr != nil {
			return fmt.Errorf("delete ingredient: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "ingredient deleted",
		slog.String("ingredient_id", input.ID.String()),
	)

	return nil
}
