package recipe

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteRecipe removes a recipe, its entry links and the entries themselves
// in one transaction. Links go first, then entries, then the recipe row.
func (s *Service) DeleteRecipe(ctx context.Context, input DeleteRecipeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.recipes.Delete(txCtx, input.ID); deleteErr != nil {
			return fmt.Errorf("delete recipe: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "recipe deleted",
		slog.String("recipe_id", input.ID.String()),
	)

	return nil
}
