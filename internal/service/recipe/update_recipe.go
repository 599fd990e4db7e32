package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// UpdateRecipe replaces a recipe's name, description, price and entry set in
// one transaction. Entries whose kind survives the edit keep their persisted
// ids and only change amount; removed kinds are deleted with their rows;
// added kinds get fresh ids.
func (s *Service) UpdateRecipe(ctx context.Context, input UpdateRecipeInput) (*domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Entries) > s.cfg.MaxEntries {
		return nil, domain.NewValidationError("entries", fmt.Sprintf("max %d entries per recipe", s.cfg.MaxEntries))
	}

	// Reuse the aggregate to reject duplicate kinds in the desired set.
	desired := &domain.Recipe{}
	for _, entry := range input.Entries {
		if err := desired.AddEntry(entry.Kind, entry.Amount); err != nil {
			return nil, err
		}
	}

	params := domain.RecipeUpdateParams{
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Price:       input.Price,
	}
	for _, entry := range input.Entries {
		params.Entries = append(params.Entries, domain.EntrySpec{Kind: entry.Kind, Amount: entry.Amount})
	}

	var updated *domain.Recipe
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if kindErr := s.checkKinds(txCtx, input.Entries); kindErr != nil {
			return kindErr
		}

		var updateErr error
		updated, updateErr = s.recipes.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update recipe: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "recipe updated",
		slog.String("recipe_id", updated.ID.String()),
		slog.String("name", updated.Name),
		slog.Int("entries", len(updated.Entries)),
	)

	return updated, nil
}
