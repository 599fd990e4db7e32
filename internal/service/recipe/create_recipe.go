package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// CreateRecipe creates a recipe together with its entries in one transaction.
// Fails with domain.ErrAlreadyExists when the name is taken (enforced by the
// store, safe under concurrent creates), domain.ErrDuplicateKind when the
// payload repeats a kind and domain.ErrUnknownKind for unregistered kinds.
func (s *Service) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Entries) > s.cfg.MaxEntries {
		return nil, domain.NewValidationError("entries", fmt.Sprintf("max %d entries per recipe", s.cfg.MaxEntries))
	}

	draft := &domain.Recipe{
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Price:       input.Price,
	}
	for _, entry := range input.Entries {
		if err := draft.AddEntry(entry.Kind, entry.Amount); err != nil {
			return nil, err
		}
	}

	var created *domain.Recipe
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if kindErr := s.checkKinds(txCtx, input.Entries); kindErr != nil {
			return kindErr
		}

		var createErr error
		created, createErr = s.recipes.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create recipe: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "recipe created",
		slog.String("recipe_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Int("entries", len(created.Entries)),
	)

	return created, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
