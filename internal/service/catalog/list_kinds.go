package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// ListKinds returns all registered kinds ordered by name.
func (s *Service) ListKinds(ctx context.Context) ([]domain.IngredientKind, error) {
	kinds, err := s.kinds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kinds: %w", err)
	}

	return kinds, nil
}

// IsRegistered reports whether the exact name is a registered kind.
func (s *Service) IsRegistered(ctx context.Context, name string) (bool, error) {
	if err := domain.ValidateKindName(name); err != nil {
		return false, err
	}

	exists, err := s.kinds.Exists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("kind exists: %w", err)
	}

	return exists, nil
}
