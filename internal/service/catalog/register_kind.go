package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// RegisterKind adds a new kind to the registry. Returns
// domain.ErrAlreadyExists if the exact name is already registered; names
// differing only in case are distinct kinds.
func (s *Service) RegisterKind(ctx context.Context, input RegisterKindInput) (*domain.IngredientKind, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var kind *domain.IngredientKind
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var registerErr error
		kind, registerErr = s.kinds.Register(txCtx, name)
		if registerErr != nil {
			return fmt.Errorf("register kind: %w", registerErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "kind registered", slog.String("kind", kind.Name))

	return kind, nil
}

// EnsureKinds registers every name that is not yet in the registry, skipping
// those that already are. Used to seed a baseline catalog. Returns the names
// it actually registered.
func (s *Service) EnsureKinds(ctx context.Context, names []string) ([]string, error) {
	var registered []string

	for _, name := range names {
		if err := domain.ValidateKindName(name); err != nil {
			return registered, err
		}

		_, err := s.RegisterKind(ctx, RegisterKindInput{Name: name})
		switch {
		case err == nil:
			registered = append(registered, strings.TrimSpace(name))
		case errors.Is(err, domain.ErrAlreadyExists):
			continue
		default:
			return registered, err
		}
	}

	return registered, nil
}
