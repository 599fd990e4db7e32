package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// IngredientKind is a recognized ingredient category from the catalog registry.
// Kind names are an open set: new kinds are registered at runtime, uniqueness
// is by exact case-sensitive name.
type IngredientKind struct {
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// MaxKindNameLength bounds kind names at the registry level.
const MaxKindNameLength = 64

// ValidateKindName checks that a kind name is usable as a registry key:
// non-empty after trimming, within length bounds, and free of whitespace.
func ValidateKindName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("kind", "required")
	}
	if len(trimmed) > MaxKindNameLength {
		return NewValidationError("kind", "max 64 characters")
	}
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			return NewValidationError("kind", "must not contain whitespace")
		}
	}
	return nil
}

// Ingredient is a persisted (kind, amount) record. Ingredients linked to a
// recipe are exclusively owned by it; unlinked ingredients form the
// standalone inventory.
type Ingredient struct {
	ID        uuid.UUID `db:"id"`
	Kind      string    `db:"kind"`
	Amount    int       `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate checks the ingredient's own invariants (amount >= 0, kind shape).
// Kind registration is checked against the catalog by the service layer.
func (i *Ingredient) Validate() error {
	var errs []FieldError

	if err := ValidateKindName(i.Kind); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr.Errors...)
		}
	}
	if i.Amount < 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// IngredientUpdateParams carries a partial update: nil means keep the
// current value.
type IngredientUpdateParams struct {
	Kind   *string
	Amount *int
}

// IngredientFilter narrows ListAll queries. Zero value means no filtering.
type IngredientFilter struct {
	Kind *string
}
