package ingredient

import (
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// CreateIngredientInput holds the parameters for creating an ingredient.
type CreateIngredientInput struct {
	Kind   string
	Amount int
}

// Validate checks all fields and collects all errors.
func (i CreateIngredientInput) Validate() error {
	ing := domain.Ingredient{Kind: i.Kind, Amount: i.Amount}
	return ing.Validate()
}

// UpdateIngredientInput holds the parameters for a partial ingredient update.
// Nil fields keep the current value.
type UpdateIngredientInput struct {
	ID     uuid.UUID
	Kind   *string
	Amount *int
}

// Validate checks all fields and collects all errors.
func (i UpdateIngredientInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Kind == nil && i.Amount == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Kind != nil {
		if err := domain.ValidateKindName(*i.Kind); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				errs = append(errs, verr.Errors...)
			}
		}
	}
	if i.Amount != nil && *i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteIngredientInput holds the parameters for deleting an ingredient.
type DeleteIngredientInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteIngredientInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
