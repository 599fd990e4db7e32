package recipe

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// EntryInput is a desired (kind, amount) entry of a recipe.
type EntryInput struct {
	Kind   string
	Amount int
}

// CreateRecipeInput holds the parameters for creating a recipe.
type CreateRecipeInput struct {
	Name        string
	Description *string
	Price       int
	Entries     []EntryInput
}

// Validate checks all fields and collects all errors.
func (i CreateRecipeInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be >= 0"})
	}
	errs = append(errs, validateEntries(i.Entries)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecipeInput is the full-replace "edit recipe" payload: the new name,
// description, price and the complete desired entry set. Entries missing from
// the payload are removed from the recipe.
type UpdateRecipeInput struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       int
	Entries     []EntryInput
}

// Validate checks all fields and collects all errors.
func (i UpdateRecipeInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	if i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be >= 0"})
	}
	errs = append(errs, validateEntries(i.Entries)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteRecipeInput holds the parameters for deleting a recipe.
type DeleteRecipeInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteRecipeInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	var errs []domain.FieldError

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(trimmed) > domain.MaxRecipeNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}

	return errs
}

// validateEntries checks each entry's shape. Duplicate kinds are not a shape
// error: they are rejected by the recipe aggregate with ErrDuplicateKind.
func validateEntries(entries []EntryInput) []domain.FieldError {
	var errs []domain.FieldError

	for _, entry := range entries {
		if err := domain.ValidateKindName(entry.Kind); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				errs = append(errs, verr.Errors...)
			}
			continue
		}
		if entry.Amount < 0 {
			errs = append(errs, domain.FieldError{Field: "entries", Message: "amount must be >= 0 for kind " + entry.Kind})
		}
	}

	return errs
}
