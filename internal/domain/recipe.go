package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxRecipeNameLength bounds recipe names.
const MaxRecipeNameLength = 120

// Recipe is a named, priced composition of ingredient entries. Entries are
// exclusively owned by the recipe: they are created, replaced and deleted
// together with it. Entry order is the order entries were added.
type Recipe struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       int
	Entries     []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntryByKind returns the entry with the given kind, if present.
func (r *Recipe) EntryByKind(kind string) (*Ingredient, bool) {
	for i := range r.Entries {
		if r.Entries[i].Kind == kind {
			return &r.Entries[i], true
		}
	}
	return nil, false
}

// AddEntry appends a (kind, amount) entry. A recipe holds at most one entry
// per kind; adding a second entry of the same kind returns ErrDuplicateKind
// rather than merging amounts.
func (r *Recipe) AddEntry(kind string, amount int) error {
	entry := Ingredient{Kind: kind, Amount: amount}
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, ok := r.EntryByKind(kind); ok {
		return fmt.Errorf("entry %q: %w", kind, ErrDuplicateKind)
	}

	r.Entries = append(r.Entries, entry)
	return nil
}

// RemoveEntry removes the entry with the given id, preserving the order of
// the remaining entries. Returns ErrNotFound if no entry has that id.
func (r *Recipe) RemoveEntry(entryID uuid.UUID) error {
	for i := range r.Entries {
		if r.Entries[i].ID == entryID {
			r.Entries = append(r.Entries[:i], r.Entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entry %s: %w", entryID, ErrNotFound)
}

// SetPrice updates the price. Prices are non-negative integers (cents).
func (r *Recipe) SetPrice(price int) error {
	if price < 0 {
		return NewValidationError("price", "must be >= 0")
	}
	r.Price = price
	return nil
}

// Rename sets the recipe name. Names are trimmed and must be non-empty.
// Uniqueness across recipes is enforced by the store.
func (r *Recipe) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("name", "required")
	}
	if len(trimmed) > MaxRecipeNameLength {
		return NewValidationError("name", "max 120 characters")
	}
	r.Name = trimmed
	return nil
}

// RecipeUpdateParams is the full-replace "edit recipe" payload: name, price,
// description and the complete desired entry set.
type RecipeUpdateParams struct {
	Name        string
	Description *string
	Price       int
	Entries     []EntrySpec
}

// EntrySpec is a desired (kind, amount) pair without persistence identity,
// used to describe the target entry set of a recipe update.
type EntrySpec struct {
	Kind   string
	Amount int
}

// EntryDiff is the plan for moving a recipe's persisted entry set to a
// desired one. Kinds present on both sides keep their persisted id and only
// change amount; removed kinds are deleted; added kinds are created.
type EntryDiff struct {
	Update []Ingredient // existing entries with the new amount applied
	Remove []Ingredient // entries to unlink and delete
	Add    []EntrySpec  // entries to create and link, in desired order
}

// DiffEntries computes the EntryDiff between the current persisted entries
// and the desired entry set. Matching is by kind.
func DiffEntries(current []Ingredient, desired []EntrySpec) EntryDiff {
	var diff EntryDiff

	wantAmount := make(map[string]int, len(desired))
	for _, spec := range desired {
		wantAmount[spec.Kind] = spec.Amount
	}

	byKind := make(map[string]Ingredient, len(current))
	for _, entry := range current {
		byKind[entry.Kind] = entry
	}

	for _, entry := range current {
		amount, keep := wantAmount[entry.Kind]
		if !keep {
			diff.Remove = append(diff.Remove, entry)
			continue
		}
		if amount != entry.Amount {
			updated := entry
			updated.Amount = amount
			diff.Update = append(diff.Update, updated)
		}
	}

	for _, spec := range desired {
		if _, exists := byKind[spec.Kind]; !exists {
			diff.Add = append(diff.Add, spec)
		}
	}

	return diff
}
