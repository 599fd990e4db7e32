package catalog

import (
	"github.com/heartmarshall/brewbook-backend/internal/domain"
)

// RegisterKindInput holds the parameters for registering an ingredient kind.
type RegisterKindInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i RegisterKindInput) Validate() error {
	return domain.ValidateKindName(i.Name)
}
