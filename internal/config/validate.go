package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Recipes.MaxEntries < 1 {
		return fmt.Errorf("recipes.max_entries must be >= 1 (got %d)", c.Recipes.MaxEntries)
	}

	kinds, err := ParseKindList(c.Catalog.DefaultKindsRaw)
	if err != nil {
		return fmt.Errorf("catalog.default_kinds: %w", err)
	}
	c.Catalog.DefaultKinds = kinds

	return nil
}

// ParseKindList parses a comma-separated string of kind names
// (e.g. "COFFEE,MILK") into a slice. An empty string returns a nil slice.
// Duplicate names in the list are an error.
func ParseKindList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	kinds := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if seen[p] {
			return nil, fmt.Errorf("duplicate kind %q", p)
		}
		seen[p] = true
		kinds = append(kinds, p)
	}

	return kinds, nil
}
