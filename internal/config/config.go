package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Recipes  RecipesConfig  `yaml:"recipes"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CatalogConfig holds ingredient catalog settings.
type CatalogConfig struct {
	// DefaultKindsRaw is a comma-separated list of kinds registered by
	// cmd/seed-kinds when no explicit list is given.
	DefaultKindsRaw string `yaml:"default_kinds" env:"CATALOG_DEFAULT_KINDS" env-default:"COFFEE,MILK,SUGAR,PUMPKIN_SPICE"`

	// DefaultKinds is parsed from DefaultKindsRaw during validation.
	DefaultKinds []string `yaml:"-" env:"-"`
}

// RecipesConfig holds recipe service settings.
type RecipesConfig struct {
	MaxEntries int `yaml:"max_entries" env:"RECIPES_MAX_ENTRIES" env-default:"50"`
}
