package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database backends understood by the persistence layer.
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings describes how to reach the metadata database. Name is
// optional for sqlite, where the DSN alone (a file path or :memory:)
// identifies the database.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that the settings identify a usable database.
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("name is required for postgres databases")
	}

	return nil
}
