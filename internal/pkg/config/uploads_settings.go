package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UploadsSettings locates the directory banner image files are written to
// and served from. The directory is created on demand by the file store.
type UploadsSettings struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// Validate checks that an uploads directory is configured.
func (s *UploadsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for UploadsSettings: %w", err)
	}

	return nil
}
