package settings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Well-known setting keys read by the application.
const (
	// KeyForbidEditing freezes all mutating dashboard operations while set
	// to true, e.g. during judging.
	KeyForbidEditing = "forbidEditing"
)

// ConfigSetting entity. Value holds a JSON-encoded document so settings
// of any shape share one table.
type ConfigSetting struct {
	Key   string `validate:"required,min=1,max=255"`
	Value string `validate:"required"`
}

// Validate for validating ConfigSetting struct
func (s *ConfigSetting) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
