package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Project entity
type Project struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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
