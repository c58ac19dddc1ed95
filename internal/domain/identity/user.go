package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// User entity. ProjectID is nil for users that have not been attached to
// a project yet.
type User struct {
	ID              string    `validate:"required,uuid4"`
	Email           string    `validate:"required,email"`
	ProjectID       *string   `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
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
