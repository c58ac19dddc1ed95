package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Session entity. Tokens are opaque, collision-resistant strings minted
// by the admin tooling; the server only ever looks them up.
type Session struct {
	Token           string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	ExpiresAt       time.Time `validate:"required"`
}

// IsExpired reports whether the session has expired at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Validate for validating Session struct
func (s *Session) Validate() error {
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
