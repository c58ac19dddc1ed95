package images

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxUploadSizeBytes is the hard ceiling for a banner image upload. It is
// enforced against the declared request size and again against the bytes
// actually observed on the wire.
const MaxUploadSizeBytes int64 = 5_000_000

// FileName returns the on-disk file name for a banner image ID.
func FileName(id string) string {
	return id + ".jpg"
}

// FileURL returns the public URL under which a banner image ID is served.
func FileURL(id string) string {
	return "/api/res/images/" + id
}

// BannerImage entity. A project has at most one banner image; URL is the
// public serve path derived from ID.
type BannerImage struct {
	ID              string    `validate:"required,uuid4"`
	URL             string    `validate:"required"`
	ProjectID       string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
}

// NewBannerImage creates a BannerImage with a fresh ID for the project.
func NewBannerImage(projectID string) *BannerImage {
	id := uuid.New().String()
	return &BannerImage{
		ID:              id,
		URL:             FileURL(id),
		ProjectID:       projectID,
		DateTimeCreated: time.Now(),
	}
}

// Validate for validating BannerImage struct
func (b *BannerImage) Validate() error {
	validate := validator.New()

	err := validate.Struct(b)
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
