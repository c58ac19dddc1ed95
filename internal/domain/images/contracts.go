package images

import (
	"context"
	"errors"
	"io"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
)

var (
	// ErrUploadTooLarge is returned when an upload exceeds MaxUploadSizeBytes.
	ErrUploadTooLarge = errors.New("upload exceeds size limit")
	// ErrBannerNotFound is returned when a project has no banner image.
	ErrBannerNotFound = errors.New("banner image not found")
)

// BannerUploadService defines methods for replacing a project's banner image.
type BannerUploadService interface {
	// Upload streams body to storage as the new banner image for the user's
	// project, replacing any previous one. It returns ErrUploadTooLarge when
	// body exceeds MaxUploadSizeBytes, counted as the bytes arrive.
	Upload(ctx context.Context, user *identity.User, body io.Reader) (*BannerImage, error)
}

// BannerRemovalService defines methods for removing a project's banner image.
type BannerRemovalService interface {
	// Remove deletes the banner image of the user's project. It returns
	// ErrBannerNotFound when the project has none.
	Remove(ctx context.Context, user *identity.User) error
}

// BannerImageRepository defines the interface for BannerImage-related operations
type BannerImageRepository interface {
	// Create adds a new BannerImage to the database
	Create(ctx context.Context, image *BannerImage) error
	// GetByProjectID retrieves a project's BannerImage, ErrBannerNotFound when absent
	GetByProjectID(ctx context.Context, projectID string) (*BannerImage, error)
	// DeleteByID deletes a BannerImage in the database by ID
	DeleteByID(ctx context.Context, imageID string) error
}

// ImageFileStore is an interface for interacting with banner image file storage.
type ImageFileStore interface {
	// Save streams content to the file for the given image ID, creating the
	// storage location when needed, and returns the number of bytes written.
	Save(ctx context.Context, imageID string, content io.Reader) (int64, error)

	// Open opens the stored file for the given image ID for reading.
	Open(ctx context.Context, imageID string) (io.ReadCloser, error)

	// Delete removes the stored file for the given image ID and returns any
	// error encountered.
	Delete(ctx context.Context, imageID string) error
}
