package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/config"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

type diskImageStore struct {
	dir    string
	logger logger.Logger
}

// NewDiskImageStore creates a disk-backed ImageFileStore rooted at the
// configured uploads directory.
func NewDiskImageStore(settings *config.UploadsSettings, logger logger.Logger) (images.ImageFileStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &diskImageStore{
		dir:    settings.Dir,
		logger: logger,
	}, nil
}

func (s *diskImageStore) path(imageID string) string {
	return filepath.Join(s.dir, images.FileName(imageID))
}

func (s *diskImageStore) Save(ctx context.Context, imageID string, content io.Reader) (int64, error) {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return 0, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	path := s.path(imageID)
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create image file: %w", err)
	}

	// The copy error matters more than the close error, but the file handle
	// must be released on every path.
	written, copyErr := io.Copy(file, content)
	closeErr := file.Close()

	if copyErr != nil {
		return written, fmt.Errorf("failed to write image file: %w", copyErr)
	}
	if closeErr != nil {
		return written, fmt.Errorf("failed to close image file: %w", closeErr)
	}

	s.logger.Info("Wrote image file ", path, " (", written, " bytes)")
	return written, nil
}

func (s *diskImageStore) Open(ctx context.Context, imageID string) (io.ReadCloser, error) {
	file, err := os.Open(s.path(imageID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image %s: %w", imageID, images.ErrBannerNotFound)
		}
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return file, nil
}

func (s *diskImageStore) Delete(ctx context.Context, imageID string) error {
	path := s.path(imageID)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	s.logger.Info("Removed image file ", path)
	return nil
}
