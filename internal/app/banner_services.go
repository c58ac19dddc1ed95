package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

// bannerUploadService implements the BannerUploadService interface for
// replacing a project's banner image
type bannerUploadService struct {
	bannerRepo  images.BannerImageRepository
	projectRepo identity.ProjectRepository
	fileStore   images.ImageFileStore
	logger      logger.Logger
}

// NewBannerUploadService creates a new instance of BannerUploadService
func NewBannerUploadService(
	bannerRepo images.BannerImageRepository,
	projectRepo identity.ProjectRepository,
	fileStore images.ImageFileStore,
	logger logger.Logger,
) (images.BannerUploadService, error) {
	return &bannerUploadService{
		bannerRepo:  bannerRepo,
		projectRepo: projectRepo,
		fileStore:   fileStore,
		logger:      logger,
	}, nil
}

// Upload streams body to storage as the new banner image for the user's
// project. The previous banner record is deleted before the new one is
// created; the new record exists before the stream completes and is removed
// again when the stream fails. The size ceiling is enforced on the bytes
// actually read, independent of any transport-level guard.
func (s *bannerUploadService) Upload(ctx context.Context, user *identity.User, body io.Reader) (*images.BannerImage, error) {
	if user.ProjectID == nil {
		return nil, fmt.Errorf("user %s has no project: %w", user.ID, identity.ErrProjectNotFound)
	}

	project, err := s.projectRepo.GetByID(ctx, *user.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project: %w", err)
	}

	// Step 1: Retire any existing banner. The record goes first; the file is
	// removed best effort once the record is gone.
	old, err := s.bannerRepo.GetByProjectID(ctx, project.ID)
	switch {
	case err == nil:
		if err := s.bannerRepo.DeleteByID(ctx, old.ID); err != nil {
			return nil, fmt.Errorf("failed to delete previous banner record: %w", err)
		}
		if err := s.fileStore.Delete(ctx, old.ID); err != nil {
			s.logger.Warn("Could not remove previous banner file ", old.ID, ": ", err)
		}
	case errors.Is(err, images.ErrBannerNotFound):
		// first banner for this project
	default:
		return nil, fmt.Errorf("failed to look up previous banner: %w", err)
	}

	// Step 2: Create the new record. It exists before the bytes land on disk.
	image := images.NewBannerImage(project.ID)
	if err := s.bannerRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create banner record: %w", err)
	}

	// Step 3: Stream the body to storage. The LimitReader cap is one byte
	// above the ceiling so an oversized body is detectable from the count
	// without reading it to the end.
	written, err := s.fileStore.Save(ctx, image.ID, io.LimitReader(body, images.MaxUploadSizeBytes+1))
	if err != nil {
		s.cleanupFailedUpload(ctx, image.ID)

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("banner for project %s: %w", project.ID, images.ErrUploadTooLarge)
		}
		return nil, fmt.Errorf("failed to store banner image: %w", err)
	}

	if written > images.MaxUploadSizeBytes {
		s.cleanupFailedUpload(ctx, image.ID)
		return nil, fmt.Errorf("banner for project %s: %w", project.ID, images.ErrUploadTooLarge)
	}

	s.logger.Info("Uploaded banner image ", image.ID, " for project ", project.ID, " (", written, " bytes)")
	return image, nil
}

// cleanupFailedUpload removes the provisional record and whatever bytes made
// it to disk. Failures are logged, never propagated.
func (s *bannerUploadService) cleanupFailedUpload(ctx context.Context, imageID string) {
	if err := s.bannerRepo.DeleteByID(ctx, imageID); err != nil {
		s.logger.Warn("Could not remove provisional banner record ", imageID, ": ", err)
	}
	if err := s.fileStore.Delete(ctx, imageID); err != nil {
		s.logger.Warn("Could not remove partial banner file ", imageID, ": ", err)
	}
}

// bannerRemovalService implements the BannerRemovalService interface for
// deleting a project's banner image
type bannerRemovalService struct {
	bannerRepo images.BannerImageRepository
	fileStore  images.ImageFileStore
	logger     logger.Logger
}

// NewBannerRemovalService creates a new instance of BannerRemovalService
func NewBannerRemovalService(
	bannerRepo images.BannerImageRepository,
	fileStore images.ImageFileStore,
	logger logger.Logger,
) (images.BannerRemovalService, error) {
	return &bannerRemovalService{
		bannerRepo: bannerRepo,
		fileStore:  fileStore,
		logger:     logger,
	}, nil
}

// Remove deletes the banner image of the user's project, record first, then
// the file best effort.
func (s *bannerRemovalService) Remove(ctx context.Context, user *identity.User) error {
	if user.ProjectID == nil {
		return fmt.Errorf("user %s has no project: %w", user.ID, identity.ErrProjectNotFound)
	}

	image, err := s.bannerRepo.GetByProjectID(ctx, *user.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to look up banner: %w", err)
	}

	if err := s.bannerRepo.DeleteByID(ctx, image.ID); err != nil {
		return fmt.Errorf("failed to delete banner record: %w", err)
	}

	if err := s.fileStore.Delete(ctx, image.ID); err != nil {
		s.logger.Warn("Could not remove banner file ", image.ID, ": ", err)
	}

	s.logger.Info("Removed banner image ", image.ID, " for project ", *user.ProjectID)
	return nil
}
