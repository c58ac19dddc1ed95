package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence/models"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

type gormBannerImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBannerImageRepository creates a new GORM-based BannerImageRepository implementation
func NewGormBannerImageRepository(db *gorm.DB, logger logger.Logger) (images.BannerImageRepository, error) {
	return &gormBannerImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBannerImageRepository) Create(ctx context.Context, image *images.BannerImage) error {
	// Validate domain entity (business rules)
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.BannerImageModel{}
	model.FromDomain(image)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create banner image: %w", err)
	}

	r.logger.Info("Created banner image record with id ", image.ID)
	return nil
}

func (r *gormBannerImageRepository) GetByProjectID(ctx context.Context, projectID string) (*images.BannerImage, error) {
	var model models.BannerImageModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %s: %w", projectID, images.ErrBannerNotFound)
		}
		return nil, fmt.Errorf("failed to fetch banner image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBannerImageRepository) DeleteByID(ctx context.Context, imageID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", imageID).Delete(&models.BannerImageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete banner image: %w", err)
	}

	r.logger.Info("Deleted banner image record with id ", imageID)
	return nil
}
