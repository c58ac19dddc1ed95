package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence/models"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

type gormSettingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSettingRepository creates a new GORM-based SettingRepository implementation
func NewGormSettingRepository(db *gorm.DB, logger logger.Logger) (settings.SettingRepository, error) {
	return &gormSettingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSettingRepository) Upsert(ctx context.Context, setting *settings.ConfigSetting) error {
	if err := setting.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SettingModel{}
	model.FromDomain(setting)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	r.logger.Info("Upserted setting ", setting.Key)
	return nil
}

func (r *gormSettingRepository) GetByKey(ctx context.Context, key string) (*settings.ConfigSetting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key %s: %w", key, settings.ErrSettingNotFound)
		}
		return nil, fmt.Errorf("failed to fetch setting: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSettingRepository) List(ctx context.Context) ([]*settings.ConfigSetting, error) {
	var modelList []*models.SettingModel
	if err := r.db.WithContext(ctx).Order("key asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	domainList := make([]*settings.ConfigSetting, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
