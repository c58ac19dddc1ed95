package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence/models"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (identity.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *identity.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("Created session for user ", session.UserID)
	return nil
}

func (r *gormSessionRepository) GetByToken(ctx context.Context, token string) (*identity.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrNoSession
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	r.logger.Info("Deleted session")
	return nil
}
