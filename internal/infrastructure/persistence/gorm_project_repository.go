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

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (identity.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *identity.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	r.logger.Info("Created project record with id ", project.ID)
	return nil
}

func (r *gormProjectRepository) GetByID(ctx context.Context, projectID string) (*identity.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", projectID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %s: %w", projectID, identity.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return model.ToDomain(), nil
}
