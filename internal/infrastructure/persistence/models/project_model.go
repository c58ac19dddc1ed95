package models

import (
	"time"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
)

// ProjectModel is the GORM database model for projects (infrastructure concern)
type ProjectModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *identity.Project {
	return &identity.Project{
		ID:              m.ID,
		Name:            m.Name,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *identity.Project) {
	m.ID = p.ID
	m.Name = p.Name
	m.DateTimeCreated = p.DateTimeCreated
}
