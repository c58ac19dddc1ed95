package models

import (
	"time"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	ProjectID       *string   `gorm:"type:uuid;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		ID:              m.ID,
		Email:           m.Email,
		ProjectID:       m.ProjectID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *identity.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.ProjectID = u.ProjectID
	m.DateTimeCreated = u.DateTimeCreated
}
