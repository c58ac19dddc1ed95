package models

import (
	"time"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
)

// SessionModel is the GORM database model for sessions (infrastructure concern)
type SessionModel struct {
	Token           string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	ExpiresAt       time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *identity.Session {
	return &identity.Session{
		Token:           m.Token,
		UserID:          m.UserID,
		DateTimeCreated: m.DateTimeCreated,
		ExpiresAt:       m.ExpiresAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *identity.Session) {
	m.Token = s.Token
	m.UserID = s.UserID
	m.DateTimeCreated = s.DateTimeCreated
	m.ExpiresAt = s.ExpiresAt
}
