package models

import (
	"time"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
)

// BannerImageModel is the GORM database model for banner images (infrastructure concern).
// The unique index on ProjectID backs the one-banner-per-project rule.
type BannerImageModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	URL             string    `gorm:"not null;type:varchar(255)"`
	ProjectID       string    `gorm:"not null;uniqueIndex;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BannerImageModel) TableName() string {
	return "banner_images"
}

// ToDomain converts GORM model to domain entity
func (m *BannerImageModel) ToDomain() *images.BannerImage {
	return &images.BannerImage{
		ID:              m.ID,
		URL:             m.URL,
		ProjectID:       m.ProjectID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BannerImageModel) FromDomain(b *images.BannerImage) {
	m.ID = b.ID
	m.URL = b.URL
	m.ProjectID = b.ProjectID
	m.DateTimeCreated = b.DateTimeCreated
}
