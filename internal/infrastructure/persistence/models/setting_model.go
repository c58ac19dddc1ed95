package models

import (
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
)

// SettingModel is the GORM database model for config settings (infrastructure concern)
type SettingModel struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value string `gorm:"not null;type:text"`
}

// TableName specifies the table name for GORM
func (SettingModel) TableName() string {
	return "config_settings"
}

// ToDomain converts GORM model to domain entity
func (m *SettingModel) ToDomain() *settings.ConfigSetting {
	return &settings.ConfigSetting{
		Key:   m.Key,
		Value: m.Value,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SettingModel) FromDomain(s *settings.ConfigSetting) {
	m.Key = s.Key
	m.Value = s.Value
}
