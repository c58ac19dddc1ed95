package settings

import (
	"context"
	"errors"
)

// ErrSettingNotFound is returned when no setting exists for a key.
var ErrSettingNotFound = errors.New("setting not found")

// SettingsService defines methods for reading and writing dashboard settings.
type SettingsService interface {
	// Bool reads the setting for key as a boolean. A missing key reads as
	// false; a stored value that is not a JSON boolean is an error.
	Bool(ctx context.Context, key string) (bool, error)

	// Set stores value under key, JSON-encoded, replacing any previous value.
	Set(ctx context.Context, key string, value interface{}) error

	// Get retrieves the raw JSON-encoded value for key.
	// It returns ErrSettingNotFound when the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// List retrieves all stored settings.
	List(ctx context.Context) ([]*ConfigSetting, error)
}

// SettingRepository defines the interface for ConfigSetting-related operations
type SettingRepository interface {
	// Upsert creates the setting or replaces its value when the key exists
	Upsert(ctx context.Context, setting *ConfigSetting) error
	// GetByKey retrieves a setting by key, ErrSettingNotFound when absent
	GetByKey(ctx context.Context, key string) (*ConfigSetting, error)
	// List lists all settings
	List(ctx context.Context) ([]*ConfigSetting, error)
}
