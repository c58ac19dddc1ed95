package app

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

// settingsService implements the SettingsService interface. Values are
// stored JSON-encoded so settings of any shape share one table.
type settingsService struct {
	settingRepo settings.SettingRepository
	logger      logger.Logger
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(
	settingRepo settings.SettingRepository,
	logger logger.Logger,
) (settings.SettingsService, error) {
	return &settingsService{
		settingRepo: settingRepo,
		logger:      logger,
	}, nil
}

// Bool reads the setting for key as a boolean. A missing key reads as false;
// a stored value that is not a JSON boolean is an error.
func (s *settingsService) Bool(ctx context.Context, key string) (bool, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	var value bool
	if err := json.Unmarshal([]byte(setting.Value), &value); err != nil {
		return false, fmt.Errorf("setting %s does not hold a boolean: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, JSON-encoded, replacing any previous value.
func (s *settingsService) Set(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}

	setting := &settings.ConfigSetting{Key: key, Value: string(encoded)}
	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}

	return nil
}

// Get retrieves the raw JSON-encoded value for key.
func (s *settingsService) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// List retrieves all stored settings.
func (s *settingsService) List(ctx context.Context) ([]*settings.ConfigSetting, error) {
	return s.settingRepo.List(ctx)
}
