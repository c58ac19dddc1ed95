package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST API and the admin CLI
// consume. It is loaded once at startup from a YAML file.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Uploads  UploadsSettings  `mapstructure:"uploads"`
}

// Validate checks the top-level fields and every nested settings struct.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Uploads.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads and validates the YAML configuration file at
// configPath.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
