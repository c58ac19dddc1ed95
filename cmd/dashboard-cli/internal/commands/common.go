package commands

import (
	"fmt"
	"os"

	"github.com/BeantownBash/beantownbash-dashboard/internal/app"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence/models"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/config"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the shared application config. The CLI uses the same file
// as the REST server so both always point at the same database.
func loadConfig() (*config.RestConfig, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	return config.InitializeRestConfig(configPath)
}

// adminContext bundles the services the admin commands operate on.
type adminContext struct {
	settingsService settings.SettingsService
	userService     identity.UserService
	sessionIssuer   identity.SessionIssuer
	logger          logger.Logger
}

// newAdminContext connects to the configured database and wires up the
// services. Migrations run here too, so the CLI can seed a fresh database
// before the server has ever started.
func newAdminContext() (*adminContext, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.BannerImageModel{}, &models.UserModel{}, &models.ProjectModel{}, &models.SessionModel{}, &models.SettingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	projectRepo, err := persistence.NewGormProjectRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	sessionRepo, err := persistence.NewGormSessionRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	settingRepo, err := persistence.NewGormSettingRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create setting repository: %w", err)
	}

	settingsService, err := app.NewSettingsService(settingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, projectRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	sessionIssuer, err := app.NewSessionIssuer(sessionRepo, userRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create session issuer: %w", err)
	}

	return &adminContext{
		settingsService: settingsService,
		userService:     userService,
		sessionIssuer:   sessionIssuer,
		logger:          loggerInstance,
	}, nil
}
