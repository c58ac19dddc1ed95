// cmd/dashboard-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/BeantownBash/beantownbash-dashboard/internal/api/rest/v1"
	"github.com/BeantownBash/beantownbash-dashboard/internal/app"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence/models"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/storage"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/config"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *appServices
	fileStore images.ImageFileStore
}

type appServices struct {
	bannerUpload    images.BannerUploadService
	bannerRemoval   images.BannerRemovalService
	sessionResolver identity.SessionResolver
	settings        settings.SettingsService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.BannerImageModel{}, &models.UserModel{}, &models.ProjectModel{}, &models.SessionModel{}, &models.SettingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	bannerRepo, err := persistence.NewGormBannerImageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create banner image repository: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	settingRepo, err := persistence.NewGormSettingRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create setting repository: %w", err)
	}

	// Initialize the uploads directory store
	fileStore, err := storage.NewDiskImageStore(&cfg.Uploads, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image file store: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(bannerRepo, userRepo, projectRepo, sessionRepo, settingRepo, fileStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services:  services,
		fileStore: fileStore,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.bannerUpload,
		deps.services.bannerRemoval,
		deps.services.sessionResolver,
		deps.services.settings,
		deps.fileStore,
		log,
	)

	// Serve OpenAPI spec
	r.GET("/api/v1/dashboard/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/dashboard.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	bannerRepo images.BannerImageRepository,
	userRepo identity.UserRepository,
	projectRepo identity.ProjectRepository,
	sessionRepo identity.SessionRepository,
	settingRepo settings.SettingRepository,
	fileStore images.ImageFileStore,
	log logger.Logger,
) (*appServices, error) {
	bannerUploadService, err := app.NewBannerUploadService(bannerRepo, projectRepo, fileStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create banner upload service: %w", err)
	}

	bannerRemovalService, err := app.NewBannerRemovalService(bannerRepo, fileStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create banner removal service: %w", err)
	}

	sessionResolver, err := app.NewSessionResolver(sessionRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session resolver: %w", err)
	}

	settingsService, err := app.NewSettingsService(settingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		bannerUpload:    bannerUploadService,
		bannerRemoval:   bannerRemovalService,
		sessionResolver: sessionResolver,
		settings:        settingsService,
	}, nil
}
