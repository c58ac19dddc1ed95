//go:build integration
// +build integration

package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/storage"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/config"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	BannerUploadService  images.BannerUploadService
	BannerRemovalService images.BannerRemovalService
	SessionResolver      identity.SessionResolver
	SessionIssuer        identity.SessionIssuer
	UserService          identity.UserService
	SettingsService      settings.SettingsService

	// Infrastructure
	FileStore  images.ImageFileStore
	UploadsDir string
	DBContext  *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup disk store under a per-test directory
	uploadsDir := filepath.Join(t.TempDir(), "uploads")
	fileStore, err := storage.NewDiskImageStore(&config.UploadsSettings{Dir: uploadsDir}, logger)
	require.NoError(t, err, "Failed to create image file store")

	// Initialize banner services
	bannerUploadService, err := NewBannerUploadService(
		dbContext.BannerRepo,
		dbContext.ProjectRepo,
		fileStore,
		logger,
	)
	require.NoError(t, err, "Failed to create BannerUploadService")

	bannerRemovalService, err := NewBannerRemovalService(
		dbContext.BannerRepo,
		fileStore,
		logger,
	)
	require.NoError(t, err, "Failed to create BannerRemovalService")

	// Initialize identity services
	sessionResolver, err := NewSessionResolver(
		dbContext.SessionRepo,
		dbContext.UserRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create SessionResolver")

	sessionIssuer, err := NewSessionIssuer(
		dbContext.SessionRepo,
		dbContext.UserRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create SessionIssuer")

	userService, err := NewUserService(
		dbContext.UserRepo,
		dbContext.ProjectRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create UserService")

	// Initialize settings service
	settingsService, err := NewSettingsService(
		dbContext.SettingRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create SettingsService")

	return &TestServices{
		BannerUploadService:  bannerUploadService,
		BannerRemovalService: bannerRemovalService,
		SessionResolver:      sessionResolver,
		SessionIssuer:        sessionIssuer,
		UserService:          userService,
		SettingsService:      settingsService,
		FileStore:            fileStore,
		UploadsDir:           uploadsDir,
		DBContext:            dbContext,
	}
}

// CreateProjectUser seeds a project and its owning user
func CreateProjectUser(t *testing.T, services *TestServices, email, projectName string) *identity.User {
	t.Helper()

	user, err := services.UserService.CreateWithProject(context.Background(), email, projectName)
	require.NoError(t, err)
	return user
}

// IssueSession mints a one-hour session for the given user email
func IssueSession(t *testing.T, services *TestServices, email string) *identity.Session {
	t.Helper()

	session, err := services.SessionIssuer.Issue(context.Background(), email, time.Hour)
	require.NoError(t, err)
	return session
}
