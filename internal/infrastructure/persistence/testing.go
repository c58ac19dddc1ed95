//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/infrastructure/persistence/models"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/config"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	BannerRepo  images.BannerImageRepository
	UserRepo    identity.UserRepository
	ProjectRepo identity.ProjectRepository
	SessionRepo identity.SessionRepository
	SettingRepo settings.SettingRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var dbSettings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		dbSettings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		dbSettings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(dbSettings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(
		&models.BannerImageModel{},
		&models.ProjectModel{},
		&models.UserModel{},
		&models.SessionModel{},
		&models.SettingModel{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	bannerRepo, err := NewGormBannerImageRepository(db, logger)
	require.NoError(t, err, "Failed to create banner image repository")

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	projectRepo, err := NewGormProjectRepository(db, logger)
	require.NoError(t, err, "Failed to create project repository")

	sessionRepo, err := NewGormSessionRepository(db, logger)
	require.NoError(t, err, "Failed to create session repository")

	settingRepo, err := NewGormSettingRepository(db, logger)
	require.NoError(t, err, "Failed to create setting repository")

	return &TestContext{
		DB:          db,
		BannerRepo:  bannerRepo,
		UserRepo:    userRepo,
		ProjectRepo: projectRepo,
		SessionRepo: sessionRepo,
		SettingRepo: settingRepo,
	}
}

// CreateTestProject creates a test project with default values
func CreateTestProject(t *testing.T) *identity.Project {
	t.Helper()

	return &identity.Project{
		ID:              uuid.NewString(),
		Name:            "test-project",
		DateTimeCreated: time.Now(),
	}
}

// CreateTestUser creates a test user attached to the given project
func CreateTestUser(t *testing.T, projectID string) *identity.User {
	t.Helper()

	return &identity.User{
		ID:              uuid.NewString(),
		Email:           uuid.NewString()[:8] + "@example.com",
		ProjectID:       &projectID,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestSession creates a test session for the given user, valid for one hour
func CreateTestSession(t *testing.T, userID string) *identity.Session {
	t.Helper()

	now := time.Now()
	return &identity.Session{
		Token:           uuid.NewString(),
		UserID:          userID,
		DateTimeCreated: now,
		ExpiresAt:       now.Add(time.Hour),
	}
}
