package v1

import (
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
//
// The upload and remove paths are registered for every method so the handlers
// can answer non-matching methods with 405 and an Allow header instead of the
// router's default 404.
func SetupRoutes(r *gin.Engine,
	bannerUploadService images.BannerUploadService,
	bannerRemovalService images.BannerRemovalService,
	sessionResolver identity.SessionResolver,
	settingsService settings.SettingsService,
	fileStore images.ImageFileStore,
	logger logger.Logger) {

	api := r.Group(BasePath) // lookup in version file

	// Banner Routes
	bannerHandler := NewBannerHandler(bannerUploadService, bannerRemovalService, sessionResolver, settingsService, logger)
	api.Any("/upload-image", bannerHandler.Upload)
	api.Any("/upload-image/current", bannerHandler.Remove)

	// Image Routes
	imageHandler := NewImageHandler(fileStore, logger)
	api.GET("/res/images/:id", imageHandler.ServeByID)
}
