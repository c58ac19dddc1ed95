package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the dashboard frontend stores the session
// token in. A bearer Authorization header is accepted as a fallback.
const SessionCookieName = "session_token"

// BannerHandler defines the interface for handling banner-image-related operations
type BannerHandler interface {
	Upload(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

// bannerHandler struct holds the services
type bannerHandler struct {
	bannerUploadService  images.BannerUploadService
	bannerRemovalService images.BannerRemovalService
	sessionResolver      identity.SessionResolver
	settingsService      settings.SettingsService
	logger               logger.Logger
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerUploadService images.BannerUploadService, bannerRemovalService images.BannerRemovalService, sessionResolver identity.SessionResolver, settingsService settings.SettingsService, logger logger.Logger) BannerHandler {
	return &bannerHandler{
		bannerUploadService:  bannerUploadService,
		bannerRemovalService: bannerRemovalService,
		sessionResolver:      sessionResolver,
		settingsService:      settingsService,
		logger:               logger,
	}
}

// sessionTokenFromRequest extracts the session token from the session cookie,
// falling back to a bearer Authorization header. Returns "" when neither is set.
func sessionTokenFromRequest(ctx *gin.Context) string {
	if token, err := ctx.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}

	authorization := ctx.GetHeader("Authorization")
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	}
	return ""
}

// Upload replaces the caller's project banner image with the raw request body.
//
// The body is not parsed as a form: the bytes are streamed to disk as they
// arrive. Gates run in a fixed order. The edit lock is checked first, then the
// declared content length against the size ceiling, then the session. The
// declared-length check is only a fast reject; the streaming pipeline counts
// the bytes it actually sees, so a missing or dishonest Content-Length header
// still ends in a 413 and the wrapped body terminates the inbound connection.
func (handler *bannerHandler) Upload(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		ctx.Header("Allow", http.MethodPost)
		ctx.JSON(http.StatusMethodNotAllowed, ErrorResponse{E: "method not allowed"})
		return
	}

	forbidden, err := handler.settingsService.Bool(ctx, settings.KeyForbidEditing)
	if err != nil {
		handler.logger.Error("Could not read the edit lock setting: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}
	if forbidden {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{E: "editing is currently disabled"})
		return
	}

	if ctx.Request.ContentLength > images.MaxUploadSizeBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{E: "image too large"})
		return
	}

	user, err := handler.sessionResolver.Resolve(ctx, sessionTokenFromRequest(ctx))
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{E: "not signed in"})
			return
		}
		handler.logger.Error("Could not resolve the session: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}

	body := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, images.MaxUploadSizeBytes)
	image, err := handler.bannerUploadService.Upload(ctx, user, body)
	if err != nil {
		if errors.Is(err, images.ErrUploadTooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{E: "image too large"})
			return
		}
		handler.logger.Error("Banner image upload failed: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, UploadImageResponse{URL: image.URL})
}

// Remove deletes the caller's project banner image and its file.
func (handler *bannerHandler) Remove(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodDelete {
		ctx.Header("Allow", http.MethodDelete)
		ctx.JSON(http.StatusMethodNotAllowed, ErrorResponse{E: "method not allowed"})
		return
	}

	forbidden, err := handler.settingsService.Bool(ctx, settings.KeyForbidEditing)
	if err != nil {
		handler.logger.Error("Could not read the edit lock setting: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}
	if forbidden {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{E: "editing is currently disabled"})
		return
	}

	user, err := handler.sessionResolver.Resolve(ctx, sessionTokenFromRequest(ctx))
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{E: "not signed in"})
			return
		}
		handler.logger.Error("Could not resolve the session: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}

	if err := handler.bannerRemovalService.Remove(ctx, user); err != nil {
		if errors.Is(err, images.ErrBannerNotFound) || errors.Is(err, identity.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{E: "no banner image to remove"})
			return
		}
		handler.logger.Error("Banner image removal failed: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "banner image removed"})
}
