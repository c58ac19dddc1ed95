package v1

import (
	"errors"
	"net/http"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImageHandler defines the interface for serving stored banner images
type ImageHandler interface {
	ServeByID(ctx *gin.Context)
}

// imageHandler struct holds the file store
type imageHandler struct {
	fileStore images.ImageFileStore
	logger    logger.Logger
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(fileStore images.ImageFileStore, logger logger.Logger) ImageHandler {
	return &imageHandler{
		fileStore: fileStore,
		logger:    logger,
	}
}

// ServeByID streams the stored banner image for the given ID. The ID must be
// a UUID, which also rules out path traversal through the id segment. Files
// are always stored and served as image/jpeg.
func (handler *imageHandler) ServeByID(ctx *gin.Context) {
	imageID := ctx.Param("id")

	if _, err := uuid.Parse(imageID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{E: "image not found"})
		return
	}

	reader, err := handler.fileStore.Open(ctx, imageID)
	if err != nil {
		if errors.Is(err, images.ErrBannerNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{E: "image not found"})
			return
		}
		handler.logger.Error("Could not open banner image ", imageID, ": ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{E: "internal server error"})
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	ctx.DataFromReader(http.StatusOK, -1, "image/jpeg", reader, nil)
}
