//go:build unit
// +build unit

package v1

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestImageHandler_ServeByID_Success(t *testing.T) {
	mockFileStore := new(MockImageFileStore)
	handler := NewImageHandler(mockFileStore, testutil.SetupTestLogger(t))

	imageID := uuid.New().String()
	content := "jpeg bytes"

	mockFileStore.On("Open", mock.Anything, imageID).
		Return(io.NopCloser(strings.NewReader(content)), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/res/images/"+imageID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: imageID}}

	handler.ServeByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, content, w.Body.String())
	mockFileStore.AssertExpectations(t)
}

func TestImageHandler_ServeByID_InvalidID(t *testing.T) {
	mockFileStore := new(MockImageFileStore)
	handler := NewImageHandler(mockFileStore, testutil.SetupTestLogger(t))

	// A non-UUID id never reaches the file store, so a traversal attempt
	// cannot name a path outside the uploads directory.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/res/images/..%2Fsecret", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "../secret"}}

	handler.ServeByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "image not found")
	mockFileStore.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestImageHandler_ServeByID_NotFound(t *testing.T) {
	mockFileStore := new(MockImageFileStore)
	handler := NewImageHandler(mockFileStore, testutil.SetupTestLogger(t))

	imageID := uuid.New().String()

	mockFileStore.On("Open", mock.Anything, imageID).
		Return(nil, fmt.Errorf("banner image %s: %w", imageID, images.ErrBannerNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/res/images/"+imageID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: imageID}}

	handler.ServeByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "image not found")
	mockFileStore.AssertExpectations(t)
}

func TestImageHandler_ServeByID_StoreError(t *testing.T) {
	mockFileStore := new(MockImageFileStore)
	handler := NewImageHandler(mockFileStore, testutil.SetupTestLogger(t))

	imageID := uuid.New().String()

	mockFileStore.On("Open", mock.Anything, imageID).
		Return(nil, fmt.Errorf("open failed: permission denied"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/res/images/"+imageID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: imageID}}

	handler.ServeByID(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "permission denied")
	mockFileStore.AssertExpectations(t)
}
