//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBannerHandlerFixture(t *testing.T) (*MockBannerUploadService, *MockBannerRemovalService, *MockSessionResolver, *MockSettingsService, BannerHandler) {
	mockUploadService := new(MockBannerUploadService)
	mockRemovalService := new(MockBannerRemovalService)
	mockSessionResolver := new(MockSessionResolver)
	mockSettingsService := new(MockSettingsService)

	handler := NewBannerHandler(mockUploadService, mockRemovalService, mockSessionResolver, mockSettingsService, testutil.SetupTestLogger(t))

	return mockUploadService, mockRemovalService, mockSessionResolver, mockSettingsService, handler
}

func testUser() *identity.User {
	projectID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	return &identity.User{
		ID:        "a1b2c3d4-0000-0000-0000-000000000001",
		Email:     "team@beantownbash.org",
		ProjectID: &projectID,
	}
}

func TestBannerHandler_Upload_Success(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()
	image := images.NewBannerImage(*user.ProjectID)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-cookie").Return(user, nil)
	mockUploadService.On("Upload", mock.Anything, user, mock.Anything).Return(image, nil)

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"url": "/api/res/images/%s"}`, image.ID), w.Body.String())
	mockUploadService.AssertExpectations(t)
	mockSessionResolver.AssertExpectations(t)
}

func TestBannerHandler_Upload_MethodNotAllowed(t *testing.T) {
	mockUploadService, _, _, mockSettingsService, handler := newBannerHandlerFixture(t)

	req, _ := http.NewRequest("GET", "/api/upload-image", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))
	assert.Contains(t, w.Body.String(), "method not allowed")
	mockSettingsService.AssertNotCalled(t, "Bool", mock.Anything, mock.Anything)
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerHandler_Upload_EditingForbidden(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(true, nil)

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "editing is currently disabled")
	mockSessionResolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerHandler_Upload_DeclaredContentLengthTooLarge(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))
	req.ContentLength = images.MaxUploadSizeBytes + 1

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	// The declared-length reject happens before authentication and before any
	// byte is read.
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "image too large")
	mockSessionResolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerHandler_Upload_DeclaredContentLengthAtCeiling(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()
	image := images.NewBannerImage(*user.ProjectID)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-cookie").Return(user, nil)
	mockUploadService.On("Upload", mock.Anything, user, mock.Anything).Return(image, nil)

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))
	req.ContentLength = images.MaxUploadSizeBytes
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUploadService.AssertExpectations(t)
}

func TestBannerHandler_Upload_Unauthenticated(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "").Return(nil, identity.ErrNoSession)

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not signed in")
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerHandler_Upload_BearerToken(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()
	image := images.NewBannerImage(*user.ProjectID)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-bearer").Return(user, nil)
	mockUploadService.On("Upload", mock.Anything, user, mock.Anything).Return(image, nil)

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))
	req.Header.Set("Authorization", "Bearer tok-bearer")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSessionResolver.AssertExpectations(t)
}

func TestBannerHandler_Upload_TooLargeMidStream(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-cookie").Return(user, nil)
	mockUploadService.On("Upload", mock.Anything, user, mock.Anything).
		Return(nil, fmt.Errorf("banner for project x: %w", images.ErrUploadTooLarge))

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "image too large")
	mockUploadService.AssertExpectations(t)
}

func TestBannerHandler_Upload_InternalError(t *testing.T) {
	mockUploadService, _, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-cookie").Return(user, nil)
	mockUploadService.On("Upload", mock.Anything, user, mock.Anything).
		Return(nil, errors.New("disk full"))

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	// Internal detail stays out of the body.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestBannerHandler_Upload_SettingReadError(t *testing.T) {
	mockUploadService, _, _, mockSettingsService, handler := newBannerHandlerFixture(t)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).
		Return(false, errors.New("db down"))

	req, _ := http.NewRequest("POST", "/api/upload-image", bytes.NewReader([]byte("jpeg bytes")))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Upload(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerHandler_Remove_Success(t *testing.T) {
	_, mockRemovalService, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-cookie").Return(user, nil)
	mockRemovalService.On("Remove", mock.Anything, user).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/upload-image/current", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Remove(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "banner image removed")
	mockRemovalService.AssertExpectations(t)
}

func TestBannerHandler_Remove_MethodNotAllowed(t *testing.T) {
	_, mockRemovalService, _, _, handler := newBannerHandlerFixture(t)

	req, _ := http.NewRequest("POST", "/api/upload-image/current", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Remove(c)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "DELETE", w.Header().Get("Allow"))
	mockRemovalService.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestBannerHandler_Remove_EditingForbidden(t *testing.T) {
	_, mockRemovalService, _, mockSettingsService, handler := newBannerHandlerFixture(t)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(true, nil)

	req, _ := http.NewRequest("DELETE", "/api/upload-image/current", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Remove(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRemovalService.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestBannerHandler_Remove_NoBanner(t *testing.T) {
	_, mockRemovalService, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	user := testUser()

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "tok-cookie").Return(user, nil)
	mockRemovalService.On("Remove", mock.Anything, user).
		Return(fmt.Errorf("failed to look up banner: %w", images.ErrBannerNotFound))

	req, _ := http.NewRequest("DELETE", "/api/upload-image/current", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Remove(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no banner image to remove")
}

func TestBannerHandler_Remove_Unauthenticated(t *testing.T) {
	_, mockRemovalService, mockSessionResolver, mockSettingsService, handler := newBannerHandlerFixture(t)

	mockSettingsService.On("Bool", mock.Anything, settings.KeyForbidEditing).Return(false, nil)
	mockSessionResolver.On("Resolve", mock.Anything, "").Return(nil, identity.ErrNoSession)

	req, _ := http.NewRequest("DELETE", "/api/upload-image/current", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Remove(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRemovalService.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
