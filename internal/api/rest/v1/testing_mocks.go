//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/identity"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/settings"

	"github.com/stretchr/testify/mock"
)

// MockBannerUploadService is a mock implementation of BannerUploadService
type MockBannerUploadService struct {
	mock.Mock
}

func (m *MockBannerUploadService) Upload(ctx context.Context, user *identity.User, body io.Reader) (*images.BannerImage, error) {
	args := m.Called(ctx, user, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.BannerImage), args.Error(1)
}

// MockBannerRemovalService is a mock implementation of BannerRemovalService
type MockBannerRemovalService struct {
	mock.Mock
}

func (m *MockBannerRemovalService) Remove(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSessionResolver is a mock implementation of SessionResolver
type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) Resolve(ctx context.Context, token string) (*identity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Bool(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsService) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingsService) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsService) List(ctx context.Context) ([]*settings.ConfigSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settings.ConfigSetting), args.Error(1)
}

// MockImageFileStore is a mock implementation of ImageFileStore
type MockImageFileStore struct {
	mock.Mock
}

func (m *MockImageFileStore) Save(ctx context.Context, imageID string, content io.Reader) (int64, error) {
	args := m.Called(ctx, imageID, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImageFileStore) Open(ctx context.Context, imageID string) (io.ReadCloser, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockImageFileStore) Delete(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}
