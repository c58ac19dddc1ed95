//go:build unit
// +build unit

package images

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBannerImage(t *testing.T) {
	projectID := uuid.New().String()

	image := NewBannerImage(projectID)
	require.NotNil(t, image)

	_, err := uuid.Parse(image.ID)
	assert.NoError(t, err, "ID should be a valid UUID")
	assert.Equal(t, projectID, image.ProjectID)
	assert.Equal(t, "/api/res/images/"+image.ID, image.URL)
	assert.False(t, image.DateTimeCreated.IsZero())
	assert.NoError(t, image.Validate())
}

func TestNewBannerImage_UniqueIDs(t *testing.T) {
	projectID := uuid.New().String()

	first := NewBannerImage(projectID)
	second := NewBannerImage(projectID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFileName(t *testing.T) {
	id := uuid.New().String()
	assert.Equal(t, id+".jpg", FileName(id))
}

func TestFileURL(t *testing.T) {
	id := uuid.New().String()
	assert.Equal(t, "/api/res/images/"+id, FileURL(id))
}

func TestBannerImageValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*BannerImage)
		expectError bool
		errContains string
	}{
		{
			name:        "valid image",
			mutate:      func(b *BannerImage) {},
			expectError: false,
		},
		{
			name:        "missing id",
			mutate:      func(b *BannerImage) { b.ID = "" },
			expectError: true,
			errContains: "Field: ID, Tag: required",
		},
		{
			name:        "non-uuid id",
			mutate:      func(b *BannerImage) { b.ID = "../../etc/passwd" },
			expectError: true,
			errContains: "Field: ID, Tag: uuid4",
		},
		{
			name:        "missing project id",
			mutate:      func(b *BannerImage) { b.ProjectID = "" },
			expectError: true,
			errContains: "Field: ProjectID, Tag: required",
		},
		{
			name:        "missing url",
			mutate:      func(b *BannerImage) { b.URL = "" },
			expectError: true,
			errContains: "Field: URL, Tag: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := NewBannerImage(uuid.New().String())
			tt.mutate(image)

			err := image.Validate()
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
