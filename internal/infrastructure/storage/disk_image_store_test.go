//go:build unit
// +build unit

package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeantownBash/beantownbash-dashboard/internal/domain/images"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/config"
	"github.com/BeantownBash/beantownbash-dashboard/internal/pkg/testutil"
)

func newTestStore(t *testing.T) (images.ImageFileStore, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskImageStore(&config.UploadsSettings{Dir: dir}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return store, dir
}

func TestDiskImageStore_Save(t *testing.T) {
	store, dir := newTestStore(t)

	imageID := uuid.NewString()
	content := []byte("jpeg bytes")

	written, err := store.Save(context.Background(), imageID, bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), written)

	// The uploads directory is created on demand and the file carries the
	// {id}.jpg name.
	stored, err := os.ReadFile(filepath.Join(dir, imageID+".jpg"))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestDiskImageStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)

	imageID := uuid.NewString()

	_, err := store.Save(context.Background(), imageID, bytes.NewReader([]byte("first")))
	require.NoError(t, err)

	_, err = store.Save(context.Background(), imageID, bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	reader, err := store.Open(context.Background(), imageID)
	require.NoError(t, err)
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), stored)
}

func TestDiskImageStore_Open_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Open(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, images.ErrBannerNotFound)
}

func TestDiskImageStore_Delete(t *testing.T) {
	store, dir := newTestStore(t)

	imageID := uuid.NewString()
	_, err := store.Save(context.Background(), imageID, bytes.NewReader([]byte("data")))
	require.NoError(t, err)

	err = store.Delete(context.Background(), imageID)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, imageID+".jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskImageStore_Delete_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), uuid.NewString())
	assert.Error(t, err)
}

func TestNewDiskImageStore_InvalidSettings(t *testing.T) {
	_, err := NewDiskImageStore(&config.UploadsSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
