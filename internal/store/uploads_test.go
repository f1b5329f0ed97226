package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadStore(t *testing.T) (*UploadStore, string) {
	t.Helper()
	dir := t.TempDir()
	uploads, err := NewUploadStore(dir)
	require.NoError(t, err)
	return uploads, dir
}

func TestStoreKeepsExtension(t *testing.T) {
	uploads, dir := newUploadStore(t)

	filename, path, err := uploads.Store([]byte("png bytes"), "photo.png", CategoryProfile)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.Equal(t, "/uploads/profile/"+filename, path)

	content, err := os.ReadFile(filepath.Join(dir, CategoryProfile, filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), content)
}

func TestStoreWithoutExtension(t *testing.T) {
	uploads, dir := newUploadStore(t)

	filename, _, err := uploads.Store([]byte("data"), "README", CategoryProjects)
	require.NoError(t, err)

	assert.NotContains(t, filename, ".")
	_, err = os.Stat(filepath.Join(dir, CategoryProjects, filename))
	assert.NoError(t, err)
}

func TestStoreGeneratesDistinctNames(t *testing.T) {
	uploads, dir := newUploadStore(t)

	first, _, err := uploads.Store([]byte("one"), "cv.pdf", CategoryProfile)
	require.NoError(t, err)
	second, _, err := uploads.Store([]byte("two"), "cv.pdf", CategoryProfile)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(filepath.Join(dir, CategoryProfile))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStoreUsesLastDotForExtension(t *testing.T) {
	uploads, _ := newUploadStore(t)

	filename, _, err := uploads.Store([]byte("x"), "archive.tar.gz", CategoryProjects)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".gz"))
	assert.False(t, strings.HasSuffix(filename, ".tar.gz"))
}
