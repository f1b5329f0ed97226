package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradipta-dev/portfolio-backend/internal/store"
)

func newProfileService(t *testing.T) (*ProfileService, string) {
	t.Helper()
	docs, err := store.NewDocumentStore(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	uploadsDir := filepath.Join(t.TempDir(), "uploads")
	uploads, err := store.NewUploadStore(uploadsDir)
	require.NoError(t, err)
	return NewProfileService(docs, uploads), uploadsDir
}

func TestProfileGetReturnsDefaults(t *testing.T) {
	svc, _ := newProfileService(t)

	profile := svc.Get()
	assert.Equal(t, "", profile["name"])
	assert.Equal(t, "", profile["resume_path"])
}

func TestProfileUpdateMergesNonNullFields(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.Update(map[string]any{"name": "Ada", "email": "ada@example.com"})
	require.NoError(t, err)

	// A null value is a no-op marker, not a clear command.
	merged, err := svc.Update(map[string]any{"name": "Grace", "email": nil})
	require.NoError(t, err)

	assert.Equal(t, "Grace", merged["name"])
	assert.Equal(t, "ada@example.com", merged["email"])

	// The merge is persisted, not just returned.
	stored := svc.Get()
	assert.Equal(t, "Grace", stored["name"])
	assert.Equal(t, "ada@example.com", stored["email"])
}

func TestProfileUpdateLeavesOtherFieldsUntouched(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.Update(map[string]any{"tagline": "builder"})
	require.NoError(t, err)

	stored := svc.Get()
	assert.Equal(t, "builder", stored["tagline"])
	assert.Equal(t, "", stored["about"])
}

func TestUploadPhotoSetsPath(t *testing.T) {
	svc, uploadsDir := newProfileService(t)

	path, err := svc.UploadPhoto([]byte("jpeg bytes"), "me.jpg")
	require.NoError(t, err)

	assert.Equal(t, path, svc.Get()["photo_path"])

	filename := filepath.Base(path)
	content, err := os.ReadFile(filepath.Join(uploadsDir, store.CategoryProfile, filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), content)
}

func TestUploadResumeAcceptsMixedCasePDF(t *testing.T) {
	svc, _ := newProfileService(t)

	path, err := svc.UploadResume([]byte("%PDF-1.4"), "CV.PDF")
	require.NoError(t, err)
	assert.Equal(t, path, svc.Get()["resume_path"])
}

func TestUploadResumeRejectsNonPDFBeforeWriting(t *testing.T) {
	svc, uploadsDir := newProfileService(t)

	_, err := svc.UploadResume([]byte("docx bytes"), "resume.docx")
	assert.ErrorIs(t, err, ErrResumeNotPDF)

	// Nothing was written and the profile is unchanged.
	entries, readErr := os.ReadDir(filepath.Join(uploadsDir, store.CategoryProfile))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	assert.Equal(t, "", svc.Get()["resume_path"])
}

func TestUploadPhotoAcceptsAnyFileType(t *testing.T) {
	svc, _ := newProfileService(t)

	path, err := svc.UploadPhoto([]byte("whatever"), "notes.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
