package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload categories. The category names the destination folder and the
// public path prefix; the public path mirrors the on-disk layout
// exactly.
const (
	CategoryProfile  = "profile"
	CategoryProjects = "projects"
)

// UploadStore writes uploaded binaries under per-category folders with
// generated collision-free names. Files are never overwritten or
// deleted; superseded uploads simply accumulate on disk.
type UploadStore struct {
	dir string
}

// NewUploadStore creates a store rooted at dir with the category
// folders in place.
func NewUploadStore(dir string) (*UploadStore, error) {
	for _, category := range []string{CategoryProfile, CategoryProjects} {
		if err := os.MkdirAll(filepath.Join(dir, category), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &UploadStore{dir: dir}, nil
}

// Store writes content under the category folder with a fresh
// uuid-based name, keeping originalName's extension when it has one.
// It returns the generated filename and the public path clients use to
// fetch the file.
func (s *UploadStore) Store(content []byte, originalName, category string) (string, string, error) {
	filename := uuid.New().String()
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		filename += originalName[i:]
	}

	dir := filepath.Join(s.dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), content, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to store upload: %w", err)
	}

	return filename, "/uploads/" + category + "/" + filename, nil
}
