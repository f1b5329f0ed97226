package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pradipta-dev/portfolio-backend/internal/models"
	"github.com/pradipta-dev/portfolio-backend/internal/store"
)

// ProfileService owns the profile document. The mutex guards each
// load-mutate-save sequence so concurrent updates cannot interleave
// inside one document write; across requests the last writer wins.
type ProfileService struct {
	mu      sync.Mutex
	docs    *store.DocumentStore
	uploads *store.UploadStore
}

func NewProfileService(docs *store.DocumentStore, uploads *store.UploadStore) *ProfileService {
	return &ProfileService{docs: docs, uploads: uploads}
}

// Get returns the stored profile verbatim.
func (s *ProfileService) Get() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.LoadProfile()
}

// Update merges the non-null fields of partial onto the stored
// profile. Null values and absent keys leave the current value
// untouched. Returns the merged document.
func (s *ProfileService) Update(partial map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.docs.LoadProfile()
	for key, value := range partial {
		if value != nil {
			profile[key] = value
		}
	}
	if err := s.docs.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// UploadPhoto stores the file and points photo_path at it. Any file
// type is accepted.
func (s *ProfileService) UploadPhoto(content []byte, originalName string) (string, error) {
	return s.attach(content, originalName, models.ProfilePhotoPath)
}

// UploadResume stores the file and points resume_path at it. Only
// .pdf filenames are accepted, case-insensitively, and the check runs
// before anything touches disk.
func (s *ProfileService) UploadResume(content []byte, originalName string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(originalName), ".pdf") {
		return "", ErrResumeNotPDF
	}
	return s.attach(content, originalName, models.ProfileResumePath)
}

func (s *ProfileService) attach(content []byte, originalName, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, path, err := s.uploads.Store(content, originalName, store.CategoryProfile)
	if err != nil {
		return "", err
	}

	profile := s.docs.LoadProfile()
	profile[field] = path
	if err := s.docs.SaveProfile(profile); err != nil {
		return "", fmt.Errorf("failed to save profile: %w", err)
	}
	return path, nil
}
