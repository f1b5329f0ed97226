package service

import (
	"fmt"
	"sync"

	"github.com/pradipta-dev/portfolio-backend/internal/models"
	"github.com/pradipta-dev/portfolio-backend/internal/store"
)

// ProjectService owns the projects list. Insertion order is display
// order. The mutex guards each load-mutate-save sequence for the list.
type ProjectService struct {
	mu      sync.Mutex
	docs    *store.DocumentStore
	uploads *store.UploadStore
}

func NewProjectService(docs *store.DocumentStore, uploads *store.UploadStore) *ProjectService {
	return &ProjectService{docs: docs, uploads: uploads}
}

// List returns the stored projects in insertion order.
func (s *ProjectService) List() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.LoadProjects()
}

// Add appends a new project built from fields and returns it. The id
// is generated here; any client-supplied id is ignored.
func (s *ProjectService) Add(fields map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.docs.LoadProjects()
	project := models.NewProject(fields)
	projects = append(projects, project)
	if err := s.docs.SaveProjects(projects); err != nil {
		return nil, fmt.Errorf("failed to save projects: %w", err)
	}
	return project, nil
}

// Delete removes the project with the given id. The stored list is
// only rewritten when a project was actually removed; an unknown id
// returns ErrProjectNotFound and leaves the file untouched.
func (s *ProjectService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.docs.LoadProjects()
	kept := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		if p[models.ProjectID] != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return ErrProjectNotFound
	}
	if err := s.docs.SaveProjects(kept); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

// AttachImage stores the file under the projects category and records
// its public path on the matching project. The file is written before
// the id is checked, so an unknown id leaves the new upload on disk
// unreferenced.
func (s *ProjectService) AttachImage(id string, content []byte, originalName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, path, err := s.uploads.Store(content, originalName, store.CategoryProjects)
	if err != nil {
		return "", err
	}

	projects := s.docs.LoadProjects()
	for _, p := range projects {
		if p[models.ProjectID] == id {
			p[models.ProjectImagePath] = path
			if err := s.docs.SaveProjects(projects); err != nil {
				return "", fmt.Errorf("failed to save projects: %w", err)
			}
			return path, nil
		}
	}
	return "", ErrProjectNotFound
}
