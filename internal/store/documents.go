package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pradipta-dev/portfolio-backend/internal/models"
)

// Document file names inside the data directory.
const (
	profileFile  = "profile.json"
	projectsFile = "projects.json"
	configFile   = "config.json"
)

// DocumentStore persists the three JSON documents under a single data
// directory, one file per kind. Loads are fail-open: a missing, empty,
// or unparseable file yields the kind's default document instead of an
// error, so a hand-edited or half-written file never takes a request
// down. Saves rewrite the whole file; a crash mid-write can truncate
// it, which the next load recovers from via the default.
type DocumentStore struct {
	dir string
}

// NewDocumentStore creates a store rooted at dir, creating the
// directory if needed.
func NewDocumentStore(dir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &DocumentStore{dir: dir}, nil
}

// LoadProfile returns the stored profile document verbatim, or the
// all-empty default when none is readable.
func (s *DocumentStore) LoadProfile() map[string]any {
	var doc map[string]any
	if !s.read(profileFile, &doc) || doc == nil {
		return models.DefaultProfile()
	}
	return doc
}

// LoadProjects returns the stored project list in insertion order, or
// an empty list when none is readable.
func (s *DocumentStore) LoadProjects() []map[string]any {
	var list []map[string]any
	if !s.read(projectsFile, &list) || list == nil {
		return []map[string]any{}
	}
	return list
}

// LoadConfig returns the stored site configuration verbatim, or the
// default empty shape when none is readable.
func (s *DocumentStore) LoadConfig() map[string]any {
	var doc map[string]any
	if !s.read(configFile, &doc) || doc == nil {
		return models.DefaultConfig()
	}
	return doc
}

// SaveProfile overwrites the profile document.
func (s *DocumentStore) SaveProfile(doc map[string]any) error {
	return s.write(profileFile, doc)
}

// SaveProjects overwrites the project list.
func (s *DocumentStore) SaveProjects(list []map[string]any) error {
	return s.write(projectsFile, list)
}

// SaveConfig overwrites the site configuration.
func (s *DocumentStore) SaveConfig(doc map[string]any) error {
	return s.write(configFile, doc)
}

// read loads name into v. It reports false when the file is missing,
// empty, or not valid JSON; the caller substitutes the default.
func (s *DocumentStore) read(name string, v any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[DocumentStore] Failed to read %s: %v", name, err)
		}
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[DocumentStore] %s is not valid JSON, using defaults: %v", name, err)
		return false
	}
	return true
}

func (s *DocumentStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
