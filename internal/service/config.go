package service

import (
	"fmt"
	"sync"

	"github.com/pradipta-dev/portfolio-backend/internal/store"
)

// ConfigService owns the site configuration document.
type ConfigService struct {
	mu   sync.Mutex
	docs *store.DocumentStore
}

func NewConfigService(docs *store.DocumentStore) *ConfigService {
	return &ConfigService{docs: docs}
}

// Get returns the stored configuration verbatim.
func (s *ConfigService) Get() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.LoadConfig()
}

// Replace persists doc as the entire configuration, discarding the
// previous contents. Unlike the profile, this is a full replace, not a
// merge.
func (s *ConfigService) Replace(doc map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.docs.SaveConfig(doc); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
