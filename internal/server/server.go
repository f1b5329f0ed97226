package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pradipta-dev/portfolio-backend/config"
	"github.com/pradipta-dev/portfolio-backend/internal/api"
	"github.com/pradipta-dev/portfolio-backend/internal/router"
	"github.com/pradipta-dev/portfolio-backend/internal/service"
	"github.com/pradipta-dev/portfolio-backend/internal/store"
)

// Server wraps the HTTP server and its wiring
type Server struct {
	http *http.Server
}

// New builds the stores, services, and routes, and returns a server
// ready to start. The data, upload, and static directories are created
// here if missing.
func New(cfg *config.Config) (*Server, error) {
	docs, err := store.NewDocumentStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	uploads, err := store.NewUploadStore(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create static directory: %w", err)
	}

	profiles := service.NewProfileService(docs, uploads)
	projects := service.NewProjectService(docs, uploads)
	siteConfig := service.NewConfigService(docs)

	engine := router.SetupRouter(
		cfg,
		api.NewProfileHandler(profiles),
		api.NewProjectHandler(projects),
		api.NewConfigHandler(siteConfig),
		api.NewSiteHandler(cfg.StaticDir),
	)

	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}, nil
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
