package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pradipta-dev/portfolio-backend/config"
	"github.com/pradipta-dev/portfolio-backend/internal/api"
	"github.com/pradipta-dev/portfolio-backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	profileHandler *api.ProfileHandler,
	projectHandler *api.ProjectHandler,
	configHandler *api.ConfigHandler,
	siteHandler *api.SiteHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// API routes
	apiGroup := router.Group("/api")
	profileHandler.RegisterRoutes(apiGroup)
	projectHandler.RegisterRoutes(apiGroup)
	configHandler.RegisterRoutes(apiGroup)
	apiGroup.GET("/_health", siteHandler.Health)

	// Frontend and static files
	router.GET("/", siteHandler.Index)
	router.Static("/uploads", cfg.UploadsDir)
	router.Static("/static", cfg.StaticDir)

	return router
}
