package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradipta-dev/portfolio-backend/internal/service"
)

// ConfigHandler serves the site configuration document
type ConfigHandler struct {
	config *service.ConfigService
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(config *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// RegisterRoutes registers the config routes
func (h *ConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	config := router.Group("/config")
	{
		config.GET("/", h.GetConfig)
		config.POST("/update", h.UpdateConfig)
	}
}

// GetConfig returns the stored configuration
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.config.Get())
}

// UpdateConfig replaces the entire configuration with the posted
// document
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.config.Replace(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
