package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradipta-dev/portfolio-backend/internal/service"
)

// ProfileHandler serves the profile document and its uploads
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("/", h.GetProfile)
		profile.POST("/update", h.UpdateProfile)
		profile.POST("/upload-photo", h.UploadPhoto)
		profile.POST("/upload-resume", h.UploadResume)
	}
}

// GetProfile returns the stored profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.profiles.Get())
}

// UpdateProfile merges the posted fields onto the stored profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profiles.Update(partial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": profile})
}

// UploadPhoto stores a profile photo and records its path
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	content, name, err := formFileBytes(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	path, err := h.profiles.UploadPhoto(content, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "path": path})
}

// UploadResume stores a PDF resume and records its path
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	content, name, err := formFileBytes(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	path, err := h.profiles.UploadResume(content, name)
	if err != nil {
		if errors.Is(err, service.ErrResumeNotPDF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Resume must be a PDF"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "path": path})
}
