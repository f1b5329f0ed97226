package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradipta-dev/portfolio-backend/internal/service"
)

// ProjectHandler serves the project list and project image uploads
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// RegisterRoutes registers the project routes
func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("/", h.ListProjects)
		projects.POST("/add", h.AddProject)
		projects.POST("/delete", h.DeleteProject)
		projects.POST("/upload-image/:project_id", h.UploadImage)
	}
}

// ListProjects returns all projects in insertion order
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.projects.List())
}

// AddProject creates a project from the posted fields
func (h *ProjectHandler) AddProject(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.projects.Add(fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
}

type deleteProjectRequest struct {
	ProjectID string `json:"project_id"`
}

// DeleteProject removes a project by id. The id is taken from the JSON
// body, falling back to the project_id query parameter.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	var req deleteProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" {
		req.ProjectID = c.Query("project_id")
	}
	if req.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
		return
	}

	if err := h.projects.Delete(req.ProjectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadImage stores an image for the project named in the path. The
// upload is written before the id is checked, so a 404 here still
// leaves the file on disk.
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	content, name, err := formFileBytes(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	path, err := h.projects.AttachImage(c.Param("project_id"), content, name)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "path": path})
}
