package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// IndexPage is the frontend page file served at the root route.
const IndexPage = "master_portfolio.html"

// SiteHandler serves the static frontend page and the health check
type SiteHandler struct {
	staticDir string
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(staticDir string) *SiteHandler {
	return &SiteHandler{staticDir: staticDir}
}

// Index serves the frontend page, degrading to a placeholder message
// when the page file is missing.
func (h *SiteHandler) Index(c *gin.Context) {
	page := filepath.Join(h.staticDir, IndexPage)
	if _, err := os.Stat(page); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": IndexPage + " missing - put file inside /static/"})
		return
	}
	c.File(page)
}

// Health reports service liveness
func (h *SiteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
