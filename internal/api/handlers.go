package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youruser/shotgen/internal/batch"
	"github.com/youruser/shotgen/internal/content"
	"github.com/youruser/shotgen/internal/device"
)

// Server exposes the registries and batch runner over HTTP.
type Server struct {
	Profiles *device.Registry
	Catalog  *content.Catalog
	Runner   *batch.Runner
}

// health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) profilesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": s.Profiles.Profiles()})
}

func (s *Server) catalogHandler(c *gin.Context) {
	locale := c.Param("locale")
	items, err := s.Catalog.Items(locale)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locale": locale, "count": len(items), "screens": items})
}

// renderHandler runs a batch to disk for the posted selection and returns the
// report. Image bytes are not streamed back.
func (s *Server) renderHandler(c *gin.Context) {
	var sel batch.Selection
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&sel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	report, err := s.Runner.Run(c.Request.Context(), sel)
	switch {
	case errors.Is(err, content.ErrUnknownLocale), errors.Is(err, device.ErrUnknownProfile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rendered": report.Count(batch.StatusRendered),
		"skipped":  report.Count(batch.StatusSkipped),
		"failed":   report.Count(batch.StatusFailed),
		"outcomes": report.Outcomes,
	})
}
