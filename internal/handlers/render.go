package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorpick/internal/render"
	"github.com/thatcatcamp/colorpick/internal/stage"
)

// RenderShape serves a shaded sphere.svg or cube.svg. Colors come from the
// base, highlight and shadow query parameters, with or without a leading #.
func RenderShape(c *gin.Context) {
	name, ok := strings.CutSuffix(c.Param("shape"), ".svg")
	if !ok || !stage.Shape(name).Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown shape"})
		return
	}

	shading, err := render.ParseShading(c.Query("base"), c.Query("highlight"), c.Query("shadow"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid color"})
		return
	}

	svg, err := render.Shape(stage.Shape(name), shading)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown shape"})
		return
	}

	// Output depends only on the query
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

// StageCSS serves the color variables for the caller's current backdrop
func (s *Server) StageCSS(c *gin.Context) {
	snap := s.view(c).Snapshot()

	accent := render.DefaultAccent
	if snap.Theme != nil && len(snap.Theme.Colors) > 0 {
		accent = snap.Theme.Colors[0].Base
	}
	colors := render.GenerateColors(snap.Background.Base, accent)

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(render.GenerateCSS(colors)))
}
