package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorpick/internal/auth"
	"github.com/thatcatcamp/colorpick/internal/generation"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// GetWorkspace returns the caller's current state
func (s *Server) GetWorkspace(c *gin.Context) {
	c.JSON(http.StatusOK, s.view(c).Snapshot())
}

type generateRequest struct {
	Keyword string `json:"keyword"`
}

// Generate asks the generation service for a palette and installs it. On
// failure the previous theme stays in place and the snapshot carries the
// message as well. A blank keyword is ignored.
func (s *Server) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ws := s.workspace(c)
	if err := ws.Generate(c.Request.Context(), s.generator, req.Keyword); err != nil {
		if generation.IsValidation(err) {
			c.JSON(http.StatusOK, ws.Snapshot())
			return
		}
		c.JSON(generationStatus(err), gin.H{
			"error":     generation.UserMessage(err),
			"workspace": ws.Snapshot(),
		})
		return
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

// ShowMore reveals the next batch of palette colors
func (s *Server) ShowMore(c *gin.Context) {
	ws := s.workspace(c)
	if ws.ShowMore() == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Generate a palette first"})
		return
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

// History lists the caller's recent generation requests, newest first
func (s *Server) History(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusOK, gin.H{"generations": []any{}})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	gens, err := s.history.Generations(c.Request.Context(), auth.WorkspaceID(c), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load generation history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": gens})
}
