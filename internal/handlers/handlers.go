// Package handlers serves the palette explorer page and its JSON API.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/colorpick/internal/auth"
	"github.com/thatcatcamp/colorpick/internal/generation"
	"github.com/thatcatcamp/colorpick/internal/models"
	"github.com/thatcatcamp/colorpick/internal/workspace"
)

// HistoryReader lists past generation requests
type HistoryReader interface {
	Generations(ctx context.Context, workspaceID string, limit int) ([]models.Generation, error)
}

// Server holds the dependencies shared by all handlers
type Server struct {
	registry  *workspace.Registry
	generator generation.Generator
	history   HistoryReader
	log       zerolog.Logger
}

// NewServer creates the handler set. history may be nil.
func NewServer(registry *workspace.Registry, generator generation.Generator, history HistoryReader, log zerolog.Logger) *Server {
	return &Server{
		registry:  registry,
		generator: generator,
		history:   history,
		log:       log,
	}
}

// workspace returns the caller's workspace, creating it on first use
func (s *Server) workspace(c *gin.Context) *workspace.Workspace {
	return s.registry.Get(c.Request.Context(), auth.WorkspaceID(c))
}

// view returns the workspace a read-only request renders. A session issued
// by this very request has nothing to show yet, so it gets the default
// state and nothing is registered until the cookie comes back.
func (s *Server) view(c *gin.Context) *workspace.Workspace {
	if auth.IsNewWorkspace(c) {
		return s.registry.Peek(auth.WorkspaceID(c))
	}
	return s.workspace(c)
}

// generationStatus maps a generation error to an HTTP status
func generationStatus(err error) int {
	var (
		verr *generation.ValidationError
		cerr *generation.ConfigurationError
		perr *generation.ParseError
		gerr *generation.GenerationError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &cerr):
		return http.StatusServiceUnavailable
	case errors.As(err, &perr), errors.As(err, &gerr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// HealthHandler reports liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
