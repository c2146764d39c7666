package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorpick/internal/stage"
	"github.com/thatcatcamp/colorpick/internal/workspace"
)

type addObjectRequest struct {
	ColorIndex *int        `json:"colorIndex" binding:"required,min=0"`
	Type       stage.Shape `json:"type" binding:"required,oneof=sphere cube"`
}

// AddObject places a new shape of a palette color on the stage
func (s *Server) AddObject(c *gin.Context) {
	var req addObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colorIndex and type (sphere or cube) are required"})
		return
	}

	ws := s.workspace(c)
	obj, err := ws.AddObject(*req.ColorIndex, req.Type)
	if err != nil {
		if errors.Is(err, workspace.ErrNoColor) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such palette color"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"object": obj, "workspace": ws.Snapshot()})
}

// RemoveObject deletes a stage object
func (s *Server) RemoveObject(c *gin.Context) {
	ws := s.workspace(c)
	if !ws.RemoveObject(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Object not found"})
		return
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

type variationRequest struct {
	Index *int `json:"index" binding:"required"`
}

// SelectVariation changes the variation an object is shaded with.
// Out-of-range indexes leave the object unchanged.
func (s *Server) SelectVariation(c *gin.Context) {
	var req variationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
		return
	}

	ws := s.workspace(c)
	id := c.Param("id")
	if !ws.SelectVariation(id, *req.Index) {
		if !hasObject(ws.Snapshot().Objects, id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Object not found"})
			return
		}
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

func hasObject(objects []stage.Object, id string) bool {
	for _, o := range objects {
		if o.ID == id {
			return true
		}
	}
	return false
}

type backgroundRequest struct {
	ColorIndex *int `json:"colorIndex" binding:"required,min=-1"`
}

// SetBackground uses a palette color as the stage backdrop; -1 restores white
func (s *Server) SetBackground(c *gin.Context) {
	var req backgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colorIndex is required"})
		return
	}

	ws := s.workspace(c)
	if err := ws.SetBackground(*req.ColorIndex); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such palette color"})
		return
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

// Pointer feeds one pointer event to the stage. Browsers that cannot hold
// a websocket open use this instead of /ws.
func (s *Server) Pointer(c *gin.Context) {
	var ev stage.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pointer event"})
		return
	}

	ws := s.workspace(c)
	ws.Pointer(ev)
	c.JSON(http.StatusOK, ws.Snapshot())
}
