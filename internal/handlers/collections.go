package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorpick/internal/workspace"
)

// ListCollections returns the saved collections and the active id
func (s *Server) ListCollections(c *gin.Context) {
	list, active := s.view(c).Collections()
	c.JSON(http.StatusOK, gin.H{"collections": list, "activeId": active})
}

type createCollectionRequest struct {
	Name string `json:"name"`
}

// CreateCollection adds a collection and makes it active
func (s *Server) CreateCollection(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	p, ok := s.workspace(c).CreateCollection(req.Name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Collection name is required"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// DeleteCollection removes a collection. The last one cannot be removed.
func (s *Server) DeleteCollection(c *gin.Context) {
	ws := s.workspace(c)
	if !ws.DeleteCollection(c.Param("id")) {
		c.JSON(http.StatusConflict, gin.H{"error": "Collection not found or is the last one"})
		return
	}
	s.ListCollections(c)
}

// ActivateCollection selects the collection new colors are saved to
func (s *Server) ActivateCollection(c *gin.Context) {
	if !s.workspace(c).ActivateCollection(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	s.ListCollections(c)
}

type addColorRequest struct {
	Hex string `json:"hex" binding:"required"`
}

// AddColor saves a hex color into a collection. Duplicates are ignored.
func (s *Server) AddColor(c *gin.Context) {
	var req addColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hex is required"})
		return
	}

	ws := s.workspace(c)
	id := c.Param("id")
	if !collectionExists(ws, id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	if _, err := ws.AddColor(id, req.Hex); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hex color"})
		return
	}
	s.ListCollections(c)
}

// RemoveColor removes a hex color from a collection. The color is given
// without its leading #.
func (s *Server) RemoveColor(c *gin.Context) {
	ws := s.workspace(c)
	id := c.Param("id")
	if !collectionExists(ws, id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}
	ws.RemoveColor(id, "#"+c.Param("hex"))
	s.ListCollections(c)
}

func collectionExists(ws *workspace.Workspace, id string) bool {
	list, _ := ws.Collections()
	for _, p := range list {
		if p.ID == id {
			return true
		}
	}
	return false
}
