package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/colorpick/internal/auth"
	"github.com/thatcatcamp/colorpick/internal/middleware"
)

// generationKey charges generation requests to the workspace. Requests
// without an established session are charged to their address.
func generationKey(c *gin.Context) string {
	if auth.IsNewWorkspace(c) {
		return ""
	}
	return auth.WorkspaceID(c)
}

// Register mounts every route on r. limiter guards palette generation and
// may be nil.
func (s *Server) Register(r gin.IRouter, sessions *auth.Sessions, limiter *middleware.RateLimiter) {
	r.GET("/health", HealthHandler)
	r.GET("/render/:shape", RenderShape)

	app := r.Group("/")
	app.Use(auth.RequireWorkspace(sessions), middleware.CSRFMiddleware())
	{
		app.GET("/", s.Index)
		app.GET("/stage.css", s.StageCSS)
		app.GET("/ws", s.StageSocket)
	}

	api := app.Group("/api")
	{
		api.GET("/workspace", s.GetWorkspace)
		api.GET("/history", s.History)

		generate := []gin.HandlerFunc{s.Generate}
		if limiter != nil {
			generate = append([]gin.HandlerFunc{middleware.RateLimitMiddleware(limiter, generationKey)}, generate...)
		}
		api.POST("/generate", generate...)
		api.POST("/palette/more", s.ShowMore)

		api.POST("/stage/objects", s.AddObject)
		api.DELETE("/stage/objects/:id", s.RemoveObject)
		api.POST("/stage/objects/:id/variation", s.SelectVariation)
		api.POST("/stage/background", s.SetBackground)
		api.POST("/stage/pointer", s.Pointer)

		api.GET("/collections", s.ListCollections)
		api.POST("/collections", s.CreateCollection)
		api.DELETE("/collections/:id", s.DeleteCollection)
		api.POST("/collections/:id/activate", s.ActivateCollection)
		api.POST("/collections/:id/colors", s.AddColor)
		api.DELETE("/collections/:id/colors/:hex", s.RemoveColor)
	}
}
