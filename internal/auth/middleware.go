package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName holds the workspace session token
	CookieName = "colorpick_session"

	workspaceKey    = "workspace_id"
	newWorkspaceKey = "workspace_new"
)

// RequireWorkspace attaches a workspace id to every request. Browsers
// without a valid session cookie are given a fresh workspace.
func RequireWorkspace(s *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		refresh := false

		if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
			if claims, err := s.Validate(cookie); err == nil {
				id = claims.WorkspaceID
				refresh = s.needsRefresh(claims)
			}
		}

		fresh := id == ""
		if fresh {
			newID, err := NewWorkspaceID()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			id = newID
			refresh = true
		}

		if refresh {
			token, err := s.Issue(id)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, token, int(s.TTL().Seconds()), "/", "", c.Request.TLS != nil, true)
		}

		c.Set(workspaceKey, id)
		c.Set(newWorkspaceKey, fresh)
		c.Next()
	}
}

// WorkspaceID returns the id attached by RequireWorkspace
func WorkspaceID(c *gin.Context) string {
	return c.GetString(workspaceKey)
}

// IsNewWorkspace reports whether the request arrived without a valid session
func IsNewWorkspace(c *gin.Context) bool {
	return c.GetBool(newWorkspaceKey)
}
