package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func sessionRouter(s *Sessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireWorkspace(s))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, WorkspaceID(c))
	})
	return r
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestRequireWorkspaceIssuesCookie(t *testing.T) {
	s := newTestSessions(t)
	r := sessionRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("Session cookie should be HttpOnly")
	}

	claims, err := s.Validate(cookie.Value)
	if err != nil {
		t.Fatalf("Issued cookie does not validate: %v", err)
	}
	if claims.WorkspaceID != w.Body.String() {
		t.Errorf("Cookie workspace %s does not match context %s", claims.WorkspaceID, w.Body.String())
	}
}

func TestRequireWorkspaceKeepsExistingSession(t *testing.T) {
	s := newTestSessions(t)
	r := sessionRouter(s)
	token, _ := s.Issue("ws-existing")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Body.String() != "ws-existing" {
		t.Errorf("Expected ws-existing, got %s", w.Body.String())
	}
	if sessionCookie(w) != nil {
		t.Error("Fresh token should not be reissued")
	}
}

func TestRequireWorkspaceRefreshesAgingToken(t *testing.T) {
	s := newTestSessions(t)
	token, _ := s.Issue("ws-aging")
	s.now = func() time.Time { return time.Now().Add(40 * time.Minute) }
	r := sessionRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Body.String() != "ws-aging" {
		t.Errorf("Expected ws-aging, got %s", w.Body.String())
	}
	if sessionCookie(w) == nil {
		t.Error("Expected aging token to be refreshed")
	}
}

func TestRequireWorkspaceReplacesInvalidCookie(t *testing.T) {
	s := newTestSessions(t)
	r := sessionRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	r.ServeHTTP(w, req)

	if w.Body.String() == "" {
		t.Fatal("Expected a new workspace id")
	}
	if sessionCookie(w) == nil {
		t.Error("Expected replacement cookie")
	}
}

func TestIsNewWorkspace(t *testing.T) {
	s := newTestSessions(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireWorkspace(s))
	r.GET("/fresh", func(c *gin.Context) {
		if IsNewWorkspace(c) {
			c.String(http.StatusOK, "new")
			return
		}
		c.String(http.StatusOK, "known")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/fresh", nil))
	if w.Body.String() != "new" {
		t.Fatalf("Expected first request to start a workspace, got %s", w.Body.String())
	}

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fresh", nil)
	req.AddCookie(sessionCookie(w))
	r.ServeHTTP(w2, req)
	if w2.Body.String() != "known" {
		t.Errorf("Expected returning session to be known, got %s", w2.Body.String())
	}
}
