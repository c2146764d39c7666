package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/colorpick/internal/auth"
	"github.com/thatcatcamp/colorpick/internal/collections"
	"github.com/thatcatcamp/colorpick/internal/db"
	"github.com/thatcatcamp/colorpick/internal/generation"
	"github.com/thatcatcamp/colorpick/internal/middleware"
	"github.com/thatcatcamp/colorpick/internal/palette"
	"github.com/thatcatcamp/colorpick/internal/storage"
	"github.com/thatcatcamp/colorpick/internal/workspace"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testSnapshot mirrors the fields of workspace.Snapshot the tests inspect
type testSnapshot struct {
	Theme        *palette.Recommendation `json:"theme"`
	VisibleCount int                     `json:"visibleCount"`
	CanShowMore  bool                    `json:"canShowMore"`
	Background   workspace.Background    `json:"background"`
	Objects      []struct {
		ID             string  `json:"id"`
		Type           string  `json:"type"`
		X              float64 `json:"x"`
		Y              float64 `json:"y"`
		Size           float64 `json:"size"`
		VariationIndex int     `json:"activeVariationIndex"`
		Color          struct {
			Name string `json:"name"`
		} `json:"color"`
	} `json:"objects"`
	Interaction struct {
		Mode       string `json:"mode"`
		SelectedID string `json:"selectedId"`
	} `json:"interaction"`
	Collections        []collections.Palette `json:"collections"`
	ActiveCollectionID string                `json:"activeCollectionId"`
	Pending            bool                  `json:"pending"`
	Error              string                `json:"error"`
}

func testPalette(theme string, n int) *palette.Recommendation {
	rec := &palette.Recommendation{ThemeName: theme}
	for i := 0; i < n; i++ {
		rec.Colors = append(rec.Colors, &palette.ColorDetail{
			Name: fmt.Sprintf("%s %d", theme, i),
			Base: fmt.Sprintf("#%02X4060", i*10),
			Variations: []palette.ColorVariation{
				{Label: "Natural", Highlight: "#FFEEDD", Shadow: "#221100"},
				{Label: "Dramatic", Highlight: "#FFFFFF", Shadow: "#000000"},
				{Label: "Surreal", Highlight: "#CC99FF", Shadow: "#330066"},
			},
			Reason: "because",
		})
	}
	return rec
}

// fixedGenerator returns queued results in order, then keeps returning the last
type fixedGenerator struct {
	results []*palette.Recommendation
	errs    []error
	calls   int
}

func (g *fixedGenerator) Generate(ctx context.Context, keyword string) (*palette.Recommendation, error) {
	i := min(g.calls, len(g.results)-1)
	g.calls++
	return g.results[i], g.errs[i]
}

func (g *fixedGenerator) then(rec *palette.Recommendation, err error) *fixedGenerator {
	g.results = append(g.results, rec)
	g.errs = append(g.errs, err)
	return g
}

type testClient struct {
	t        *testing.T
	router   *gin.Engine
	registry *workspace.Registry
	cookies  map[string]*http.Cookie
	csrf     string
}

func setupTestServer(t *testing.T, gen generation.Generator, limiter *middleware.RateLimiter) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	slots := storage.NewSlotStore(conn)

	sessions, err := auth.NewSessions("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSessions failed: %v", err)
	}

	registry := workspace.NewRegistry(slots, workspace.WithHistory(slots))
	srv := NewServer(registry, gen, slots, zerolog.Nop())

	r := gin.New()
	srv.Register(r, sessions, limiter)

	tc := &testClient{t: t, router: r, registry: registry, cookies: map[string]*http.Cookie{}}
	w := tc.do("GET", "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected index to load, got %d", w.Code)
	}
	tc.csrf = tc.cookies[middleware.CSRFCookieName].Value
	return tc
}

func (tc *testClient) do(method, path string, body any) *httptest.ResponseRecorder {
	tc.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			tc.t.Fatalf("Failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.csrf != "" {
		req.Header.Set(middleware.CSRFHeaderName, tc.csrf)
	}
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		tc.cookies[c.Name] = c
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode %q: %v", w.Body.String(), err)
	}
	return out
}

func generated(t *testing.T, tc *testClient) testSnapshot {
	t.Helper()
	w := tc.do("POST", "/api/generate", gin.H{"keyword": "sunset"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected generate to succeed, got %d: %s", w.Code, w.Body.String())
	}
	return decode[testSnapshot](t, w)
}

func TestHealth(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)
	w := tc.do("GET", "/health", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("Unexpected health response %d: %s", w.Code, w.Body.String())
	}
}

func TestIndexIssuesSessionAndCSRF(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)
	if tc.cookies[auth.CookieName] == nil {
		t.Fatal("Expected session cookie")
	}

	w := tc.do("GET", "/", nil)
	if !strings.Contains(w.Body.String(), `<meta name="csrf-token" content="`+tc.csrf+`">`) {
		t.Error("Expected CSRF token in page meta tag")
	}
	if !strings.Contains(w.Body.String(), "/render/") {
		t.Error("Expected page script to reference the shape renderer")
	}
}

func TestPageScriptGuardsInput(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)
	body := tc.do("GET", "/", nil).Body.String()

	for _, want := range []string{
		`id="generate"`,
		"if (!keyword.trim() || inflight) { return; }",
		"snap.pending",
		".disabled = busy",
		"setPointerCapture(e.pointerId)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestGenerateSeedsStage(t *testing.T) {
	tc := setupTestServer(t, (&fixedGenerator{}).then(testPalette("Sunset", 20), nil), nil)
	snap := generated(t, tc)

	if snap.Theme == nil || snap.Theme.ThemeName != "Sunset" {
		t.Fatalf("Expected Sunset theme, got %+v", snap.Theme)
	}
	if snap.VisibleCount != workspace.InitialVisible || !snap.CanShowMore {
		t.Errorf("Expected 5 visible with more available, got %d/%v", snap.VisibleCount, snap.CanShowMore)
	}
	if len(snap.Objects) != 2 {
		t.Fatalf("Expected 2 seeded objects, got %d", len(snap.Objects))
	}
	a, b := snap.Objects[0], snap.Objects[1]
	if a.Type != "sphere" || a.X != 35 || a.Y != 45 || a.Size != 140 || a.Color.Name != "Sunset 0" {
		t.Errorf("Unexpected first object %+v", a)
	}
	if b.Type != "cube" || b.X != 65 || b.Y != 45 || b.Color.Name != "Sunset 1" {
		t.Errorf("Unexpected second object %+v", b)
	}
	if snap.Background.Name != "White" {
		t.Errorf("Expected default background, got %+v", snap.Background)
	}
}

func TestGenerateBlankKeyword(t *testing.T) {
	gen := (&fixedGenerator{}).then(testPalette("Unused", 20), nil)
	tc := setupTestServer(t, gen, nil)

	w := tc.do("POST", "/api/generate", gin.H{"keyword": "   "})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected blank keyword to be ignored, got %d: %s", w.Code, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if _, ok := body["error"]; ok {
		t.Errorf("Blank keyword must not surface an error, got %v", body["error"])
	}
	snap := decode[testSnapshot](t, w)
	if snap.Theme != nil || snap.Pending || snap.Error != "" {
		t.Errorf("Expected untouched workspace, got %+v", snap)
	}
	if gen.calls != 0 {
		t.Error("Generator must not be called for a blank keyword")
	}
}

func TestCookielessReadsDoNotRegisterWorkspaces(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)
	before := tc.registry.Len()

	for i := 0; i < 50; i++ {
		for _, path := range []string{"/", "/api/workspace", "/api/collections", "/stage.css"} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			tc.router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected %s to succeed without a session, got %d", path, w.Code)
			}
		}
	}
	if got := tc.registry.Len(); got != before {
		t.Errorf("Expected %d live workspaces after cookieless reads, have %d", before, got)
	}

	req := httptest.NewRequest("GET", "/api/workspace", nil)
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	snap := decode[testSnapshot](t, w)
	if snap.Theme != nil || len(snap.Collections) != 1 || snap.Background.Name != "White" {
		t.Errorf("Expected default state for a new session, got %+v", snap)
	}

	// the returning session is registered on its next request
	if w := tc.do("GET", "/api/workspace", nil); w.Code != http.StatusOK {
		t.Fatalf("Expected workspace, got %d", w.Code)
	}
	if got := tc.registry.Len(); got != before+1 {
		t.Errorf("Expected returning session to be registered, have %d live", got)
	}
}

func TestGenerateFailureKeepsTheme(t *testing.T) {
	gen := (&fixedGenerator{}).
		then(testPalette("Sunset", 20), nil).
		then(nil, &generation.ParseError{Message: "invalid palette JSON"})
	tc := setupTestServer(t, gen, nil)
	generated(t, tc)

	w := tc.do("POST", "/api/generate", gin.H{"keyword": "broken"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", w.Code)
	}
	body := decode[struct {
		Error     string       `json:"error"`
		Workspace testSnapshot `json:"workspace"`
	}](t, w)
	if body.Error != "The palette service returned data in an unexpected format. Please try again." {
		t.Errorf("Unexpected error %q", body.Error)
	}
	if body.Workspace.Theme == nil || body.Workspace.Theme.ThemeName != "Sunset" {
		t.Error("Previous theme should survive a failed generation")
	}
	if body.Workspace.Error != body.Error || body.Workspace.Pending {
		t.Errorf("Expected settled workspace carrying the error, got %+v", body.Workspace)
	}
}

func TestGenerateConfigurationError(t *testing.T) {
	gen := (&fixedGenerator{}).then(nil, generation.CheckAPIKey(""))
	tc := setupTestServer(t, gen, nil)

	w := tc.do("POST", "/api/generate", gin.H{"keyword": "sunset"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "API_KEY") {
		t.Error("Expected configuration guidance in the error")
	}
}

func TestGenerateRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Close()
	tc := setupTestServer(t, (&fixedGenerator{}).then(testPalette("Sunset", 20), nil), limiter)

	generated(t, tc)
	w := tc.do("POST", "/api/generate", gin.H{"keyword": "again"})
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", w.Code)
	}
}

func TestMutationsRequireCSRF(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)
	tc.csrf = "wrong"

	w := tc.do("POST", "/api/collections", gin.H{"name": "Warm"})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 with bad CSRF token, got %d", w.Code)
	}
}

func TestShowMore(t *testing.T) {
	tc := setupTestServer(t, (&fixedGenerator{}).then(testPalette("Moss", 12), nil), nil)

	if w := tc.do("POST", "/api/palette/more", nil); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 before any palette, got %d", w.Code)
	}

	generated(t, tc)
	snap := decode[testSnapshot](t, tc.do("POST", "/api/palette/more", nil))
	if snap.VisibleCount != 10 || !snap.CanShowMore {
		t.Errorf("Expected 10 visible with more available, got %d/%v", snap.VisibleCount, snap.CanShowMore)
	}
	snap = decode[testSnapshot](t, tc.do("POST", "/api/palette/more", nil))
	if snap.VisibleCount != 12 || snap.CanShowMore {
		t.Errorf("Expected all 12 visible, got %d/%v", snap.VisibleCount, snap.CanShowMore)
	}
}

func TestStageObjects(t *testing.T) {
	tc := setupTestServer(t, (&fixedGenerator{}).then(testPalette("Sunset", 20), nil), nil)
	generated(t, tc)

	w := tc.do("POST", "/api/stage/objects", gin.H{"colorIndex": 2, "type": "cube"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	added := decode[struct {
		Object struct {
			ID   string  `json:"id"`
			X    float64 `json:"x"`
			Size float64 `json:"size"`
		} `json:"object"`
		Workspace testSnapshot `json:"workspace"`
	}](t, w)
	if added.Object.X != 50 || added.Object.Size != 140 || len(added.Workspace.Objects) != 3 {
		t.Errorf("Unexpected added object %+v", added)
	}
	id := added.Object.ID

	snap := decode[testSnapshot](t, tc.do("POST", "/api/stage/objects/"+id+"/variation", gin.H{"index": 2}))
	if snap.Objects[2].VariationIndex != 2 {
		t.Errorf("Expected variation 2, got %d", snap.Objects[2].VariationIndex)
	}
	snap = decode[testSnapshot](t, tc.do("POST", "/api/stage/objects/"+id+"/variation", gin.H{"index": 9}))
	if snap.Objects[2].VariationIndex != 2 {
		t.Errorf("Out-of-range variation should be ignored, got %d", snap.Objects[2].VariationIndex)
	}

	if w := tc.do("DELETE", "/api/stage/objects/"+id, nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 on remove, got %d", w.Code)
	}
	if w := tc.do("DELETE", "/api/stage/objects/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second remove, got %d", w.Code)
	}
	if w := tc.do("POST", "/api/stage/objects/"+id+"/variation", gin.H{"index": 0}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for variation on removed object, got %d", w.Code)
	}

	if w := tc.do("POST", "/api/stage/objects", gin.H{"colorIndex": 99, "type": "sphere"}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown color, got %d", w.Code)
	}
	if w := tc.do("POST", "/api/stage/objects", gin.H{"colorIndex": 0, "type": "pyramid"}); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown shape, got %d", w.Code)
	}
	if w := tc.do("POST", "/api/stage/objects", gin.H{"type": "sphere"}); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without colorIndex, got %d", w.Code)
	}
}

func TestSetBackground(t *testing.T) {
	tc := setupTestServer(t, (&fixedGenerator{}).then(testPalette("Sunset", 20), nil), nil)
	generated(t, tc)

	snap := decode[testSnapshot](t, tc.do("POST", "/api/stage/background", gin.H{"colorIndex": 3}))
	if snap.Background.Name != "Sunset 3" {
		t.Errorf("Expected Sunset 3 backdrop, got %+v", snap.Background)
	}

	css := tc.do("GET", "/stage.css", nil)
	if !strings.Contains(css.Body.String(), "--stage-bg: "+strings.ToLower(snap.Background.Base)) {
		t.Errorf("Expected stage css to use the backdrop, got %s", css.Body.String())
	}

	snap = decode[testSnapshot](t, tc.do("POST", "/api/stage/background", gin.H{"colorIndex": -1}))
	if snap.Background.Name != "White" {
		t.Errorf("Expected White after reset, got %+v", snap.Background)
	}
	if w := tc.do("POST", "/api/stage/background", gin.H{"colorIndex": 42}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestPointerDrag(t *testing.T) {
	tc := setupTestServer(t, (&fixedGenerator{}).then(testPalette("Sunset", 20), nil), nil)
	snap := generated(t, tc)
	id := snap.Objects[0].ID
	rect := gin.H{"x": 0, "y": 0, "width": 1000, "height": 500}

	// Object 0 sits at (35%, 45%) = (350, 225)
	snap = decode[testSnapshot](t, tc.do("POST", "/api/stage/pointer", gin.H{
		"kind": "down", "target": "object", "objectId": id,
		"pointer": gin.H{"x": 350, "y": 225}, "stage": rect,
	}))
	if snap.Interaction.Mode != "dragging" || snap.Interaction.SelectedID != id {
		t.Fatalf("Expected dragging with selection, got %+v", snap.Interaction)
	}
	if snap.Objects[len(snap.Objects)-1].ID != id {
		t.Error("Dragged object should render last")
	}

	snap = decode[testSnapshot](t, tc.do("POST", "/api/stage/pointer", gin.H{
		"kind": "move", "pointer": gin.H{"x": 750, "y": 125}, "stage": rect,
	}))
	last := snap.Objects[len(snap.Objects)-1]
	if math.Abs(last.X-75) > 1e-9 || math.Abs(last.Y-25) > 1e-9 {
		t.Errorf("Expected object at (75,25), got (%v,%v)", last.X, last.Y)
	}

	snap = decode[testSnapshot](t, tc.do("POST", "/api/stage/pointer", gin.H{"kind": "up", "stage": rect}))
	if snap.Interaction.Mode != "idle" || snap.Interaction.SelectedID != id {
		t.Errorf("Expected idle with selection kept, got %+v", snap.Interaction)
	}

	if w := tc.do("POST", "/api/stage/pointer", gin.H{"kind": "wiggle"}); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown event kind, got %d", w.Code)
	}
}

func TestCollectionsAPI(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)

	type listing struct {
		Collections []collections.Palette `json:"collections"`
		ActiveID    string                `json:"activeId"`
	}

	list := decode[listing](t, tc.do("GET", "/api/collections", nil))
	if len(list.Collections) != 1 || list.ActiveID != collections.DefaultID {
		t.Fatalf("Expected only the default collection, got %+v", list)
	}

	if w := tc.do("POST", "/api/collections", gin.H{"name": "   "}); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank name, got %d", w.Code)
	}

	w := tc.do("POST", "/api/collections", gin.H{"name": "Warm <b>tones</b>"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}
	created := decode[collections.Palette](t, w)
	if created.Name != "Warm tones" {
		t.Errorf("Expected sanitized name, got %q", created.Name)
	}

	path := "/api/collections/" + created.ID + "/colors"
	tc.do("POST", path, gin.H{"hex": "#1a2b3c"})
	list = decode[listing](t, tc.do("POST", path, gin.H{"hex": "1A2B3C"}))
	if list.ActiveID != created.ID {
		t.Errorf("New collection should be active, got %s", list.ActiveID)
	}
	colors := list.Collections[1].Colors
	if len(colors) != 1 || colors[0] != "#1A2B3C" {
		t.Errorf("Expected a single #1A2B3C, got %v", colors)
	}

	if w := tc.do("POST", path, gin.H{"hex": "orange"}); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid hex, got %d", w.Code)
	}
	if w := tc.do("POST", "/api/collections/missing/colors", gin.H{"hex": "#FFFFFF"}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown collection, got %d", w.Code)
	}

	list = decode[listing](t, tc.do("DELETE", path+"/1A2B3C", nil))
	if len(list.Collections[1].Colors) != 0 {
		t.Errorf("Expected color removed, got %v", list.Collections[1].Colors)
	}

	list = decode[listing](t, tc.do("POST", "/api/collections/"+collections.DefaultID+"/activate", nil))
	if list.ActiveID != collections.DefaultID {
		t.Errorf("Expected default active, got %s", list.ActiveID)
	}

	list = decode[listing](t, tc.do("DELETE", "/api/collections/"+created.ID, nil))
	if len(list.Collections) != 1 {
		t.Errorf("Expected one collection after delete, got %d", len(list.Collections))
	}
	if w := tc.do("DELETE", "/api/collections/"+collections.DefaultID, nil); w.Code != http.StatusConflict {
		t.Errorf("Deleting the last collection should fail, got %d", w.Code)
	}
}

func TestHistory(t *testing.T) {
	gen := (&fixedGenerator{}).
		then(testPalette("Sunset", 20), nil).
		then(nil, &generation.GenerationError{Status: 500, Message: "boom"})
	tc := setupTestServer(t, gen, nil)
	generated(t, tc)
	tc.do("POST", "/api/generate", gin.H{"keyword": "storm"})

	body := decode[struct {
		Generations []struct {
			Keyword   string `json:"Keyword"`
			ThemeName string `json:"ThemeName"`
			Error     string `json:"Error"`
		} `json:"generations"`
	}](t, tc.do("GET", "/api/history", nil))
	if len(body.Generations) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(body.Generations))
	}
	if body.Generations[0].Keyword != "storm" || body.Generations[0].Error == "" {
		t.Errorf("Expected newest failed entry first, got %+v", body.Generations[0])
	}
	if body.Generations[1].ThemeName != "Sunset" {
		t.Errorf("Expected Sunset entry, got %+v", body.Generations[1])
	}

	if w := tc.do("GET", "/api/history?limit=zero", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad limit, got %d", w.Code)
	}
}

func TestRenderShape(t *testing.T) {
	tc := setupTestServer(t, &fixedGenerator{}, nil)

	w := tc.do("GET", "/render/sphere.svg?base=ff0000&highlight=%23ffffff&shadow=000", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("Expected svg, got %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), `stop-color="#FF0000"`) || !strings.Contains(w.Body.String(), "radialGradient") {
		t.Errorf("Unexpected sphere %s", w.Body.String())
	}

	w = tc.do("GET", "/render/cube.svg?base=%2300ff00", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `fill="#00FF00"`) {
		t.Errorf("Expected cube with base face, got %d %s", w.Code, w.Body.String())
	}

	if w := tc.do("GET", "/render/pyramid.svg?base=ff0000", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if w := tc.do("GET", "/render/sphere.svg?base=nothex", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}
