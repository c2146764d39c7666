// Package workspace holds the per-browser state of the palette explorer:
// the current theme, the composition stage and the saved collections.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/colorpick/internal/collections"
	"github.com/thatcatcamp/colorpick/internal/generation"
	"github.com/thatcatcamp/colorpick/internal/models"
	"github.com/thatcatcamp/colorpick/internal/palette"
	"github.com/thatcatcamp/colorpick/internal/stage"
)

const (
	InitialVisible = 5
	VisibleStep    = 5
	MaxVisible     = 20
)

var (
	ErrNoColor      = errors.New("no such palette color")
	ErrInvalidShape = errors.New("shape must be sphere or cube")
	ErrNoObject     = errors.New("no such stage object")
)

// Token identifies one generation request. Only the most recent token may
// commit a result.
type Token uint64

// Background is the stage backdrop
type Background struct {
	Name string `json:"name"`
	Base string `json:"base"`
}

// DefaultBackground is used when no palette color is chosen
var DefaultBackground = Background{Name: "White", Base: "#ffffff"}

// History receives every finished generation request
type History interface {
	RecordGeneration(ctx context.Context, g *models.Generation) error
}

// Snapshot is a render-ready copy of the workspace state
type Snapshot struct {
	ID                 string                  `json:"id"`
	Version            uint64                  `json:"version"`
	Keyword            string                  `json:"keyword"`
	Theme              *palette.Recommendation `json:"theme"`
	VisibleCount       int                     `json:"visibleCount"`
	CanShowMore        bool                    `json:"canShowMore"`
	Background         Background              `json:"background"`
	BackgroundIndex    int                     `json:"backgroundIndex"`
	Objects            []stage.Object          `json:"objects"`
	Interaction        stage.State             `json:"interaction"`
	Collections        []collections.Palette   `json:"collections"`
	ActiveCollectionID string                  `json:"activeCollectionId"`
	Pending            bool                    `json:"pending"`
	Error              string                  `json:"error,omitempty"`
}

// Workspace is the state container for one browser session. All methods
// are safe for concurrent use; each call is applied atomically.
type Workspace struct {
	mu sync.Mutex

	id          string
	keyword     string
	theme       *palette.Recommendation
	visible     int
	background  int
	stage       *stage.Store
	interaction *stage.Interaction
	collections *collections.Store

	token   Token
	pending bool
	errMsg  string
	version uint64

	lastSeen time.Time
	subs     map[int]chan struct{}
	nextSub  int

	history History
	now     func() time.Time
	log     zerolog.Logger
}

// New creates a workspace around an already loaded collection store
func New(id string, store *collections.Store, log zerolog.Logger) *Workspace {
	if store == nil {
		store = collections.New(nil)
	}
	w := &Workspace{
		id:          id,
		visible:     InitialVisible,
		background:  -1,
		stage:       stage.NewStore(),
		interaction: stage.NewInteraction(),
		collections: store,
		subs:        make(map[int]chan struct{}),
		now:         time.Now,
		log:         log.With().Str("workspace", id).Logger(),
	}
	w.lastSeen = w.now()
	return w
}

// ID returns the workspace id
func (w *Workspace) ID() string { return w.id }

// BeginGeneration issues a new request token and marks a request pending.
// Earlier tokens become stale.
func (w *Workspace) BeginGeneration(keyword string) Token {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.token++
	w.keyword = strings.TrimSpace(keyword)
	w.pending = true
	w.errMsg = ""
	w.changed()
	return w.token
}

// OnGenerationComplete installs resp as the current theme and seeds the
// stage from it. Stale tokens are dropped and false is returned.
func (w *Workspace) OnGenerationComplete(token Token, resp *palette.Recommendation) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if token != w.token {
		w.log.Debug().Uint64("token", uint64(token)).Uint64("latest", uint64(w.token)).Msg("dropping stale generation result")
		return false
	}
	if resp == nil {
		return false
	}

	w.theme = resp
	w.visible = InitialVisible
	w.background = -1
	w.stage.SeedFromPalette(resp.Colors)
	w.interaction.Reset()
	w.pending = false
	w.errMsg = ""
	w.changed()
	return true
}

// OnGenerationFailed records message for the user. The displayed theme and
// stage are left as they were.
func (w *Workspace) OnGenerationFailed(token Token, message string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if token != w.token {
		return false
	}
	w.pending = false
	w.errMsg = message
	w.changed()
	return true
}

// Generate runs a full request through g. The service call happens outside
// the workspace lock so other operations proceed while it is pending. A
// blank keyword is rejected without touching any state.
func (w *Workspace) Generate(ctx context.Context, g generation.Generator, keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return &generation.ValidationError{Field: "keyword", Message: "must not be empty"}
	}

	token := w.BeginGeneration(keyword)
	started := w.now()
	resp, err := g.Generate(ctx, keyword)
	if err == nil && resp == nil {
		err = &generation.GenerationError{Message: "no palette returned"}
	}

	record := &models.Generation{WorkspaceID: w.id, Keyword: strings.TrimSpace(keyword)}
	if err != nil {
		msg := generation.UserMessage(err)
		w.OnGenerationFailed(token, msg)
		w.log.Warn().Err(err).Str("keyword", record.Keyword).Dur("elapsed", w.now().Sub(started)).Msg("palette generation failed")
		record.Error = msg
	} else {
		if w.OnGenerationComplete(token, resp) {
			w.log.Info().Str("keyword", record.Keyword).Str("theme", resp.ThemeName).Int("colors", len(resp.Colors)).Msg("palette generated")
		}
		record.ThemeName = resp.ThemeName
		record.ColorCount = len(resp.Colors)
	}

	if w.history != nil {
		if herr := w.history.RecordGeneration(context.WithoutCancel(ctx), record); herr != nil {
			w.log.Warn().Err(herr).Msg("failed to record generation")
		}
	}
	return err
}

// AddObject places a new shape of palette color colorIndex at the stage center
func (w *Workspace) AddObject(colorIndex int, shape stage.Shape) (stage.Object, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !shape.Valid() {
		return stage.Object{}, ErrInvalidShape
	}
	color := w.theme.Color(colorIndex)
	if color == nil {
		return stage.Object{}, fmt.Errorf("%w: %d", ErrNoColor, colorIndex)
	}
	obj := w.stage.Add(color, shape)
	w.changed()
	return *obj, nil
}

// RemoveObject deletes a stage object and drops it from the selection
func (w *Workspace) RemoveObject(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stage.Get(id) == nil {
		return false
	}
	w.stage.Remove(id)
	if w.interaction.Selected() == id {
		w.interaction.Select("")
	}
	w.changed()
	return true
}

// SelectVariation switches the variation used to shade object id
func (w *Workspace) SelectVariation(id string, index int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.stage.SetVariation(id, index) {
		return false
	}
	w.changed()
	return true
}

// SetBackground uses palette color colorIndex as the stage backdrop; -1
// restores the default.
func (w *Workspace) SetBackground(colorIndex int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if colorIndex != -1 && w.theme.Color(colorIndex) == nil {
		return fmt.Errorf("%w: %d", ErrNoColor, colorIndex)
	}
	w.background = colorIndex
	w.changed()
	return nil
}

// Pointer routes a pointer event through the interaction state machine
func (w *Workspace) Pointer(ev stage.Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.interaction.Handle(w.stage, ev) {
		return false
	}
	w.changed()
	return true
}

// ShowMore reveals the next batch of palette colors and returns the new count
func (w *Workspace) ShowMore() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.theme == nil {
		return 0
	}
	next := min(w.visible+VisibleStep, MaxVisible, len(w.theme.Colors))
	if next > w.visible {
		w.visible = next
		w.changed()
	}
	return w.visibleCount()
}

// CreateCollection adds a named collection and makes it active
func (w *Workspace) CreateCollection(name string) (collections.Palette, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := w.collections.Create(name)
	if p == nil {
		return collections.Palette{}, false
	}
	w.changed()
	return *p, true
}

// DeleteCollection removes a collection unless it is the last one
func (w *Workspace) DeleteCollection(id string) bool {
	return w.mutateCollections(func(s *collections.Store) bool { return s.Delete(id) })
}

// ActivateCollection makes id the target of AddToActive
func (w *Workspace) ActivateCollection(id string) bool {
	return w.mutateCollections(func(s *collections.Store) bool { return s.SetActive(id) })
}

// AddColor saves hex into collection id. An empty id means the active one.
func (w *Workspace) AddColor(id, hex string) (bool, error) {
	norm, err := palette.NormalizeHex(hex)
	if err != nil {
		return false, err
	}
	return w.mutateCollections(func(s *collections.Store) bool {
		if id == "" {
			return s.AddToActive(norm)
		}
		return s.AddColor(id, norm)
	}), nil
}

// RemoveColor removes hex from collection id
func (w *Workspace) RemoveColor(id, hex string) bool {
	return w.mutateCollections(func(s *collections.Store) bool {
		removed := s.RemoveColor(id, hex)
		if norm, err := palette.NormalizeHex(hex); err == nil && norm != hex {
			removed = s.RemoveColor(id, norm) || removed
		}
		return removed
	})
}

// Collections returns copies of the saved collections and the active id
func (w *Workspace) Collections() ([]collections.Palette, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.collections.List(), w.collections.Active().ID
}

func (w *Workspace) mutateCollections(fn func(s *collections.Store) bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !fn(w.collections) {
		return false
	}
	w.changed()
	return true
}

// Snapshot returns a copy of the current state
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	bg := DefaultBackground
	if c := w.theme.Color(w.background); c != nil {
		bg = Background{Name: c.Name, Base: c.Base}
	}
	colorCount := 0
	if w.theme != nil {
		colorCount = len(w.theme.Colors)
	}

	return Snapshot{
		ID:                 w.id,
		Version:            w.version,
		Keyword:            w.keyword,
		Theme:              w.theme,
		VisibleCount:       w.visibleCount(),
		CanShowMore:        w.visible < MaxVisible && colorCount > w.visible,
		Background:         bg,
		BackgroundIndex:    w.background,
		Objects:            w.stage.Objects(),
		Interaction:        w.interaction.State(),
		Collections:        w.collections.List(),
		ActiveCollectionID: w.collections.Active().ID,
		Pending:            w.pending,
		Error:              w.errMsg,
	}
}

func (w *Workspace) visibleCount() int {
	if w.theme == nil {
		return 0
	}
	return min(w.visible, len(w.theme.Colors))
}

// Touch marks the workspace as in use
func (w *Workspace) Touch() {
	w.mu.Lock()
	w.lastSeen = w.now()
	w.mu.Unlock()
}

// IdleFor returns how long the workspace has gone untouched
func (w *Workspace) IdleFor() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.now().Sub(w.lastSeen)
}

// Subscribe returns a channel that receives a signal after every change,
// and a function that cancels the subscription. Signals coalesce.
func (w *Workspace) Subscribe() (<-chan struct{}, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan struct{}, 1)
	id := w.nextSub
	w.nextSub++
	w.subs[id] = ch

	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

// changed bumps the version and wakes subscribers. Caller holds mu.
func (w *Workspace) changed() {
	w.version++
	w.lastSeen = w.now()
	for _, ch := range w.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
