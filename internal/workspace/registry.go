package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/colorpick/internal/collections"
	"github.com/thatcatcamp/colorpick/internal/storage"
)

// Registry maps session ids to live workspaces, loading each workspace's
// saved collections the first time it is requested.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace

	slots   storage.Slots
	history History
	log     zerolog.Logger
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithHistory records every finished generation request
func WithHistory(h History) RegistryOption {
	return func(r *Registry) { r.history = h }
}

// WithLogger sets the logger workspaces derive from
func WithLogger(l zerolog.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry creates an empty registry persisting collections to slots
func NewRegistry(slots storage.Slots, opts ...RegistryOption) *Registry {
	r := &Registry{
		workspaces: make(map[string]*Workspace),
		slots:      slots,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the workspace for id, creating it on first use
func (r *Registry) Get(ctx context.Context, id string) *Workspace {
	if w, ok := r.Lookup(id); ok {
		w.Touch()
		return w
	}

	// the slot read happens outside the lock; a concurrent Get may win
	store := r.loadCollections(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.workspaces[id]; ok {
		w.Touch()
		return w
	}

	w := New(id, store, r.log)
	w.history = r.history
	r.workspaces[id] = w
	r.log.Debug().Str("workspace", id).Int("live", len(r.workspaces)).Msg("workspace created")
	return w
}

// Peek returns the live workspace for id, or a detached default workspace
// when none is registered. The detached workspace is never stored and its
// collections are not persisted.
func (r *Registry) Peek(id string) *Workspace {
	if w, ok := r.Lookup(id); ok {
		w.Touch()
		return w
	}
	return New(id, collections.Load(nil), r.log)
}

// Lookup returns the workspace for id without creating it
func (r *Registry) Lookup(id string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workspaces[id]
	return w, ok
}

// Len returns the number of live workspaces
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Evict drops workspaces idle for longer than ttl and returns how many
// were removed. Their collections are already persisted.
func (r *Registry) Evict(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, w := range r.workspaces {
		if w.IdleFor() > ttl {
			delete(r.workspaces, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) loadCollections(ctx context.Context, id string) *collections.Store {
	key := storage.CollectionsKey(id)
	log := r.log.With().Str("workspace", id).Str("slot", key).Logger()

	var raw []byte
	if r.slots != nil {
		value, found, err := r.slots.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load collections, starting from default")
		} else if found {
			raw = []byte(value)
		}
	}

	commit := func(data []byte) error {
		if r.slots == nil {
			return nil
		}
		return r.slots.Set(context.Background(), key, string(data))
	}
	onError := func(err error) {
		log.Warn().Err(err).Msg("collections not saved")
	}
	return collections.Load(raw, collections.WithCommit(commit), collections.WithErrorHandler(onError))
}
