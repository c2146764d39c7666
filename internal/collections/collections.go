// Package collections manages user-named sets of saved hex colors. Every
// mutation hands the full set to a commit hook so it can be persisted.
package collections

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"slices"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// DefaultID and DefaultName describe the collection every workspace starts with
	DefaultID   = "default"
	DefaultName = "Default collection"
)

// Palette is a named, ordered set of unique hex colors
type Palette struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Colors []string `json:"colors" yaml:"colors"`
}

// CommitFunc receives the serialized collection set after every mutation
type CommitFunc func(data []byte) error

// ErrorFunc is told about commit failures; they are not retried
type ErrorFunc func(err error)

var namePolicy = bluemonday.StrictPolicy()

// Store holds the collections and the active selection. It is not safe for
// concurrent use.
type Store struct {
	palettes []*Palette
	activeID string
	commit   CommitFunc
	onError  ErrorFunc
}

// Option configures a Store
type Option func(*Store)

// WithCommit sets the persistence hook
func WithCommit(fn CommitFunc) Option {
	return func(s *Store) { s.commit = fn }
}

// WithErrorHandler sets the callback for failed commits
func WithErrorHandler(fn ErrorFunc) Option {
	return func(s *Store) { s.onError = fn }
}

// DefaultPalettes returns the state used when nothing is stored
func DefaultPalettes() []*Palette {
	return []*Palette{{ID: DefaultID, Name: DefaultName, Colors: []string{}}}
}

// Parse decodes a stored collection set. Anything absent, unparsable or
// empty yields the default set.
func Parse(raw []byte) []*Palette {
	if len(raw) == 0 {
		return DefaultPalettes()
	}
	var palettes []*Palette
	if err := json.Unmarshal(raw, &palettes); err != nil {
		return DefaultPalettes()
	}

	out := make([]*Palette, 0, len(palettes))
	for _, p := range palettes {
		if p == nil || p.ID == "" {
			continue
		}
		if p.Colors == nil {
			p.Colors = []string{}
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return DefaultPalettes()
	}
	return out
}

// New creates a store over palettes. The first palette becomes active.
// Loading does not commit.
func New(palettes []*Palette, opts ...Option) *Store {
	if len(palettes) == 0 {
		palettes = DefaultPalettes()
	}
	s := &Store{palettes: palettes, activeID: palettes[0].ID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load creates a store from serialized data, see Parse
func Load(raw []byte, opts ...Option) *Store {
	return New(Parse(raw), opts...)
}

// Create adds an empty collection and makes it active. Blank names are
// ignored and nil is returned.
func (s *Store) Create(name string) *Palette {
	name = strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(name)))
	if name == "" {
		return nil
	}
	p := &Palette{ID: newPaletteID(), Name: name, Colors: []string{}}
	s.palettes = append(s.palettes, p)
	s.activeID = p.ID
	s.persist()
	return p
}

// Delete removes a collection unless it is the last one. Deleting the
// active collection activates the first remaining one.
func (s *Store) Delete(id string) bool {
	if len(s.palettes) <= 1 {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.palettes = slices.Delete(s.palettes, i, i+1)
	if s.activeID == id {
		s.activeID = s.palettes[0].ID
	}
	s.persist()
	return true
}

// AddColor appends hex to the collection unless it is already present
func (s *Store) AddColor(id, hex string) bool {
	p := s.Get(id)
	if p == nil || slices.Contains(p.Colors, hex) {
		return false
	}
	p.Colors = append(p.Colors, hex)
	s.persist()
	return true
}

// AddToActive adds hex to the active collection
func (s *Store) AddToActive(hex string) bool {
	return s.AddColor(s.Active().ID, hex)
}

// RemoveColor removes every occurrence of hex from the collection
func (s *Store) RemoveColor(id, hex string) bool {
	p := s.Get(id)
	if p == nil {
		return false
	}
	before := len(p.Colors)
	p.Colors = slices.DeleteFunc(p.Colors, func(c string) bool { return c == hex })
	if len(p.Colors) == before {
		return false
	}
	s.persist()
	return true
}

// SetActive switches the active collection. Unknown ids are ignored.
func (s *Store) SetActive(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	s.activeID = id
	return true
}

// Active returns the active collection, falling back to the first one when
// the active id no longer resolves.
func (s *Store) Active() *Palette {
	if p := s.Get(s.activeID); p != nil {
		return p
	}
	return s.palettes[0]
}

// Get returns the collection with id, or nil
func (s *Store) Get(id string) *Palette {
	if i := s.index(id); i >= 0 {
		return s.palettes[i]
	}
	return nil
}

// List returns copies of all collections in order
func (s *Store) List() []Palette {
	out := make([]Palette, len(s.palettes))
	for i, p := range s.palettes {
		out[i] = Palette{ID: p.ID, Name: p.Name, Colors: slices.Clone(p.Colors)}
	}
	return out
}

// Len returns the number of collections
func (s *Store) Len() int { return len(s.palettes) }

// Marshal serializes the full collection set
func (s *Store) Marshal() ([]byte, error) {
	return json.Marshal(s.palettes)
}

func (s *Store) persist() {
	if s.commit == nil {
		return
	}
	data, err := s.Marshal()
	if err == nil {
		err = s.commit(data)
	}
	if err != nil && s.onError != nil {
		s.onError(fmt.Errorf("failed to persist collections: %w", err))
	}
}

func (s *Store) index(id string) int {
	for i, p := range s.palettes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func newPaletteID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("pal-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("pal-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}
