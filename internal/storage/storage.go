// Package storage is a string-keyed slot store on top of gorm. Values are
// opaque strings; callers own their encoding.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/colorpick/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionsPrefix namespaces the collection slot of each workspace
const CollectionsPrefix = "colormind-palettes"

// CollectionsKey returns the slot key holding a workspace's collections
func CollectionsKey(workspaceID string) string {
	return CollectionsPrefix + ":" + workspaceID
}

// Slots reads and writes named string values
type Slots interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SlotStore implements Slots on a gorm database
type SlotStore struct {
	db *gorm.DB
}

// NewSlotStore wraps db. The slots table must already be migrated.
func NewSlotStore(db *gorm.DB) *SlotStore {
	return &SlotStore{db: db}
}

func keyIs(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

// Get returns the value stored under key
func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var slot models.Slot
	err := s.db.WithContext(ctx).Where(keyIs(key)).Take(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return slot.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	slot := models.Slot{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *SlotStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where(keyIs(key)).Delete(&models.Slot{}).Error; err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

// List returns every slot whose key starts with prefix, ordered by key
func (s *SlotStore) List(ctx context.Context, prefix string) ([]models.Slot, error) {
	var slots []models.Slot
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	out := slots[:0]
	for _, slot := range slots {
		if strings.HasPrefix(slot.Key, prefix) {
			out = append(out, slot)
		}
	}
	return out, nil
}

// RecordGeneration appends a generation to the workspace history
func (s *SlotStore) RecordGeneration(ctx context.Context, g *models.Generation) error {
	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

// Generations returns the newest generations of a workspace first
func (s *SlotStore) Generations(ctx context.Context, workspaceID string, limit int) ([]models.Generation, error) {
	var out []models.Generation
	err := s.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load generations: %w", err)
	}
	return out, nil
}

var _ Slots = (*SlotStore)(nil)
