package models

import (
	"time"
)

// Slot is a named string value, the unit of browser-style persistence.
// Each workspace keeps its collections in one slot.
type Slot struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Generation records one completed palette request for a workspace
type Generation struct {
	ID          uint   `gorm:"primaryKey"`
	WorkspaceID string `gorm:"index;size:64;not null"`
	Keyword     string `gorm:"not null"`
	ThemeName   string
	ColorCount  int
	Error       string // user-facing message when the request failed
	CreatedAt   time.Time
}

// Succeeded reports whether the request produced a palette
func (g *Generation) Succeeded() bool {
	return g.Error == ""
}
