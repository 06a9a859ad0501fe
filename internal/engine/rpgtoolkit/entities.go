// Package rpgtoolkit bridges sheet entities to rpg-toolkit's core and events packages
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Entity types
const (
	EntityTypeCharacter    = "character"
	EntityTypeHistoryEntry = "history_entry"
)

var _ core.Entity = (*entities.Character)(nil)

// HistoryEntryEntity wraps entities.HistoryEntry to implement core.Entity
type HistoryEntryEntity struct {
	*entities.HistoryEntry
}

// GetID returns the history entry's ID
func (h *HistoryEntryEntity) GetID() string {
	return h.ID
}

// GetType returns the entity type for rpg-toolkit
func (h *HistoryEntryEntity) GetType() string {
	return EntityTypeHistoryEntry
}

// WrapHistoryEntry converts a history entry to an entity
func WrapHistoryEntry(entry *entities.HistoryEntry) *HistoryEntryEntity {
	return &HistoryEntryEntity{HistoryEntry: entry}
}
