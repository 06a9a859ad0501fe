package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

func TestHistoryEntryEntity(t *testing.T) {
	entry := &entities.HistoryEntry{
		ID:    "entry-123",
		Label: "Hook Sword (G4)",
	}

	entity := WrapHistoryEntry(entry)

	assert.Equal(t, "entry-123", entity.GetID())
	assert.Equal(t, EntityTypeHistoryEntry, entity.GetType())
	assert.Equal(t, entry, entity.HistoryEntry)
}

func TestCharacterIsEntity(t *testing.T) {
	character := &entities.Character{ID: "shoji", Name: "Shoji Yoshiro"}

	assert.Equal(t, "shoji", character.GetID())
	assert.Equal(t, EntityTypeCharacter, character.GetType())
}
