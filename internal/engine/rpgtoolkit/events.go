package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Event types published on the sheet's bus
const (
	EventActionResolved = "sheet.action_resolved"
	EventSkillRolled    = "sheet.skill_rolled"
)

// Event context keys
const (
	ContextKeyEntry = "entry"
	ContextKeyLabel = "label"
	ContextKeyValue = "value"
)

// NewActionResolvedEvent announces a resolved ability on behalf of character
func NewActionResolvedEvent(character *entities.Character, entry *entities.HistoryEntry) events.Event {
	return newEntryEvent(EventActionResolved, character, entry)
}

// NewSkillRolledEvent announces a skill check on behalf of character
func NewSkillRolledEvent(character *entities.Character, entry *entities.HistoryEntry) events.Event {
	return newEntryEvent(EventSkillRolled, character, entry)
}

func newEntryEvent(eventType string, character *entities.Character, entry *entities.HistoryEntry) events.Event {
	event := events.NewGameEvent(eventType, character, WrapHistoryEntry(entry))
	event.Context().Set(ContextKeyEntry, entry)
	event.Context().Set(ContextKeyLabel, entry.Label)
	if entry.Record != nil {
		event.Context().Set(ContextKeyValue, entry.Record.PrimaryValue)
	}
	return event
}

// EntryFromEvent returns the history entry carried by an event built here
func EntryFromEvent(event events.Event) (*entities.HistoryEntry, bool) {
	value, ok := event.Context().Get(ContextKeyEntry)
	if !ok {
		return nil, false
	}
	entry, ok := value.(*entities.HistoryEntry)
	return entry, ok
}
