package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// GetSheetInput requests the rendered sheet for a session and situation
type GetSheetInput struct {
	SessionID string
	Context   entities.ActionContext
}

// GetSheetOutput is everything the sheet displays
type GetSheetOutput struct {
	Character  *entities.Character
	Modifiers  map[entities.Attribute]int
	Mastery    int
	SaveDC     int
	ArmorClass *engine.ArmorClassOutput
	Resources  entities.Resources
	Skills     []*engine.SkillTotal
	Weapons    []*engine.Weapon
	Abilities  []*engine.AbilityInfo
}

// ListSkillsInput requests the skill table
type ListSkillsInput struct{}

// ListSkillsOutput lists skill totals in table order
type ListSkillsOutput struct {
	Skills []*engine.SkillTotal
}

// RollSkillInput rolls a skill of the sheet's character
type RollSkillInput struct {
	SessionID string
	Skill     string
}

// RollSkillOutput carries the check and the history entry it produced
type RollSkillOutput struct {
	Check *entities.SkillCheck
	Entry *entities.HistoryEntry
}

// ResolveActionInput invokes an ability
type ResolveActionInput struct {
	SessionID string
	Ability   entities.AbilityID
	Context   entities.ActionContext
}

// ResolveActionOutput carries the record and the history entry it produced
type ResolveActionOutput struct {
	Record *entities.Record
	Entry  *entities.HistoryEntry
}

// ListHistoryInput lists the newest entries of a session. Limit 0 lists the whole log.
type ListHistoryInput struct {
	SessionID string
	Limit     int
}

// ListHistoryOutput holds entries newest first
type ListHistoryOutput struct {
	Entries []*entities.HistoryEntry
}

// ClearHistoryInput empties the history of a session
type ClearHistoryInput struct {
	SessionID string
}

// ClearHistoryOutput reports how many entries were removed
type ClearHistoryOutput struct {
	EntriesDeleted int
}

// UpdateResourcesInput sets the current pools of a session
type UpdateResourcesInput struct {
	SessionID string
	Resources entities.Resources
}

// UpdateResourcesOutput echoes the stored pools
type UpdateResourcesOutput struct {
	Resources entities.Resources
}
