package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Request documents. Field names are the JSON keys of the request Struct.

// GetSheetRequest asks for the rendered sheet
type GetSheetRequest struct {
	SessionID string                 `json:"session_id"`
	Context   entities.ActionContext `json:"context"`
}

// ListSkillsRequest asks for the skill table
type ListSkillsRequest struct{}

// RollSkillRequest rolls one skill
type RollSkillRequest struct {
	SessionID string `json:"session_id"`
	Skill     string `json:"skill"`
}

// ResolveActionRequest invokes an ability
type ResolveActionRequest struct {
	SessionID string                 `json:"session_id"`
	Ability   entities.AbilityID     `json:"ability"`
	Context   entities.ActionContext `json:"context"`
}

// ListHistoryRequest lists the newest history entries
type ListHistoryRequest struct {
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit"`
}

// ClearHistoryRequest empties the history
type ClearHistoryRequest struct {
	SessionID string `json:"session_id"`
}

// UpdateResourcesRequest sets the current pools
type UpdateResourcesRequest struct {
	SessionID string             `json:"session_id"`
	Resources entities.Resources `json:"resources"`
}

// Response documents

// CharacterView is the static part of the sheet
type CharacterView struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Level      int                 `json:"level"`
	Attributes entities.Attributes `json:"attributes"`
	Armor      entities.ArmorParts `json:"armor"`
	Pools      entities.Pools      `json:"pools"`
}

// ArmorClassView is base and situational armor class
type ArmorClassView struct {
	Base    int              `json:"base"`
	Current int              `json:"current"`
	Bonuses []entities.Bonus `json:"bonuses"`
}

// SkillView is one row of the skill table
type SkillView struct {
	Name      string           `json:"name"`
	Attribute string           `json:"attribute"`
	Total     int              `json:"total"`
	Breakdown []entities.Bonus `json:"breakdown"`
}

// WeaponView is one entry of the arsenal
type WeaponView struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	AttackBonus       int    `json:"attack_bonus"`
	Damage            string `json:"damage"`
	CriticalDamage    string `json:"critical_damage"`
	CriticalThreshold int    `json:"critical_threshold"`
	FlatDamage        int    `json:"flat_damage"`
}

// AbilityView is one invocable ability
type AbilityView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Cost int    `json:"cost,omitempty"`
}

// HistoryEntryView is one line of the history log
type HistoryEntryView struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Label     string           `json:"label"`
	Record    *entities.Record `json:"record"`
}

// GetSheetResponse is the rendered sheet
type GetSheetResponse struct {
	Character  CharacterView      `json:"character"`
	Modifiers  map[string]int     `json:"modifiers"`
	Mastery    int                `json:"mastery"`
	SaveDC     int                `json:"save_dc"`
	ArmorClass ArmorClassView     `json:"armor_class"`
	Resources  entities.Resources `json:"resources"`
	Skills     []SkillView        `json:"skills"`
	Weapons    []WeaponView       `json:"weapons"`
	Abilities  []AbilityView      `json:"abilities"`
}

// ListSkillsResponse is the skill table
type ListSkillsResponse struct {
	Skills []SkillView `json:"skills"`
}

// RollSkillResponse carries the check
type RollSkillResponse struct {
	Check *entities.SkillCheck `json:"check"`
	Entry HistoryEntryView     `json:"entry"`
}

// ResolveActionResponse carries the resolved record
type ResolveActionResponse struct {
	Record *entities.Record `json:"record"`
	Entry  HistoryEntryView `json:"entry"`
}

// ListHistoryResponse holds entries newest first
type ListHistoryResponse struct {
	Entries []HistoryEntryView `json:"entries"`
}

// ClearHistoryResponse reports how many entries were removed
type ClearHistoryResponse struct {
	EntriesDeleted int `json:"entries_deleted"`
}

// UpdateResourcesResponse echoes the stored pools
type UpdateResourcesResponse struct {
	Resources entities.Resources `json:"resources"`
}
