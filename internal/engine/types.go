package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ResolveInput selects an ability and the situation it is invoked in
type ResolveInput struct {
	Ability   entities.AbilityID
	Context   entities.ActionContext
	Character *entities.Character
}

// Validate checks the input carries what every ability needs
func (i *ResolveInput) Validate() error {
	if i == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if i.Ability == "" {
		vb.RequiredField("ability")
	}
	if i.Character == nil {
		vb.RequiredField("character")
	}
	return vb.Build()
}

// ResolveOutput carries the resolved record
type ResolveOutput struct {
	Record *entities.Record
}

// SkillTableInput requests every skill total of a character
type SkillTableInput struct {
	Character *entities.Character
}

// SkillTableOutput lists skill totals in table order
type SkillTableOutput struct {
	Skills []*SkillTotal
}

// RollSkillCheckInput rolls a d20 against an already computed total
type RollSkillCheckInput struct {
	Skill string
	Total int
}

// RollSkillCheckOutput carries the check
type RollSkillCheckOutput struct {
	Check *entities.SkillCheck
}

// ArmorClassInput computes armor class for a character in a situation
type ArmorClassInput struct {
	Character *entities.Character
	Context   entities.ActionContext
}

// ArmorClassOutput holds base and situational armor class
type ArmorClassOutput struct {
	Base    int
	Current int
	Bonuses []entities.Bonus
}

// AbilityKind groups abilities by what they resolve against
type AbilityKind string

// Ability kinds
const (
	AbilityKindWeapon    AbilityKind = "weapon"
	AbilityKindTechnique AbilityKind = "technique"
)

// AbilityInfo describes an ability for listing
type AbilityInfo struct {
	ID   entities.AbilityID
	Name string
	Kind AbilityKind
	Cost int
}
