// Package engine resolves the sheet's dice actions and derived numbers
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Engine provides the sheet's rules calculations
type Engine interface {
	// Action resolution
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
	ListAbilities() []*AbilityInfo
	ListWeapons() []*Weapon

	// Skills
	SkillTable(ctx context.Context, input *SkillTableInput) (*SkillTableOutput, error)
	RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error)

	// Defense
	ArmorClass(ctx context.Context, input *ArmorClassInput) (*ArmorClassOutput, error)

	// Utility methods
	CalculateModifier(score int) int
	CalculateMastery(level int) int
	CalculateSaveDC(character *entities.Character) int
}
