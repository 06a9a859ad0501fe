package engine

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config holds the dependencies of the engine
type Config struct {
	Roller dice.Roller

	// Weapons overrides the default arsenal
	Weapons []*Weapon
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

type engine struct {
	roller  dice.Roller
	catalog *Catalog
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	weapons := cfg.Weapons
	if weapons == nil {
		weapons = DefaultWeapons()
	}
	catalog, err := NewCatalog(weapons)
	if err != nil {
		return nil, errors.Wrap(err, "invalid weapon catalog")
	}

	return &engine{
		roller:  cfg.Roller,
		catalog: catalog,
	}, nil
}

func (e *engine) CalculateModifier(score int) int {
	return Modifier(score)
}

func (e *engine) CalculateMastery(level int) int {
	return Mastery(level)
}

func (e *engine) CalculateSaveDC(character *entities.Character) int {
	return SaveDC(character)
}

func (e *engine) ListWeapons() []*Weapon {
	return e.catalog.List()
}

func (e *engine) ListAbilities() []*AbilityInfo {
	abilities := []*AbilityInfo{
		{ID: entities.AbilityArmedAttack, Name: "Armed Attack", Kind: AbilityKindWeapon},
		{ID: entities.AbilitySilentExecution, Name: "Silent Execution", Kind: AbilityKindWeapon},
		{ID: entities.AbilityHiddenCut, Name: "Hidden Cut", Kind: AbilityKindWeapon},
		{ID: entities.AbilityHiddenCutRitual, Name: "Hidden Cut (Ritual)", Kind: AbilityKindWeapon},
	}
	for _, t := range techniques {
		abilities = append(abilities, &AbilityInfo{
			ID:   t.ID,
			Name: t.Name,
			Kind: AbilityKindTechnique,
			Cost: t.Cost,
		})
	}
	return abilities
}

func (e *engine) SkillTable(ctx context.Context, input *SkillTableInput) (*SkillTableOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	skills, err := ComputeSkillTable(input.Character)
	if err != nil {
		return nil, err
	}
	return &SkillTableOutput{Skills: skills}, nil
}

func (e *engine) RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error) {
	if input == nil || input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	d20, err := e.roller.D20()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Skill)
	}

	return &RollSkillCheckOutput{
		Check: &entities.SkillCheck{
			Label:    SkillCheckLabel(input.Skill),
			Skill:    input.Skill,
			Roll:     d20,
			Modifier: input.Total,
			Total:    d20 + input.Total,
		},
	}, nil
}

func (e *engine) ArmorClass(ctx context.Context, input *ArmorClassInput) (*ArmorClassOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := validateStance(input.Context.Stance); err != nil {
		return nil, err
	}

	current, bonuses, err := CurrentArmorClass(input.Character, input.Context)
	if err != nil {
		return nil, err
	}

	return &ArmorClassOutput{
		Base:    BaseArmorClass(input.Character),
		Current: current,
		Bonuses: bonuses,
	}, nil
}

func validateStance(stance entities.Stance) error {
	switch stance {
	case "", entities.StanceNone, entities.StanceSun:
		return nil
	default:
		return errors.InvalidField("stance", string(stance),
			fmt.Sprintf("must be one of: %s, %s", entities.StanceNone, entities.StanceSun))
	}
}

func validateStyleRank(rank int) error {
	if rank < entities.MinStyleRank || rank > entities.MaxStyleRank {
		return errors.InvalidField("style_rank", rank,
			fmt.Sprintf("must be between %d and %d", entities.MinStyleRank, entities.MaxStyleRank))
	}
	return nil
}
