package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Technique is a blood technique. Damage adds the Intelligence modifier.
type Technique struct {
	ID          entities.AbilityID
	Name        string
	Range       string
	Description string
	Cost        int
	Damage      entities.DiceSpec
	SaveDC      bool

	// Attack techniques roll d20 + the spellcasting skill total and switch to
	// CriticalDamage on a raw 20
	Attack              bool
	CriticalDamage      entities.DiceSpec
	CriticalDescription string

	// DurationDie, when set, rolls 1dN+1 rounds into the description
	DurationDie int
}

var techniques = []*Technique{
	{
		ID:          entities.AbilityConvergence,
		Name:        "Convergence",
		Range:       "12m",
		Description: "Blood converges on the target",
		Cost:        1,
		Damage:      d(3, 8),
		SaveDC:      true,
	},
	{
		ID:                  entities.AbilityPiercingBlood,
		Name:                "Piercing Blood",
		Range:               "18m",
		Description:         "Pierces with blood",
		Cost:                4,
		Damage:              d(8, 8),
		Attack:              true,
		CriticalDamage:      d(16, 8),
		CriticalDescription: "Pierces with devastating blood",
	},
	{
		ID:          entities.AbilityBloodPool,
		Name:        "Byakuren, Chi Damari",
		Range:       "18m",
		Description: "Creates a pool of blood that lasts %d rounds",
		Cost:        4,
		Damage:      d(7, 8),
		SaveDC:      true,
		DurationDie: 2,
	},
	{
		ID:          entities.AbilityBloodPoolPersistence,
		Name:        "Byakuren, Chi Damari (Persistence)",
		Range:       "One square (1.5m)",
		Description: "The pool is still on the ground and keeps taking its toll",
		Damage:      d(4, 12),
		SaveDC:      true,
	},
	{
		ID:          entities.AbilityBloodWhirlwind,
		Name:        "Blood Whirlwind",
		Range:       "6m, radius 3m",
		Description: "A whirlwind of blood",
		Damage:      d(3, 8),
		SaveDC:      true,
	},
	{
		ID:          entities.AbilityBleeding,
		Name:        "Bleeding - Whirlwind",
		Description: "Bleeds until the save succeeds",
		Damage:      d(2, 8),
		SaveDC:      true,
	},
}

func techniqueByID(id entities.AbilityID) (*Technique, bool) {
	for _, t := range techniques {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

func (e *engine) technique(t *Technique, c *entities.Character) (*entities.Record, error) {
	record := &entities.Record{
		Ability:     t.Name,
		Range:       t.Range,
		Description: t.Description,
		Cost:        t.Cost,
	}
	if t.SaveDC {
		record.SaveDC = SaveDC(c)
	}

	damage := t.Damage
	if t.Attack {
		skill, err := FindSkillTotal(c.SpellcastingSkill, c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find spellcasting skill")
		}

		d20, err := e.roller.D20()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll to hit")
		}

		record.HasAttack = true
		record.AttackRoll = d20
		record.AttackTotal = d20
		addAttackBonus(record, skill.Name, skill.Total)
		if d20 == 20 {
			record.IsCritical = true
			record.Description = t.CriticalDescription
			damage = t.CriticalDamage
		}
	}

	rolls, err := e.roller.Roll(damage.Faces, damage.Count)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s damage", damage)
	}
	record.DamageRolls = rolls
	record.DamageTotal = sum(rolls)
	addDamageBonus(record, string(entities.AttributeIntelligence), Modifier(c.Attributes.Intelligence))

	if t.DurationDie > 0 {
		duration, err := e.roller.Roll(t.DurationDie, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll duration")
		}
		record.Description = fmt.Sprintf(t.Description, duration[0]+1)
	}

	return record, nil
}
