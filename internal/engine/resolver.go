package engine

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Resolve turns one ability invocation into a record. Dice are drawn in a fixed
// order: to-hit, base damage, stance die, then the ability's own extras.
func (e *engine) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validateStance(input.Context.Stance); err != nil {
		return nil, err
	}
	if err := validateStyleRank(input.Context.StyleRank); err != nil {
		return nil, err
	}

	var (
		record *entities.Record
		err    error
	)
	switch input.Ability {
	case entities.AbilityArmedAttack:
		record, _, err = e.armedAttack(input.Context)
	case entities.AbilitySilentExecution:
		record, err = e.silentExecution(input.Context, input.Character)
	case entities.AbilityHiddenCut:
		record, err = e.hiddenCut(input.Context, input.Character, 1)
	case entities.AbilityHiddenCutRitual:
		record, err = e.hiddenCut(input.Context, input.Character, 3)
	default:
		t, ok := techniqueByID(input.Ability)
		if !ok {
			return nil, errors.InvalidField("ability", string(input.Ability), "unknown ability")
		}
		record, err = e.technique(t, input.Character)
	}
	if err != nil {
		return nil, err
	}

	record.PrimaryLabel = entities.PrimaryLabelDamage
	record.PrimaryValue = record.DamageTotal
	return &ResolveOutput{Record: record}, nil
}

// armedAttack resolves the selected weapon with the hidden style and stance applied
func (e *engine) armedAttack(actx entities.ActionContext) (*entities.Record, *Weapon, error) {
	weapon, err := e.catalog.Get(actx.Weapon)
	if err != nil {
		return nil, nil, err
	}

	base, err := ResolveBaseAttack(e.roller, weapon)
	if err != nil {
		return nil, nil, err
	}

	stance := actx.Stance
	if stance == "" {
		stance = entities.StanceNone
	}

	record := &entities.Record{
		Ability:       weapon.Name,
		Range:         weapon.Range,
		Description:   base.Flavor,
		HasAttack:     true,
		AttackRoll:    base.AttackRoll,
		AttackTotal:   base.AttackTotal,
		AttackBonuses: []entities.Bonus{{Source: "weapon", Value: weapon.AttackBonus}},
		IsCritical:    base.IsCritical,
		DamageRolls:   base.DamageRolls,
		DamageTotal:   base.DamageTotal,
		DamageBonuses: []entities.Bonus{{Source: "weapon", Value: weapon.FlatDamage}},
		Weapon:        weapon.ID,
		Stance:        stance,
		StyleRank:     actx.StyleRank,
	}

	if actx.StyleRank > 0 {
		source := "Hidden Style (" + entities.StyleRankLabel(actx.StyleRank) + ")"
		addAttackBonus(record, source, actx.StyleRank)
		addDamageBonus(record, source, actx.StyleRank)
	}

	if stance == entities.StanceSun {
		addAttackBonus(record, "Stance of the Sun", 2)
		if weapon.ExtraDieFaces == 0 {
			record.ExtraDice = append(record.ExtraDice, "+1 die (faces unknown)")
			addNote(record, "Stance of the Sun: weapon die faces unknown, extra die skipped")
		} else {
			rolls, err := e.roller.Roll(weapon.ExtraDieFaces, 1)
			if err != nil {
				return nil, nil, errors.Wrap(err, "failed to roll stance die")
			}
			addDamageDice(record, rolls, fmt.Sprintf("+1d%d (Stance of the Sun)", weapon.ExtraDieFaces))
		}
	}

	return record, weapon, nil
}

// silentExecution adds floor(level/4)+1 d8 to an armed attack
func (e *engine) silentExecution(actx entities.ActionContext, c *entities.Character) (*entities.Record, error) {
	record, _, err := e.armedAttack(actx)
	if err != nil {
		return nil, err
	}

	count := max(1, floorDiv(c.Level, 4)+1)
	rolls, err := e.roller.Roll(8, count)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll silent execution dice")
	}

	addDamageDice(record, rolls, fmt.Sprintf("+%dd8 (Silent Execution)", count))
	record.Ability += " + Silent Execution"
	addNote(record, fmt.Sprintf("Silent Execution: +%dd8 damage.", count))
	return record, nil
}

// hiddenCut adds dice of the weapon's own die, doubled on a critical, plus the
// Strength modifier. The Strength bonus is flat and never doubled.
func (e *engine) hiddenCut(actx entities.ActionContext, c *entities.Character, extra int) (*entities.Record, error) {
	record, weapon, err := e.armedAttack(actx)
	if err != nil {
		return nil, err
	}

	name := "Hidden Cut"
	if extra > 1 {
		name = "Hidden Cut (Ritual)"
	}
	if record.IsCritical {
		extra *= 2
	}
	strength := Modifier(c.Attributes.Strength)

	if weapon.ExtraDieFaces == 0 {
		addNote(record, name+": weapon die faces unknown, extra dice skipped")
	} else {
		rolls, err := e.roller.Roll(weapon.ExtraDieFaces, extra)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s dice", name)
		}
		addDamageDice(record, rolls, fmt.Sprintf("+%dd%d (%s)", extra, weapon.ExtraDieFaces, name))

		crit := ""
		if record.IsCritical {
			crit = " (critical)"
		}
		addNote(record, fmt.Sprintf("%s: +%dd%d%s + STR(%d).", name, extra, weapon.ExtraDieFaces, crit, strength))
	}
	addDamageBonus(record, "Strength ("+name+")", strength)

	record.Ability += " + " + name
	return record, nil
}

func addAttackBonus(r *entities.Record, source string, value int) {
	r.AttackBonuses = append(r.AttackBonuses, entities.Bonus{Source: source, Value: value})
	r.AttackTotal += value
}

func addDamageBonus(r *entities.Record, source string, value int) {
	r.DamageBonuses = append(r.DamageBonuses, entities.Bonus{Source: source, Value: value})
	r.DamageTotal += value
}

func addDamageDice(r *entities.Record, rolls []int, label string) {
	r.DamageRolls = append(r.DamageRolls, rolls...)
	r.DamageTotal += sum(rolls)
	r.ExtraDice = append(r.ExtraDice, label)
}

func addNote(r *entities.Record, note string) {
	r.Notes = append(r.Notes, note)
}
