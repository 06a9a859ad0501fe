package engine

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// SkillTotal is a skill's final bonus and the parts it was built from
type SkillTotal struct {
	Name      string
	Attribute entities.Attribute
	Total     int
	Breakdown []entities.Bonus
}

// ComputeSkillTotal returns attribute modifier + half level + mastery (if in the
// mastery set) + half mastery (if in the specialization set) + every flat bonus
// group listing the skill. It reads nothing but skill and c.
func ComputeSkillTotal(skill entities.Skill, c *entities.Character) (*SkillTotal, error) {
	attr, err := ParseAttribute(skill.Attribute)
	if err != nil {
		return nil, errors.Wrapf(err, "skill %q", skill.Name)
	}
	score, _ := c.Attributes.Score(attr)

	mastery := Mastery(c.Level)
	breakdown := []entities.Bonus{
		{Source: string(attr), Value: Modifier(score)},
		{Source: "half level", Value: floorDiv(c.Level, 2)},
	}
	if slices.Contains(c.SkillBonuses.Mastery, skill.Name) {
		breakdown = append(breakdown, entities.Bonus{Source: "mastery", Value: mastery})
	}
	if slices.Contains(c.SkillBonuses.Specialization, skill.Name) {
		breakdown = append(breakdown, entities.Bonus{Source: "specialization", Value: floorDiv(mastery, 2)})
	}
	for _, flat := range c.SkillBonuses.Flat {
		if slices.Contains(flat.Skills, skill.Name) {
			breakdown = append(breakdown, entities.Bonus{Source: fmt.Sprintf("other %+d", flat.Bonus), Value: flat.Bonus})
		}
	}

	total := 0
	for _, b := range breakdown {
		total += b.Value
	}

	return &SkillTotal{
		Name:      skill.Name,
		Attribute: attr,
		Total:     total,
		Breakdown: breakdown,
	}, nil
}

// ComputeSkillTable returns the total of every skill of c, in table order
func ComputeSkillTable(c *entities.Character) ([]*SkillTotal, error) {
	totals := make([]*SkillTotal, 0, len(c.Skills))
	for _, skill := range c.Skills {
		total, err := ComputeSkillTotal(skill, c)
		if err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, nil
}

// FindSkillTotal computes the total of the skill named name
func FindSkillTotal(name string, c *entities.Character) (*SkillTotal, error) {
	for _, skill := range c.Skills {
		if skill.Name == name {
			return ComputeSkillTotal(skill, c)
		}
	}
	return nil, errors.NotFoundf("skill %q not found", name).WithMeta("skill", name)
}

// SkillCheckLabel is the label of a skill check record
func SkillCheckLabel(skill string) string {
	return "Skill - " + skill
}
