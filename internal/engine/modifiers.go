package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Armor class situational limits
const (
	MinExtraArmor = -50
	MaxExtraArmor = 50

	sunStanceArmorPenalty = -4
)

// Modifier returns floor((score-10)/2), rounding toward negative infinity
func Modifier(score int) int {
	return floorDiv(score-10, 2)
}

// Mastery returns ceil(1 + level/4)
func Mastery(level int) int {
	return 1 + ceilDiv(level, 4)
}

// MinHitPoints is the lowest current HP allowed for a pool, -pool/2 rounded down
func MinHitPoints(pool int) int {
	return floorDiv(-pool, 2)
}

// SaveDC returns the difficulty of saving throws against the character's techniques
func SaveDC(c *entities.Character) int {
	return 10 + Mastery(c.Level) + Modifier(c.Attributes.Intelligence) + 1
}

// BaseArmorClass sums the armor parts
func BaseArmorClass(c *entities.Character) int {
	a := c.Armor
	return a.Natural + a.Uniform + a.Shield + a.Other
}

// CurrentArmorClass applies the situational modifiers of actx to the base armor class
func CurrentArmorClass(c *entities.Character, actx entities.ActionContext) (int, []entities.Bonus, error) {
	if actx.ExtraArmor < MinExtraArmor || actx.ExtraArmor > MaxExtraArmor {
		return 0, nil, errors.InvalidField("extra_armor", actx.ExtraArmor,
			"must be between -50 and 50")
	}

	var bonuses []entities.Bonus
	if actx.DescendingStrike {
		bonuses = append(bonuses, entities.Bonus{Source: "Descending Strike", Value: Mastery(c.Level)})
	}
	if actx.Stance == entities.StanceSun {
		bonuses = append(bonuses, entities.Bonus{Source: "Stance of the Sun", Value: sunStanceArmorPenalty})
	}
	if actx.ExtraArmor != 0 {
		bonuses = append(bonuses, entities.Bonus{Source: "Other", Value: actx.ExtraArmor})
	}

	total := BaseArmorClass(c)
	for _, b := range bonuses {
		total += b.Value
	}
	return total, bonuses, nil
}

var attributeLabels = map[string]entities.Attribute{
	"for":          entities.AttributeStrength,
	"força":        entities.AttributeStrength,
	"forca":        entities.AttributeStrength,
	"str":          entities.AttributeStrength,
	"strength":     entities.AttributeStrength,
	"des":          entities.AttributeDexterity,
	"dex":          entities.AttributeDexterity,
	"destreza":     entities.AttributeDexterity,
	"dexterity":    entities.AttributeDexterity,
	"con":          entities.AttributeConstitution,
	"constituição": entities.AttributeConstitution,
	"constituicao": entities.AttributeConstitution,
	"constitution": entities.AttributeConstitution,
	"int":          entities.AttributeIntelligence,
	"inteligência": entities.AttributeIntelligence,
	"inteligencia": entities.AttributeIntelligence,
	"intelligence": entities.AttributeIntelligence,
	"sab":          entities.AttributeWisdom,
	"sabedoria":    entities.AttributeWisdom,
	"wis":          entities.AttributeWisdom,
	"wisdom":       entities.AttributeWisdom,
	"car":          entities.AttributeCharisma,
	"carisma":      entities.AttributeCharisma,
	"cha":          entities.AttributeCharisma,
	"charisma":     entities.AttributeCharisma,
}

// ParseAttribute maps a governing attribute label to an attribute.
// Labels are matched case-insensitively in English or Portuguese, short or long.
func ParseAttribute(label string) (entities.Attribute, error) {
	attr, ok := attributeLabels[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return "", errors.InvalidField("attribute", label, "unknown attribute label")
	}
	return attr, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
