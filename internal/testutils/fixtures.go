package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// TestCharacterID is the ID of the fixture character
const TestCharacterID = "shoji"

// CreateTestCharacter returns Shoji Yoshiro at level 6 with the full skills table
func CreateTestCharacter() *entities.Character {
	return &entities.Character{
		ID:    TestCharacterID,
		Name:  "Shoji Yoshiro",
		Level: 6,
		Attributes: entities.Attributes{
			Strength:     20,
			Dexterity:    7,
			Constitution: 18,
			Intelligence: 14,
			Wisdom:       14,
			Charisma:     8,
		},
		Armor: entities.ArmorParts{
			Natural: 10,
			Uniform: 8,
			Shield:  0,
			Other:   10,
		},
		Pools: entities.Pools{
			HP:           99,
			Energy:       39,
			StoredEnergy: 70,
		},
		Skills: []entities.Skill{
			{Name: "Athletics", Attribute: "Str"},
			{Name: "Fighting", Attribute: "Str"},
			{Name: "Marksmanship", Attribute: "Dex"},
			{Name: "Fortitude", Attribute: "Con"},
			{Name: "Integrity", Attribute: "Con"},
			{Name: "Perception", Attribute: "Wis"},
			{Name: "Will", Attribute: "Wis"},
			{Name: "Cunning", Attribute: "Int"},
			{Name: "Sorcery", Attribute: "Int"},
			{Name: "Smithing", Attribute: "Int"},
			{Name: "Crafting", Attribute: "Int"},
			{Name: "Stealth", Attribute: "Dex"},
			{Name: "Reflexes", Attribute: "Dex"},
			{Name: "Acrobatics", Attribute: "Dex"},
			{Name: "Sleight of Hand", Attribute: "Dex"},
		},
		SkillBonuses: entities.SkillBonuses{
			Mastery: []string{
				"Athletics", "Fighting", "Marksmanship", "Fortitude", "Integrity", "Perception",
				"Will", "Cunning", "Sorcery", "Smithing", "Crafting",
			},
			Specialization: []string{"Fortitude", "Sorcery", "Smithing"},
			Flat: []entities.FlatBonus{
				{Bonus: -6, Skills: []string{"Stealth"}},
				{Bonus: -4, Skills: []string{"Reflexes"}},
				{Bonus: -2, Skills: []string{"Acrobatics", "Sleight of Hand"}},
				{Bonus: 2, Skills: []string{"Fortitude", "Sorcery", "Marksmanship"}},
				{Bonus: 4, Skills: []string{"Athletics", "Fighting"}},
				{Bonus: 6, Skills: []string{"Crafting"}},
				{Bonus: 7, Skills: []string{"Smithing"}},
			},
		},
		SpellcastingSkill: "Sorcery",
	}
}
