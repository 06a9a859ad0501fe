package entities

// Attribute names one of the six character attributes
type Attribute string

// Attributes
const (
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeConstitution Attribute = "constitution"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

// AllAttributes lists the attributes in sheet order
var AllAttributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// Character is the read-only record of the single character on the sheet.
// It is fixed when the sheet is loaded and never mutated during a session.
type Character struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`

	Attributes Attributes `yaml:"attributes" json:"attributes"`
	Armor      ArmorParts `yaml:"armor" json:"armor"`
	Pools      Pools      `yaml:"pools" json:"pools"`

	// Skills is the already-parsed skills table (name and governing attribute label)
	Skills       []Skill      `yaml:"skills" json:"skills"`
	SkillBonuses SkillBonuses `yaml:"skill_bonuses" json:"skill_bonuses"`

	// SpellcastingSkill is the skill whose total is the attack bonus of blood techniques
	SpellcastingSkill string `yaml:"spellcasting_skill" json:"spellcasting_skill"`
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return "character"
}

// Attributes holds the six attribute scores
type Attributes struct {
	Strength     int `yaml:"strength" json:"strength"`
	Dexterity    int `yaml:"dexterity" json:"dexterity"`
	Constitution int `yaml:"constitution" json:"constitution"`
	Intelligence int `yaml:"intelligence" json:"intelligence"`
	Wisdom       int `yaml:"wisdom" json:"wisdom"`
	Charisma     int `yaml:"charisma" json:"charisma"`
}

// Score returns the score for attr
func (a Attributes) Score(attr Attribute) (int, bool) {
	switch attr {
	case AttributeStrength:
		return a.Strength, true
	case AttributeDexterity:
		return a.Dexterity, true
	case AttributeConstitution:
		return a.Constitution, true
	case AttributeIntelligence:
		return a.Intelligence, true
	case AttributeWisdom:
		return a.Wisdom, true
	case AttributeCharisma:
		return a.Charisma, true
	default:
		return 0, false
	}
}

// ArmorParts are the additive pieces of the base armor class
type ArmorParts struct {
	Natural int `yaml:"natural" json:"natural"`
	Uniform int `yaml:"uniform" json:"uniform"`
	Shield  int `yaml:"shield" json:"shield"`
	Other   int `yaml:"other" json:"other"`
}

// Pools are the maximum values of the character's resource pools
type Pools struct {
	HP           int `yaml:"hp" json:"hp"`
	Energy       int `yaml:"energy" json:"energy"`
	StoredEnergy int `yaml:"stored_energy" json:"stored_energy"`
}

// Skill is one row of the skills table
type Skill struct {
	Name string `yaml:"name" json:"name"`
	// Attribute is the governing attribute label as written in the table ("For", "DEX", "Wisdom"...)
	Attribute string `yaml:"attribute" json:"attribute"`
}

// SkillBonuses is the fixed rule set of skill memberships
type SkillBonuses struct {
	Mastery        []string    `yaml:"mastery" json:"mastery"`
	Specialization []string    `yaml:"specialization" json:"specialization"`
	Flat           []FlatBonus `yaml:"flat" json:"flat"`
}

// FlatBonus is a signed adjustment applied to every skill listed in Skills
type FlatBonus struct {
	Bonus  int      `yaml:"bonus" json:"bonus"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Resources are the current values of the character's pools in a session
type Resources struct {
	HP           int `json:"hp"`
	Energy       int `json:"energy"`
	StoredEnergy int `json:"stored_energy"`
}

// FullResources returns pools at their maximum, the state of a fresh session
func (c *Character) FullResources() Resources {
	return Resources{
		HP:           c.Pools.HP,
		Energy:       c.Pools.Energy,
		StoredEnergy: c.Pools.StoredEnergy,
	}
}
