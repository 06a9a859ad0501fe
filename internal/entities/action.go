package entities

import "fmt"

// AbilityID identifies an invocable ability
type AbilityID string

// Weapon abilities
const (
	AbilityArmedAttack     AbilityID = "armed_attack"
	AbilitySilentExecution AbilityID = "silent_execution"
	AbilityHiddenCut       AbilityID = "hidden_cut"
	AbilityHiddenCutRitual AbilityID = "hidden_cut_ritual"
)

// Blood techniques
const (
	AbilityConvergence          AbilityID = "convergence"
	AbilityPiercingBlood        AbilityID = "piercing_blood"
	AbilityBloodPool            AbilityID = "blood_pool"
	AbilityBloodPoolPersistence AbilityID = "blood_pool_persistence"
	AbilityBloodWhirlwind       AbilityID = "blood_whirlwind"
	AbilityBleeding             AbilityID = "bleeding"
)

// WeaponID identifies an entry of the weapon catalog
type WeaponID string

// Stance is the selected combat stance
type Stance string

// Stances
const (
	StanceNone Stance = "none"
	StanceSun  Stance = "sun"
)

// Hidden style ranks
const (
	MinStyleRank = 0
	MaxStyleRank = 10
)

// StyleRankLabel returns the display label for a hidden style rank ("None", "3rd Flow")
func StyleRankLabel(rank int) string {
	if rank <= 0 {
		return "None"
	}

	suffix := "th"
	switch rank {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s Flow", rank, suffix)
}

// ActionContext is the player's current situational choices for one interaction
type ActionContext struct {
	Weapon    WeaponID `json:"weapon"`
	Stance    Stance   `json:"stance"`
	StyleRank int      `json:"style_rank"`

	// DescendingStrike raises armor class by the mastery bonus
	DescendingStrike bool `json:"descending_strike"`
	// ExtraArmor is a free armor class adjustment typed by the player
	ExtraArmor int `json:"extra_armor"`
}

// DiceSpec is a batch of same-sided dice
type DiceSpec struct {
	Faces int `json:"faces"`
	Count int `json:"count"`
}

// String renders the dice in NdF notation
func (d DiceSpec) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Faces)
}

// Bonus is a flat adjustment and where it came from
type Bonus struct {
	Source string `json:"source"`
	Value  int    `json:"value"`
}

// Primary labels
const (
	PrimaryLabelDamage = "Damage"
	PrimaryLabelResult = "Result"
)

// Record is the resolved outcome of one ability invocation or skill check.
// It is built once by the engine and treated as immutable afterwards.
type Record struct {
	Ability     string   `json:"ability"`
	Range       string   `json:"range,omitempty"`
	Description string   `json:"description,omitempty"`
	Notes       []string `json:"notes,omitempty"`

	HasAttack     bool    `json:"has_attack"`
	AttackRoll    int     `json:"attack_roll,omitempty"`
	AttackTotal   int     `json:"attack_total,omitempty"`
	AttackBonuses []Bonus `json:"attack_bonuses,omitempty"`
	IsCritical    bool    `json:"is_critical"`

	DamageRolls   []int    `json:"damage_rolls"`
	DamageTotal   int      `json:"damage_total"`
	DamageBonuses []Bonus  `json:"damage_bonuses,omitempty"`
	ExtraDice     []string `json:"extra_dice,omitempty"`

	PrimaryLabel string `json:"primary_label"`
	PrimaryValue int    `json:"primary_value"`

	Weapon    WeaponID `json:"weapon,omitempty"`
	Stance    Stance   `json:"stance,omitempty"`
	StyleRank int      `json:"style_rank"`

	SaveDC int `json:"save_dc,omitempty"`
	Cost   int `json:"cost,omitempty"`
}

// DeclaredFlatDamage is the sum of every flat damage bonus on the record.
// DamageTotal always equals the sum of DamageRolls plus this value.
func (r *Record) DeclaredFlatDamage() int {
	total := 0
	for _, b := range r.DamageBonuses {
		total += b.Value
	}
	return total
}

// SkillCheck is the outcome of rolling a skill
type SkillCheck struct {
	Label    string `json:"label"`
	Skill    string `json:"skill"`
	Roll     int    `json:"roll"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
}

// Record converts the check to the shared record shape used by history
func (s *SkillCheck) Record() *Record {
	return &Record{
		Ability:     s.Label,
		HasAttack:   true,
		AttackRoll:  s.Roll,
		AttackTotal: s.Total,
		AttackBonuses: []Bonus{
			{Source: s.Skill, Value: s.Modifier},
		},
		DamageRolls:  []int{},
		PrimaryLabel: PrimaryLabelResult,
		PrimaryValue: s.Total,
	}
}
