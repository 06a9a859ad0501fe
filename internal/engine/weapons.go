package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Weapon is one entry of the weapon catalog
type Weapon struct {
	ID                entities.WeaponID
	Name              string
	Range             string
	AttackBonus       int
	Damage            entities.DiceSpec
	CriticalDamage    entities.DiceSpec
	CriticalThreshold int // compared against the raw d20
	FlatDamage        int
	NormalText        string
	CriticalText      string

	// ExtraDieFaces is the die added by effects granting "one more die of
	// this weapon". Zero means unknown.
	ExtraDieFaces int
}

// Weapon IDs
const (
	WeaponHookSword      entities.WeaponID = "hook_sword"
	WeaponDoubleSword    entities.WeaponID = "double_sword"
	WeaponColossalSword  entities.WeaponID = "colossal_sword"
	WeaponHeavyNunchaku  entities.WeaponID = "heavy_nunchaku"
	WeaponGreatSpear     entities.WeaponID = "great_spear"
	WeaponGreatAxe       entities.WeaponID = "great_axe"
	WeaponGreatScythe    entities.WeaponID = "great_scythe"
	WeaponKnuckles       entities.WeaponID = "knuckles"
	WeaponDaggerSchool   entities.WeaponID = "dagger_school"
	WeaponParryingDagger entities.WeaponID = "parrying_dagger"
)

const (
	weaponFlatDamage = 12
	weaponRange      = "Personal"
)

// DefaultWeapons returns Shoji's arsenal
func DefaultWeapons() []*Weapon {
	weapons := []*Weapon{
		{
			ID: WeaponHookSword, Name: "Hook Sword (G4)",
			AttackBonus: 18, CriticalThreshold: 19,
			Damage: d(1, 8), CriticalDamage: d(6, 8), ExtraDieFaces: 8,
			NormalText:   "Take the hook",
			CriticalText: "A bandit's hook, straight to the face",
		},
		{
			ID: WeaponDoubleSword, Name: "Double Sword",
			AttackBonus: 19, CriticalThreshold: 19,
			Damage: d(3, 6), CriticalDamage: d(10, 6), ExtraDieFaces: 8,
			NormalText:   "Want two? Then take them.",
			CriticalText: "Want two? Then take them, hard",
		},
		{
			ID: WeaponColossalSword, Name: "Colossal Sword",
			AttackBonus: 18, CriticalThreshold: 20,
			Damage: d(3, 8), CriticalDamage: d(10, 8), ExtraDieFaces: 12,
			NormalText:   "Behold the colossal blade",
			CriticalText: "The colossus comes down",
		},
		{
			ID: WeaponHeavyNunchaku, Name: "Heavy Nunchaku",
			AttackBonus: 16, CriticalThreshold: 19,
			Damage: d(3, 8), CriticalDamage: d(10, 8), ExtraDieFaces: 6,
			NormalText:   "Eastern style cudgel",
			CriticalText: "A riot baton swung with intent",
		},
		{
			ID: WeaponGreatSpear, Name: "Great Spear",
			AttackBonus: 16, CriticalThreshold: 20,
			Damage: d(3, 8), CriticalDamage: d(10, 8), ExtraDieFaces: 10,
			NormalText:   "A long thrust",
			CriticalText: "Run clean through",
		},
		{
			ID: WeaponGreatAxe, Name: "Great Axe",
			AttackBonus: 16, CriticalThreshold: 20,
			Damage: d(3, 6), CriticalDamage: d(10, 8), ExtraDieFaces: 12,
			NormalText:   "Take the axe",
			CriticalText: "A mighty axe blow",
		},
		{
			ID: WeaponGreatScythe, Name: "Great Scythe (sharpened)",
			AttackBonus: 16, CriticalThreshold: 20,
			Damage: d(3, 10), CriticalDamage: d(10, 10), ExtraDieFaces: 10,
			NormalText:   "Take the scythe",
			CriticalText: "A mighty scythe sweep",
		},
		{
			ID: WeaponKnuckles, Name: "Knuckle Duster (bonus action, TP 6m, 1 EP)",
			AttackBonus: 16, CriticalThreshold: 20,
			Damage: d(3, 6), CriticalDamage: d(10, 8), ExtraDieFaces: 4,
			NormalText:   "Take a punch",
			CriticalText: "A mighty punch",
		},
		{
			ID: WeaponDaggerSchool, Name: "School of Daggers (G3)",
			AttackBonus: 16, CriticalThreshold: 19,
			Damage: d(1, 4), CriticalDamage: d(6, 4), ExtraDieFaces: 4,
			NormalText:   "A flurry of daggers",
			CriticalText: "A school of daggers sinks in deep",
		},
		{
			ID: WeaponParryingDagger, Name: "Parrying Dagger",
			AttackBonus: 16, CriticalThreshold: 19,
			Damage: d(1, 4), CriticalDamage: d(6, 4), ExtraDieFaces: 4,
			NormalText:   "A flurry of daggers",
			CriticalText: "A school of daggers sinks in deep",
		},
	}

	for _, w := range weapons {
		w.Range = weaponRange
		w.FlatDamage = weaponFlatDamage
	}
	return weapons
}

func d(count, faces int) entities.DiceSpec {
	return entities.DiceSpec{Faces: faces, Count: count}
}

// Catalog is an ordered, read-only weapon registry
type Catalog struct {
	weapons []*Weapon
	byID    map[entities.WeaponID]*Weapon
}

// NewCatalog validates weapons and indexes them by ID
func NewCatalog(weapons []*Weapon) (*Catalog, error) {
	if len(weapons) == 0 {
		return nil, errors.InvalidArgument("at least one weapon is required")
	}

	c := &Catalog{byID: make(map[entities.WeaponID]*Weapon, len(weapons))}
	for _, w := range weapons {
		if err := validateWeapon(w); err != nil {
			return nil, err
		}
		if _, exists := c.byID[w.ID]; exists {
			return nil, errors.InvalidField("weapon", w.ID, "duplicate weapon id")
		}

		weapon := *w
		c.weapons = append(c.weapons, &weapon)
		c.byID[weapon.ID] = &weapon
	}
	return c, nil
}

func validateWeapon(w *Weapon) error {
	if w == nil {
		return errors.InvalidArgument("weapon cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", string(w.ID), vb)
	errors.ValidateRequired("name", w.Name, vb)
	errors.ValidateRange("critical_threshold", w.CriticalThreshold, 1, dice.D20, vb)
	errors.ValidateMin("damage.faces", w.Damage.Faces, 1, vb)
	errors.ValidateMin("damage.count", w.Damage.Count, 0, vb)
	errors.ValidateMin("critical_damage.faces", w.CriticalDamage.Faces, 1, vb)
	errors.ValidateMin("critical_damage.count", w.CriticalDamage.Count, 0, vb)
	errors.ValidateMin("extra_die_faces", w.ExtraDieFaces, 0, vb)
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid weapon %q", w.ID)
	}
	return nil
}

// Get returns the weapon with id
func (c *Catalog) Get(id entities.WeaponID) (*Weapon, error) {
	w, ok := c.byID[id]
	if !ok {
		return nil, errors.InvalidField("weapon", string(id), "unknown weapon")
	}
	return w, nil
}

// List returns the weapons in catalog order
func (c *Catalog) List() []*Weapon {
	return append([]*Weapon(nil), c.weapons...)
}

// BaseAttack is the outcome of a plain weapon attack
type BaseAttack struct {
	AttackRoll  int
	AttackTotal int
	IsCritical  bool
	DamageRolls []int
	DamageTotal int
	Flavor      string
}

// ResolveBaseAttack rolls the to-hit d20, then the normal or critical damage batch.
// A critical is decided on the raw d20 alone.
func ResolveBaseAttack(roller dice.Roller, w *Weapon) (*BaseAttack, error) {
	d20, err := roller.D20()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll to hit")
	}

	critical := d20 >= w.CriticalThreshold
	damage, flavor := w.Damage, w.NormalText
	if critical {
		damage, flavor = w.CriticalDamage, w.CriticalText
	}

	rolls, err := roller.Roll(damage.Faces, damage.Count)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s damage", damage)
	}

	return &BaseAttack{
		AttackRoll:  d20,
		AttackTotal: d20 + w.AttackBonus,
		IsCritical:  critical,
		DamageRolls: rolls,
		DamageTotal: sum(rolls) + w.FlatDamage,
		Flavor:      flavor,
	}, nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
