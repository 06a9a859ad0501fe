// Package dice rolls the sheet's dice on top of an rpg-toolkit roller
package dice

import (
	"fmt"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// D20 is the faces of the to-hit and skill die
const D20 = 20

// minEnhancedFace is the lowest value an enhanced healing die can show
const minEnhancedFace = 3

// Roller draws batches of dice. Draws happen in call order so a seeded
// source reproduces the same sequence.
type Roller interface {
	// Roll returns count values uniform in [1, faces]
	Roll(faces, count int) ([]int, error)

	// RollMin3 returns count values uniform in [3, faces]
	RollMin3(faces, count int) ([]int, error)

	// D20 rolls a single twenty-sided die
	D20() (int, error)
}

// Config configures a Roller
type Config struct {
	// Source is the underlying toolkit roller, defaults to dice.DefaultRoller
	Source toolkitdice.Roller
}

type roller struct {
	source toolkitdice.Roller
}

// New creates a Roller backed by cfg.Source
func New(cfg *Config) Roller {
	var source toolkitdice.Roller
	if cfg != nil {
		source = cfg.Source
	}
	if source == nil {
		source = toolkitdice.DefaultRoller
	}

	return &roller{source: source}
}

func (r *roller) Roll(faces, count int) ([]int, error) {
	if err := validate(faces, 1, count); err != nil {
		return nil, err
	}

	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.source.Roll(faces)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll d%d", faces)
		}
		rolls = append(rolls, v)
	}

	return rolls, nil
}

func (r *roller) RollMin3(faces, count int) ([]int, error) {
	if err := validate(faces, minEnhancedFace, count); err != nil {
		return nil, err
	}

	// Shift a d(faces-2) up by two so 1 maps to 3 and faces-2 maps to faces.
	span := faces - minEnhancedFace + 1
	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.source.Roll(span)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll enhanced d%d", faces)
		}
		rolls = append(rolls, v+minEnhancedFace-1)
	}

	return rolls, nil
}

func (r *roller) D20() (int, error) {
	rolls, err := r.Roll(D20, 1)
	if err != nil {
		return 0, err
	}
	return rolls[0], nil
}

func validate(faces, minFaces, count int) error {
	if faces < minFaces {
		return errors.InvalidField("faces", faces, fmt.Sprintf("must be at least %d", minFaces))
	}
	if count < 0 {
		return errors.InvalidField("count", count, "must not be negative")
	}
	return nil
}
