package dice

import (
	"math/rand/v2"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// SeededSource is a deterministic toolkit roller. Two sources created with the
// same seed produce the same sequence of rolls.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ toolkitdice.Roller = (*SeededSource)(nil)

// NewSeededSource creates a PCG backed source
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value uniform in [1, size]
func (s *SeededSource) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidField("size", size, "must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.IntN(size) + 1, nil
}

// RollN returns count values uniform in [1, size]
func (s *SeededSource) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidField("count", count, "must not be negative")
	}

	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, v)
	}
	return rolls, nil
}

// NewSeeded creates a Roller over a SeededSource
func NewSeeded(seed uint64) Roller {
	return New(&Config{Source: NewSeededSource(seed)})
}
