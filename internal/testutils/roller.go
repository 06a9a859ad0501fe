package testutils

import (
	"fmt"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a toolkit dice roller that returns a fixed sequence of values.
// Each Roll consumes the next value; running out of values or scripting a value
// larger than the requested die is an error.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

var _ toolkitdice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted rolling d%d", size)
	}
	v := r.values[0]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted value %d does not fit d%d", v, size)
	}
	r.values = r.values[1:]
	r.sizes = append(r.sizes, size)
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, v)
	}
	return rolls, nil
}

// Remaining returns how many scripted values were not consumed
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Sizes returns the die sizes requested so far, in order
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}
