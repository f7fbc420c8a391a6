package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller on top of math/rand
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Intn implements Source.Intn
func (r *randomRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return Roll(r, count, sides, bonus)
}
