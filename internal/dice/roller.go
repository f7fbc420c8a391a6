package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Source is the raw randomness provider used by the combat code.
type Source interface {
	// Intn returns a value in [0, n). Implementations return 0 when n <= 0.
	Intn(n int) int
}

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	Source

	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}
