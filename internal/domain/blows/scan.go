package blows

import "github.com/KirkDiggler/dungeon-melee/internal/dice"

// PackTries is how many random slots a thief checks before giving up
const PackTries = 10

// ScanPack samples up to tries distinct slots from [0, size) in random order
// and returns the first one eligible accepts.
func ScanPack(rng dice.Source, size, tries int, eligible func(index int) bool) (int, bool) {
	if size <= 0 || tries <= 0 {
		return -1, false
	}

	candidates := make([]int, size)
	for i := range candidates {
		candidates[i] = i
	}

	for i := 0; i < tries && i < size; i++ {
		j := i + dice.RandInt0(rng, size-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		if eligible(candidates[i]) {
			return candidates[i], true
		}
	}
	return -1, false
}
