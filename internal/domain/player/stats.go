package player

import "github.com/KirkDiggler/dungeon-melee/internal/domain/shared"

// Stat values run from 3 to 18, then 18/10 steps up to 18/220, stored as
// 18 plus the percentile part.
const (
	StatMin     = 3
	Stat18      = 18
	StatMaximum = Stat18 + 220
)

// adjDexSafe is the bonus to protecting gold and items from thieves,
// indexed by StatIndex of dexterity.
var adjDexSafe = [...]int{
	0, 1, 2, 3, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, // 3..17
	10, 10, 15, 15, 20, 25, 30, 35, 40, 45, // 18/00..18/99
	50, 60, 70, 80, 90, 100, 100, 100, 100, 100, 100, 100, // 18/100..18/219
	100, // 18/220+
}

// StatIndex converts a stat value into a table index
func StatIndex(value int) int {
	switch {
	case value < StatMin:
		return 0
	case value <= Stat18:
		return value - StatMin
	case value <= Stat18+219:
		return 15 + (value-Stat18)/10
	default:
		return len(adjDexSafe) - 1
	}
}

// Stat returns the current value of a stat
func (p *Player) Stat(s shared.Stat) int {
	return p.StatCur[s]
}

// DexSafety is the dexterity bonus to keeping hold of gold and items
func (p *Player) DexSafety() int {
	return adjDexSafe[StatIndex(p.StatCur[shared.StatDex])]
}

// DecreaseStat temporarily lowers a stat by one step. It returns false when
// the stat is already at its minimum.
func (p *Player) DecreaseStat(s shared.Stat) bool {
	cur := p.StatCur[s]
	next := cur

	switch {
	case cur > Stat18+10:
		next = cur - 10
	case cur > Stat18:
		next = Stat18
	case cur > StatMin:
		next = cur - 1
	}

	if next == cur {
		return false
	}
	p.StatCur[s] = next
	p.redraw |= shared.RedrawStats
	return true
}
