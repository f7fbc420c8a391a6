package player

import (
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// MaxLevel is the highest character level
const MaxLevel = 50

// expTable is the base experience needed to reach level n+2
var expTable = [MaxLevel]int{
	10, 25, 45, 70, 100, 140, 200, 280, 380, 500,
	650, 850, 1100, 1400, 1800, 2300, 2900, 3600, 4400, 5400,
	6800, 8400, 10200, 12500, 17500, 25000, 35000, 50000, 75000, 100000,
	150000, 200000, 275000, 350000, 450000, 550000, 700000, 850000, 1000000, 1250000,
	1500000, 1800000, 2100000, 2400000, 2700000, 3000000, 3500000, 4000000, 4500000, 5000000,
}

// ExpToReach returns the experience needed to reach level with the given
// experience factor
func ExpToReach(level, expFactor int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return expTable[level-2] * expFactor / 100
}

// LevelFor returns the character level earned by exp
func LevelFor(exp, expFactor int) int {
	level := 1
	for level < MaxLevel && exp >= ExpToReach(level+1, expFactor) {
		level++
	}
	return level
}

// Experience returns current experience
func (p *Player) Experience() int {
	return p.Exp
}

// GainExperience adds experience and raises the level if earned
func (p *Player) GainExperience(amount int) {
	if amount <= 0 {
		return
	}
	p.Exp += amount
	if p.Exp > p.MaxExp {
		p.MaxExp = p.Exp
	}
	p.checkExperience()
}

// LoseExperience removes experience, never below zero. Permanent loss also
// lowers the maximum.
func (p *Player) LoseExperience(amount int, permanent bool) {
	if amount <= 0 {
		return
	}
	if amount > p.Exp {
		amount = p.Exp
	}
	p.Exp -= amount
	if permanent {
		p.MaxExp -= amount
	}
	p.checkExperience()
}

func (p *Player) checkExperience() {
	if p.Exp < 0 {
		p.Exp = 0
	}
	if p.MaxExp < 0 {
		p.MaxExp = 0
	}
	if p.Exp > p.MaxExp {
		p.MaxExp = p.Exp
	}
	p.redraw |= shared.RedrawExp

	for p.CharLevel > 1 && p.Exp < ExpToReach(p.CharLevel, p.ExpFactor) {
		p.CharLevel--
		p.redraw |= shared.RedrawStats
	}

	for p.CharLevel < MaxLevel && p.Exp >= ExpToReach(p.CharLevel+1, p.ExpFactor) {
		p.CharLevel++
		if p.CharLevel > p.MaxCharLevel {
			p.MaxCharLevel = p.CharLevel
			p.Msg("Welcome to level %d.", p.CharLevel)
		}
		p.redraw |= shared.RedrawStats
	}
}
