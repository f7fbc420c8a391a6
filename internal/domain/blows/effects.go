package blows

//go:generate mockgen -destination=mock/mock_effects.go -package=mockblows -source=effects.go

import "github.com/KirkDiggler/dungeon-melee/internal/domain/shared"

// Effects are the general-purpose effects blows borrow. Each returns
// whether the player noticed anything.
type Effects interface {
	DrainStat(stat shared.Stat) bool
	Disenchant() bool
	DrainLight(turns int) bool
	Earthquake(center shared.Point, radius int)
	DamageInventory(elem shared.Element, perc int) int
}

type noEffects struct{}

func (noEffects) DrainStat(shared.Stat) bool              { return false }
func (noEffects) Disenchant() bool                        { return false }
func (noEffects) DrainLight(int) bool                     { return false }
func (noEffects) Earthquake(shared.Point, int)            {}
func (noEffects) DamageInventory(shared.Element, int) int { return 0 }
