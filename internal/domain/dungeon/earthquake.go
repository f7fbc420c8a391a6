package dungeon

import (
	"log"

	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// MaxEarthquakeRadius bounds the area an earthquake can reach
const MaxEarthquakeRadius = 15

// CrushDamage is dealt to a victim with nowhere to dodge
const CrushDamage = 300

// Victim is whoever stands in the way of an earthquake
type Victim interface {
	Position() shared.Point
	MoveTo(p shared.Point)
	TakeHit(amount int, killer string)
}

// neighbours in the order they are tried when dodging
var neighbours = [8]shared.Point{
	{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
}

// Earthquake shatters roughly 15% of the grids within radius of center.
// If the victim's grid is hit they dodge to a safe neighbouring grid, or
// are crushed when none exists. It returns the number of grids changed.
func (l *Level) Earthquake(center shared.Point, radius int, rng dice.Source, victim Victim, msgs shared.Messenger) int {
	if radius > MaxEarthquakeRadius {
		radius = MaxEarthquakeRadius
	}
	if msgs == nil {
		msgs = shared.Discard
	}

	quaked := make(map[shared.Point]bool)
	var order []shared.Point
	hurt := false

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			grid := shared.Point{X: center.X + dx, Y: center.Y + dy}
			if !l.InBoundsFully(grid) {
				continue
			}
			if shared.Distance(center, grid) > radius {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			if rng.Intn(100) < 85 {
				continue
			}

			quaked[grid] = true
			order = append(order, grid)
			if victim != nil && victim.Position() == grid {
				hurt = true
			}
		}
	}

	if hurt {
		l.shakeVictim(rng, victim, msgs, quaked)
	}

	changed := 0
	for _, grid := range order {
		if victim != nil && victim.Position() == grid {
			continue
		}
		if _, occupied := l.monsters[grid]; occupied {
			continue
		}
		if l.Feature(grid) == FeatPermanent {
			continue
		}

		switch t := rng.Intn(100); {
		case t < 20:
			l.SetFeature(grid, FeatGranite)
		case t < 70:
			l.SetFeature(grid, FeatQuartz)
		default:
			l.SetFeature(grid, FeatMagma)
		}
		changed++
	}

	log.Printf("[DUNGEON] Earthquake at (%d,%d) radius %d on depth %d changed %d grids",
		center.X, center.Y, radius, l.Depth, changed)

	return changed
}

func (l *Level) shakeVictim(rng dice.Source, victim Victim, msgs shared.Messenger, quaked map[shared.Point]bool) {
	pos := victim.Position()

	safe := 0
	var refuge shared.Point
	for _, d := range neighbours {
		grid := shared.Point{X: pos.X + d.X, Y: pos.Y + d.Y}
		if !l.IsOpen(grid) {
			continue
		}
		if quaked[grid] {
			continue
		}
		safe++
		if safe > 1 && rng.Intn(safe) != 0 {
			continue
		}
		refuge = grid
	}

	switch dice.RandInt1(rng, 3) {
	case 1:
		msgs.Msg("The cave ceiling collapses!")
	case 2:
		msgs.Msg("The cave floor twists in an unnatural way!")
	default:
		msgs.Msg("The cave quakes!  You are pummeled with debris!")
	}

	damage := 0
	if safe == 0 {
		msgs.Msg("You are severely crushed!")
		damage = CrushDamage
	} else {
		switch dice.RandInt1(rng, 3) {
		case 1:
			msgs.Msg("You nimbly dodge the blast!")
		case 2:
			msgs.Msg("You are bashed by rubble!")
			damage = dice.Damroll(rng, 10, 4)
		default:
			msgs.Msg("You are crushed between the floor and ceiling!")
			damage = dice.Damroll(rng, 10, 4)
		}
		victim.MoveTo(refuge)
	}

	if damage > 0 {
		victim.TakeHit(damage, "an earthquake")
	}
}
