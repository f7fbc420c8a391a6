package blows

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// MaxArmorEffect is the armour class beyond which armour stops helping
const MaxArmorEffect = 240

// AdjustArmor reduces damage by armour. Armour absorbs up to 60% of a blow.
func AdjustArmor(damage, ac int) int {
	if ac > MaxArmorEffect {
		ac = MaxArmorEffect
	}
	if ac < 0 {
		ac = 0
	}
	reduced := damage - damage*ac/400
	if reduced < 0 {
		return 0
	}
	return reduced
}

// AdjustElemental scales damage by the defender's resistance to an element.
// Immunity blocks all of it and vulnerability adds a third. Resistance cuts
// the base elements and poison to a third, anything else to between 6/7 and
// 1/2 of the damage at random.
func AdjustElemental(resistLevel int, elem shared.Element, damage int, rng dice.Source) int {
	if damage <= 0 {
		return 0
	}

	switch {
	case resistLevel >= shared.ResistImmune:
		return 0
	case resistLevel < 0:
		return damage * 4 / 3
	case resistLevel >= shared.ResistResists:
		if elem.IsBase() {
			return damage / 3
		}
		return damage * 6 / (dice.RandInt1(rng, 6) + 6)
	}
	return damage
}

// SavingThrow rolls percentile dice against skill
func SavingThrow(rng dice.Source, skill int) bool {
	return dice.RandInt0(rng, 100) < skill
}
