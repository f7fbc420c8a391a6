package blows

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// Light drain is LightDrainBase plus 1d(LightDrainBase) turns of fuel
const LightDrainBase = 250

// StealAmount is how much gold a thief takes from a purse of au coins.
// The result never exceeds au.
func StealAmount(rng dice.Source, au int) int {
	gold := au/10 + dice.RandInt1(rng, 25)
	if gold < 2 {
		gold = 2
	}
	if gold > 5000 {
		gold = au/20 + dice.RandInt1(rng, 3000)
	}
	if gold > au {
		gold = au
	}
	return gold
}

// thiefFoiled is the dexterity and level based save against theft. A
// paralyzed defender never gets one.
func thiefFoiled(c *Context) bool {
	if c.Defender.TimedActive(conditions.Paralyzed) {
		return false
	}
	return dice.RandInt0(c.rand(), 100) < c.Defender.DexSafety()+c.Defender.Level()
}

func eatGold(c *Context) {
	if !c.hurt() {
		return
	}

	c.Obvious = true

	if thiefFoiled(c) {
		c.msg("You quickly protect your money pouch!")
		if dice.RandInt0(c.rand(), 3) != 0 {
			c.Blinked = true
		}
		return
	}

	gold := StealAmount(c.rand(), c.Defender.Gold())
	c.Defender.SpendGold(gold)
	// An empty purse gets here with nothing taken
	if gold <= 0 {
		c.msg("Nothing was stolen.")
		return
	}

	c.msg("Your purse feels lighter.")
	if c.Defender.Gold() > 0 {
		c.msg("%d coins were stolen!", gold)
	} else {
		c.msg("All of your coins were stolen!")
	}

	for _, pile := range c.Env.Objects.Money(gold, objects.OriginStolen, c.Defender.Depth()) {
		c.Attacker.Carry(pile)
	}

	c.Defender.Redraw(shared.RedrawGold)
	c.Blinked = true
}

func eatItem(c *Context) {
	if !c.hurt() {
		return
	}

	if thiefFoiled(c) {
		c.msg("You grab hold of your backpack!")
		c.Blinked = true
		c.Obvious = true
		return
	}

	index, ok := ScanPack(c.rand(), c.Defender.PackSize(), PackTries, func(i int) bool {
		obj := c.Defender.PackSlot(i)
		return obj != nil && !obj.Artifact
	})
	if !ok {
		return
	}

	obj := c.Defender.PackSlot(index)
	owner := "Your"
	if obj.Number > 1 {
		owner = "One of your"
	}
	c.msg("%s %s (%c) was stolen!", owner, obj.Describe(objects.DescBase|objects.DescExtra), shared.IndexLabel(index))

	stolen := c.Env.Objects.Assign(c.Defender.TakeFromSlot(index, 1))
	c.Attacker.Carry(stolen)

	c.Obvious = true
	c.Blinked = true
}

func eatFood(c *Context) {
	if !c.hurt() {
		return
	}

	index, ok := ScanPack(c.rand(), c.Defender.PackSize(), PackTries, func(i int) bool {
		obj := c.Defender.PackSlot(i)
		return obj != nil && obj.IsEdible() && !obj.Artifact
	})
	if !ok {
		return
	}

	obj := c.Defender.PackSlot(index)
	if obj.Number == 1 {
		c.msg("Your %s (%c) was eaten!", obj.Describe(objects.DescBase), shared.IndexLabel(index))
	} else {
		c.msg("One of your %s (%c) was eaten!", obj.Describe(objects.DescPrefix|objects.DescBase), shared.IndexLabel(index))
	}

	// Eaten food is gone, not carried off
	_ = c.Defender.TakeFromSlot(index, 1)

	c.Obvious = true
}

func eatLight(c *Context) {
	if !c.hurt() {
		return
	}

	turns := LightDrainBase + dice.RandInt1(c.rand(), LightDrainBase)
	if c.Env.Effects.DrainLight(turns) {
		c.Obvious = true
	}
}

func drainCharges(c *Context) {
	if !c.hurt() {
		return
	}

	index, ok := ScanPack(c.rand(), c.Defender.PackSize(), PackTries, func(i int) bool {
		obj := c.Defender.PackSlot(i)
		return obj != nil && obj.CanHaveCharges() && obj.Pval > 0
	})
	if !ok {
		return
	}

	obj := c.Defender.PackSlot(index)
	unpower := c.Rlev/(obj.Kind.Level+2) + 1
	obj.Pval = max(obj.Pval-unpower, 0)

	c.msg("Energy drains from your pack!")
	c.Obvious = true

	heal := min(c.Rlev*unpower, c.Attacker.MaxHP()-c.Attacker.HP())
	c.Attacker.Heal(heal)

	if c.Defender.TracksHealthOf(c.Attacker.ID()) {
		c.Defender.Redraw(shared.RedrawHealth)
	}
	c.Defender.Redraw(shared.NoticeCombine | shared.RedrawInven)
}
