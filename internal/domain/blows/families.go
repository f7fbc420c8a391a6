package blows

import (
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// MaxInventoryDamage caps the destruction chance passed on by elemental blows
const MaxInventoryDamage = 300

var elementMessages = map[shared.Element]string{
	shared.ElementAcid: "You are covered in acid!",
	shared.ElementElec: "You are struck by electricity!",
	shared.ElementFire: "You are enveloped in flames!",
	shared.ElementCold: "You are covered with frost!",
}

// elemental deals whichever is larger of armour-reduced and
// resistance-reduced damage. Pure attacks are always obvious and teach the
// attacker about the defender's resistance.
func elemental(c *Context, elem shared.Element, pure bool) {
	if pure {
		c.Obvious = true
	}

	if message, ok := elementMessages[elem]; ok {
		c.msg("%s", message)
	}

	// Elemental blows let armour count for a little more
	physical := AdjustArmor(c.Damage, c.AC+50)
	if !c.Method.Phys {
		physical = 0
	}

	resisted := AdjustElemental(c.Defender.ResistLevel(elem), elem, c.Damage, c.rand())

	c.Damage = max(physical, resisted)

	if resisted > 0 {
		c.Env.Effects.DamageInventory(elem, min(resisted*5, MaxInventoryDamage))
	}
	if c.Damage > 0 {
		c.Defender.TakeHit(c.Damage, c.Desc)
	}

	if pure {
		c.Attacker.Observe(c.Defender, shared.TraitNone, elem, c.rand())
	}
}

// timed hurts the defender then extends a status timer, unless an optional
// saving throw succeeds.
func timed(c *Context, kind conditions.ConditionType, amount int, trait shared.Trait, save bool, saveMsg string) {
	if !c.hurt() {
		return
	}

	if save && SavingThrow(c.rand(), c.Defender.SaveSkill()) {
		if saveMsg != "" {
			c.msg("%s", saveMsg)
		}
		c.Obvious = true
	} else if c.Defender.IncTimed(kind, amount) {
		c.Obvious = true
	}

	c.Attacker.Observe(c.Defender, trait, shared.ElementNone, c.rand())
}

// drainStats hurts the defender then drains each stat in order
func drainStats(c *Context, stats ...shared.Stat) {
	if !c.hurt() {
		return
	}

	for _, stat := range stats {
		if c.Env.Effects.DrainStat(stat) {
			c.Obvious = true
		}
	}
}

// drainExperience hurts the defender then removes experience. Hold life
// blocks the drain with the given percent chance and otherwise cuts it to
// a tenth.
func drainExperience(c *Context, chance, amount int) {
	c.Obvious = true

	alive := c.hurt()
	c.Attacker.Observe(c.Defender, shared.TraitHoldLife, shared.ElementNone, c.rand())
	if !alive {
		return
	}

	holdLife := c.Defender.HasTrait(shared.TraitHoldLife)
	if holdLife && c.rand().Intn(100) < chance {
		c.msg("You keep hold of your life force!")
		return
	}

	drain := amount + (c.Defender.Experience()/100)*c.Env.LifeDrainPercent
	if holdLife {
		c.msg("You feel your life slipping away!")
		c.Defender.LoseExperience(drain/10, false)
		return
	}

	c.msg("You feel your life draining away!")
	c.Defender.LoseExperience(drain, false)
}
