package blows

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

const (
	// ShatterThreshold is the damage a SHATTER blow must exceed to quake
	ShatterThreshold = 23
	// ShatterRadius is the size of the earthquake around the attacker
	ShatterRadius = 8
)

// Handler resolves one effect against a blow's Context
type Handler func(c *Context)

func handleNone(c *Context) {
	c.Obvious = true
	c.Damage = 0
}

func handleHurt(c *Context) {
	c.Obvious = true
	c.Damage = AdjustArmor(c.Damage, c.AC)
	c.Defender.TakeHit(c.Damage, c.Desc)
}

// handlePoison is an elemental attack with a poison timer on top, so it is
// never treated as pure.
func handlePoison(c *Context) {
	elemental(c, shared.ElementPoison, false)
	if c.Defender.IsDead() {
		return
	}

	if c.Defender.IncTimed(conditions.Poisoned, 5+dice.RandInt1(c.rand(), c.Rlev)) {
		c.Obvious = true
	}

	c.Attacker.Observe(c.Defender, shared.TraitNone, shared.ElementPoison, c.rand())
}

func handleDisenchant(c *Context) {
	if !c.hurt() {
		return
	}

	if c.Defender.ResistLevel(shared.ElementDisenchant) < shared.ResistResists {
		if c.Env.Effects.Disenchant() {
			c.Obvious = true
		}
	}

	c.Attacker.Observe(c.Defender, shared.TraitNone, shared.ElementDisenchant, c.rand())
}

func handleElement(elem shared.Element) Handler {
	return func(c *Context) {
		elemental(c, elem, true)
	}
}

func handleBlind(c *Context) {
	timed(c, conditions.Blinded, 10+dice.RandInt1(c.rand(), c.Rlev), shared.TraitProtBlind, false, "")
}

func handleConfuse(c *Context) {
	timed(c, conditions.Confused, 3+dice.RandInt1(c.rand(), c.Rlev), shared.TraitProtConf, false, "")
}

func handleTerrify(c *Context) {
	timed(c, conditions.Afraid, 3+dice.RandInt1(c.rand(), c.Rlev), shared.TraitProtFear, true, "You stand your ground!")
}

func handleParalyze(c *Context) {
	// A zero-damage blow must not keep an already paralyzed player locked
	if c.Defender.TimedActive(conditions.Paralyzed) && c.Damage < 1 {
		c.Damage = 1
	}

	timed(c, conditions.Paralyzed, 3+dice.RandInt1(c.rand(), c.Rlev), shared.TraitFreeAct, true, "You resist the effects!")
}

func handleLoseStat(stat shared.Stat) Handler {
	return func(c *Context) {
		drainStats(c, stat)
	}
}

func handleLoseAll(c *Context) {
	drainStats(c, shared.StatStr, shared.StatDex, shared.StatCon, shared.StatInt, shared.StatWis)
}

func handleShatter(c *Context) {
	c.Obvious = true
	c.Damage = AdjustArmor(c.Damage, c.AC)
	if !c.hurt() {
		return
	}

	if c.Damage > ShatterThreshold {
		before := c.Defender.Position()
		c.Env.Effects.Earthquake(c.Attacker.Position(), ShatterRadius)

		if c.Defender.Position() != before {
			c.DoBreak = true
		}
	}
}

// handleExp drains experience. Higher tiers drain more dice of experience
// and are harder to hold on against.
func handleExp(chance, dice6 int) Handler {
	return func(c *Context) {
		drainExperience(c, chance, dice.Damroll(c.rand(), dice6, 6))
	}
}

func handleHallu(c *Context) {
	if !c.hurt() {
		return
	}

	if c.Defender.IncTimed(conditions.Hallucinating, 3+dice.RandInt1(c.rand(), c.Rlev/2)) {
		c.Obvious = true
	}

	c.Attacker.Observe(c.Defender, shared.TraitNone, shared.ElementChaos, c.rand())
}
