package player

import (
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// Timed exposes the status timers
func (p *Player) Timed() *conditions.Manager {
	return p.timed
}

// TimedActive reports whether a status timer is running
func (p *Player) TimedActive(kind conditions.ConditionType) bool {
	return p.timed.HasCondition(kind)
}

// IncTimed extends a status timer. It returns false when the player is
// protected, when the timer cannot grow, or when nothing changed.
func (p *Player) IncTimed(kind conditions.ConditionType, amount int) bool {
	def := conditions.GetDefinition(kind)
	if def == nil {
		return false
	}
	if def.Protection != shared.TraitNone && p.HasTrait(def.Protection) {
		return false
	}
	if def.Resist != shared.ElementNone && p.ResistLevel(def.Resist) > 0 {
		return false
	}

	wasActive := p.timed.HasCondition(kind)
	if !p.timed.Increase(kind, amount) {
		return false
	}

	if !wasActive && def.OnBegin != "" {
		p.Msg("%s", def.OnBegin)
	} else if wasActive && def.OnIncrease != "" {
		p.Msg("%s", def.OnIncrease)
	}
	p.redraw |= shared.RedrawStatus

	return true
}

// ProcessTurn ticks every timer down and announces the ones that ran out
func (p *Player) ProcessTurn() {
	for _, expired := range p.timed.ProcessTurn() {
		if def := conditions.GetDefinition(expired); def != nil && def.OnEnd != "" {
			p.Msg("%s", def.OnEnd)
		}
		p.redraw |= shared.RedrawStatus
	}
}
