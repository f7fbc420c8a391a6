package blows

import (
	"strings"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// EffectKind is what a blow does once it lands
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectHurt
	EffectPoison
	EffectDisenchant
	EffectDrainCharges
	EffectEatGold
	EffectEatItem
	EffectEatFood
	EffectEatLight
	EffectAcid
	EffectElec
	EffectFire
	EffectCold
	EffectBlind
	EffectConfuse
	EffectTerrify
	EffectParalyze
	EffectLoseStr
	EffectLoseInt
	EffectLoseWis
	EffectLoseDex
	EffectLoseCon
	EffectLoseAll
	EffectShatter
	EffectExp10
	EffectExp20
	EffectExp40
	EffectExp80
	EffectHallu

	effectKindCount
)

var effectNames = [effectKindCount]string{
	"NONE", "HURT", "POISON", "DISENCHANT", "DRAIN_CHARGES",
	"EAT_GOLD", "EAT_ITEM", "EAT_FOOD", "EAT_LIGHT",
	"ACID", "ELEC", "FIRE", "COLD",
	"BLIND", "CONFUSE", "TERRIFY", "PARALYZE",
	"LOSE_STR", "LOSE_INT", "LOSE_WIS", "LOSE_DEX", "LOSE_CON", "LOSE_ALL",
	"SHATTER", "EXP_10", "EXP_20", "EXP_40", "EXP_80", "HALLU",
}

func (k EffectKind) String() string {
	if k < 0 || k >= effectKindCount {
		return "UNKNOWN"
	}
	return effectNames[k]
}

// EffectKinds lists every effect in table order
func EffectKinds() []EffectKind {
	kinds := make([]EffectKind, effectKindCount)
	for i := range kinds {
		kinds[i] = EffectKind(i)
	}
	return kinds
}

// ParseEffectKind looks an effect up by name, ignoring case
func ParseEffectKind(name string) (EffectKind, bool) {
	for i, known := range effectNames {
		if strings.EqualFold(known, name) {
			return EffectKind(i), true
		}
	}
	return EffectNone, false
}

// HandlerFor returns the handler for an effect kind, or nil for kinds
// outside the enumeration
func HandlerFor(kind EffectKind) Handler {
	switch kind {
	case EffectNone:
		return handleNone
	case EffectHurt:
		return handleHurt
	case EffectPoison:
		return handlePoison
	case EffectDisenchant:
		return handleDisenchant
	case EffectDrainCharges:
		return drainCharges
	case EffectEatGold:
		return eatGold
	case EffectEatItem:
		return eatItem
	case EffectEatFood:
		return eatFood
	case EffectEatLight:
		return eatLight
	case EffectAcid:
		return handleElement(shared.ElementAcid)
	case EffectElec:
		return handleElement(shared.ElementElec)
	case EffectFire:
		return handleElement(shared.ElementFire)
	case EffectCold:
		return handleElement(shared.ElementCold)
	case EffectBlind:
		return handleBlind
	case EffectConfuse:
		return handleConfuse
	case EffectTerrify:
		return handleTerrify
	case EffectParalyze:
		return handleParalyze
	case EffectLoseStr:
		return handleLoseStat(shared.StatStr)
	case EffectLoseInt:
		return handleLoseStat(shared.StatInt)
	case EffectLoseWis:
		return handleLoseStat(shared.StatWis)
	case EffectLoseDex:
		return handleLoseStat(shared.StatDex)
	case EffectLoseCon:
		return handleLoseStat(shared.StatCon)
	case EffectLoseAll:
		return handleLoseAll
	case EffectShatter:
		return handleShatter
	case EffectExp10:
		return handleExp(95, 10)
	case EffectExp20:
		return handleExp(90, 20)
	case EffectExp40:
		return handleExp(75, 40)
	case EffectExp80:
		return handleExp(50, 80)
	case EffectHallu:
		return handleHallu
	}
	return nil
}

// Resolve returns the handler for an effect name, or nil when the name is
// unknown. Callers skip blows with no handler.
func Resolve(name string) Handler {
	kind, ok := ParseEffectKind(name)
	if !ok {
		return nil
	}
	return HandlerFor(kind)
}
