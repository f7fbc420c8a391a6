package conditions

import "github.com/KirkDiggler/dungeon-melee/internal/domain/shared"

// ConditionType represents a timed status effect on a player
type ConditionType string

const (
	Blinded       ConditionType = "blinded"
	Confused      ConditionType = "confused"
	Afraid        ConditionType = "afraid"
	Paralyzed     ConditionType = "paralyzed"
	Poisoned      ConditionType = "poisoned"
	Hallucinating ConditionType = "hallucinating"
)

// MaxDuration caps every timer.
const MaxDuration = 10000

// Definition describes how a condition behaves when applied
type Definition struct {
	Type ConditionType
	Name string

	// Messages shown when the timer starts, grows and runs out
	OnBegin    string
	OnIncrease string
	OnEnd      string

	// Protection blocks the condition outright when the target holds it
	Protection shared.Trait
	// Resist blocks the condition when the target resists the element
	Resist shared.Element

	// NonCumulative conditions cannot be extended while active
	NonCumulative bool
}

var definitions = map[ConditionType]*Definition{
	Blinded: {
		Type:       Blinded,
		Name:       "Blind",
		OnBegin:    "You are blind!",
		OnIncrease: "You are blinder!",
		OnEnd:      "You blink and your eyes clear.",
		Protection: shared.TraitProtBlind,
	},
	Confused: {
		Type:       Confused,
		Name:       "Confused",
		OnBegin:    "You are confused!",
		OnIncrease: "You are more confused!",
		OnEnd:      "You feel less confused now.",
		Protection: shared.TraitProtConf,
	},
	Afraid: {
		Type:       Afraid,
		Name:       "Afraid",
		OnBegin:    "You are terrified!",
		OnIncrease: "You are more scared!",
		OnEnd:      "You feel bolder now.",
		Protection: shared.TraitProtFear,
	},
	Paralyzed: {
		Type:          Paralyzed,
		Name:          "Paralyzed",
		OnBegin:       "You are paralysed!",
		OnEnd:         "You can move again.",
		Protection:    shared.TraitFreeAct,
		NonCumulative: true,
	},
	Poisoned: {
		Type:       Poisoned,
		Name:       "Poisoned",
		OnBegin:    "You are poisoned!",
		OnIncrease: "You are more poisoned!",
		OnEnd:      "You are no longer poisoned.",
		Resist:     shared.ElementPoison,
	},
	Hallucinating: {
		Type:       Hallucinating,
		Name:       "Hallucinating",
		OnBegin:    "You feel drugged!",
		OnIncrease: "You feel more drugged!",
		OnEnd:      "You can see clearly again.",
		Resist:     shared.ElementChaos,
	},
}

// GetDefinition returns the definition for a condition type, or nil
func GetDefinition(condType ConditionType) *Definition {
	return definitions[condType]
}
