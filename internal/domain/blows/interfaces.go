package blows

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// Vitals takes damage and reports death
type Vitals interface {
	TakeHit(amount int, killer string)
	IsDead() bool
}

// Saver supplies the numbers behind saving throws
type Saver interface {
	SaveSkill() int
	DexSafety() int
	Level() int
}

// Afflictable carries status timers
type Afflictable interface {
	IncTimed(kind conditions.ConditionType, amount int) bool
	TimedActive(kind conditions.ConditionType) bool
}

// Protected exposes protective traits and elemental resistances
type Protected interface {
	shared.Defences
}

// LifeForce holds experience
type LifeForce interface {
	Experience() int
	LoseExperience(amount int, permanent bool)
}

// Purse holds gold
type Purse interface {
	Gold() int
	SpendGold(amount int)
}

// Pack is the inventory thieves rummage through
type Pack interface {
	PackSize() int
	PackSlot(index int) *objects.Object
	TakeFromSlot(index, n int) *objects.Object
}

// Locatable has a place in the dungeon
type Locatable interface {
	Position() shared.Point
	Depth() int
}

// Upkeep queues display refreshes
type Upkeep interface {
	Redraw(flags shared.Redraw)
	TracksHealthOf(monsterID string) bool
}

// Defender is everything a blow may touch on the player
type Defender interface {
	Vitals
	Saver
	Afflictable
	Protected
	LifeForce
	Purse
	Pack
	Locatable
	Upkeep
}

// Attacker is the monster landing the blow
type Attacker interface {
	ID() string
	Name() string
	Position() shared.Point
	HP() int
	MaxHP() int
	Heal(amount int) int
	Carry(obj *objects.Object)
	Observe(target shared.Defences, trait shared.Trait, elem shared.Element, rng dice.Source)
}

// ObjectFactory makes objects that change hands during a blow
type ObjectFactory interface {
	Money(amount int, origin objects.Origin, depth int) []*objects.Object
	Assign(obj *objects.Object) *objects.Object
}
