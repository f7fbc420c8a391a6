package monster

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// Blow is one melee attack in a race's repertoire
type Blow struct {
	Method string `json:"method"`
	Effect string `json:"effect"`
	Dice   string `json:"dice"`
}

// Race is the template shared by every monster of a kind
type Race struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Blows []Blow `json:"blows"`

	// Smart races remember every defence they see, stupid ones learn
	// nothing and the rest remember half of what they see.
	Smart  bool `json:"smart"`
	Stupid bool `json:"stupid"`
}

// Memory is what a monster has learned about the player
type Memory struct {
	Traits  map[shared.Trait]bool
	Resists map[shared.Element]int
}

// Monster is one live attacker on the level
type Monster struct {
	MonsterID        string
	Race             *Race
	CurrentHitPoints int
	MaxHitPoints     int
	Pos              shared.Point
	Carried          []*objects.Object

	memory Memory
}

// New creates a monster of the given race at full health
func New(id string, race *Race, hitPoints int) *Monster {
	return &Monster{
		MonsterID:        id,
		Race:             race,
		CurrentHitPoints: hitPoints,
		MaxHitPoints:     hitPoints,
		memory: Memory{
			Traits:  make(map[shared.Trait]bool),
			Resists: make(map[shared.Element]int),
		},
	}
}

// ID returns the monster's identifier
func (m *Monster) ID() string {
	return m.MonsterID
}

// Name returns the race name
func (m *Monster) Name() string {
	if m.Race == nil {
		return "it"
	}
	return m.Race.Name
}

// Rlev is the effective level used to scale blow effects, at least 1
func (m *Monster) Rlev() int {
	if m.Race == nil || m.Race.Level < 1 {
		return 1
	}
	return m.Race.Level
}

// Position returns the grid the monster stands on
func (m *Monster) Position() shared.Point {
	return m.Pos
}

// HP returns current hit points
func (m *Monster) HP() int {
	return m.CurrentHitPoints
}

// MaxHP returns maximum hit points
func (m *Monster) MaxHP() int {
	return m.MaxHitPoints
}

// Heal restores hit points up to the maximum and returns the amount healed
func (m *Monster) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if missing := m.MaxHitPoints - m.CurrentHitPoints; amount > missing {
		amount = missing
	}
	m.CurrentHitPoints += amount
	return amount
}

// Carry takes an object into the monster's possession
func (m *Monster) Carry(obj *objects.Object) {
	if obj == nil {
		return
	}
	m.Carried = append(m.Carried, obj)
}

// CarriedGold totals the value of coins the monster holds
func (m *Monster) CarriedGold() int {
	total := 0
	for _, obj := range m.Carried {
		if obj.IsMoney() {
			total += obj.Pval
		}
	}
	return total
}

// Observe records what the monster saw of the target's defences. Pass
// TraitNone or ElementNone to skip either half. Smart races always learn,
// stupid ones never do and the rest learn half the time.
func (m *Monster) Observe(target shared.Defences, trait shared.Trait, elem shared.Element, rng dice.Source) {
	if target == nil || m.Race == nil || m.Race.Stupid {
		return
	}
	if trait == shared.TraitNone && elem == shared.ElementNone {
		return
	}
	if !m.Race.Smart && rng != nil && dice.RandInt0(rng, 2) == 0 {
		return
	}
	if trait != shared.TraitNone {
		m.memory.Traits[trait] = target.HasTrait(trait)
	}
	if elem != shared.ElementNone {
		m.memory.Resists[elem] = target.ResistLevel(elem)
	}
}

// Knows reports whether the monster has observed a trait, and whether the
// target held it
func (m *Monster) Knows(trait shared.Trait) (held, known bool) {
	held, known = m.memory.Traits[trait]
	return held, known
}

// KnownResist reports the resistance level the monster saw for an element
func (m *Monster) KnownResist(elem shared.Element) (level int, known bool) {
	level, known = m.memory.Resists[elem]
	return level, known
}
