package effects

import (
	"log"

	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/blows"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/dungeon"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/player"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
)

const (
	// ArtifactResistChance is the percent chance an artifact shrugs off
	// disenchantment
	ArtifactResistChance = 60
	// InventoryDamageScale is the denominator for inventory damage chances
	InventoryDamageScale = 10000
)

var _ blows.Effects = (*Simple)(nil)

// Simple applies the side effects of melee blows to one player standing on
// one level
type Simple struct {
	player *player.Player
	level  *dungeon.Level
	rng    dice.Source
}

// Config holds the collaborators for Simple
type Config struct {
	Player *player.Player
	// Level is optional; without one earthquakes do nothing
	Level *dungeon.Level
	Rand  dice.Source
}

// NewSimple creates a Simple effects applier
func NewSimple(cfg *Config) (*Simple, error) {
	if cfg == nil || cfg.Player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = dice.NewRandomRoller()
	}

	return &Simple{
		player: cfg.Player,
		level:  cfg.Level,
		rng:    rng,
	}, nil
}

// DrainStat lowers a stat unless it is sustained. The attempt is always
// noticed.
func (s *Simple) DrainStat(stat shared.Stat) bool {
	adjective := stat.LossAdjective()

	if s.player.HasTrait(shared.SustainFor(stat)) {
		s.player.Msg("You feel very %s for a moment, but the feeling passes.", adjective)
		return true
	}

	if s.player.DecreaseStat(stat) {
		s.player.Msg("You feel very %s.", adjective)
		log.Printf("[EFFECTS] Drained %s of player %s to %d", stat, s.player.ID, s.player.Stat(stat))
	}
	return true
}

// Disenchant picks one equipment slot, skipping jewellery and lights, and
// strips a point of enchantment from whatever is worn there
func (s *Simple) Disenchant() bool {
	count := 0
	for slot := player.Slot(0); slot < player.SlotCount; slot++ {
		if !slot.IsJewelry() {
			count++
		}
	}

	chosen := player.Slot(-1)
	for slot := player.SlotCount - 1; slot >= 0; slot-- {
		if slot.IsJewelry() {
			continue
		}
		if dice.RandInt0(s.rng, count) == 0 {
			chosen = slot
			break
		}
		count--
	}

	obj := s.player.Equipped(chosen)
	if obj == nil || !obj.HasEnchantment() {
		return true
	}

	name := obj.Describe(objects.DescBase)
	label := shared.IndexLabel(int(chosen))

	if obj.Artifact && dice.RandInt0(s.rng, 100) < ArtifactResistChance {
		suffix := "s"
		if obj.Number != 1 {
			suffix = ""
		}
		s.player.Msg("Your %s (%c) resist%s disenchantment!", name, label, suffix)
		return true
	}

	if chosen.IsWeapon() {
		obj.ToH = s.weaken(obj.ToH)
		obj.ToD = s.weaken(obj.ToD)
	} else {
		obj.ToA = s.weaken(obj.ToA)
	}

	verb := "was"
	if obj.Number != 1 {
		verb = "were"
	}
	s.player.Msg("Your %s (%c) %s disenchanted!", name, label, verb)
	s.player.Redraw(shared.RedrawEquip)

	log.Printf("[EFFECTS] Disenchanted %s slot of player %s", chosen, s.player.ID)
	return true
}

// weaken drops a positive bonus by one, and high bonuses sometimes by two
func (s *Simple) weaken(bonus int) int {
	if bonus > 0 {
		bonus--
	}
	if bonus > 5 && dice.RandInt0(s.rng, 100) < 20 {
		bonus--
	}
	return bonus
}

// DrainLight burns fuel from the wielded light. It is only noticed by a
// player who can see.
func (s *Simple) DrainLight(turns int) bool {
	light := s.player.Light()
	if light == nil || light.Artifact || light.Timeout <= 0 {
		return false
	}

	light.Timeout = max(light.Timeout-turns, 1)
	s.player.Redraw(shared.RedrawEquip)

	if s.player.TimedActive(conditions.Blinded) {
		return false
	}
	s.player.Msg("Your light dims.")
	return true
}

// Earthquake shakes the level around center
func (s *Simple) Earthquake(center shared.Point, radius int) {
	if s.level == nil {
		log.Printf("[EFFECTS] Earthquake at %v skipped, player %s has no level", center, s.player.ID)
		return
	}
	s.level.Earthquake(center, radius, s.rng, s.player, s.player)
}

// DamageInventory gives every pack item that hates elem a perc in 10000
// chance per unit of being destroyed. Weapons and armour lose a point of
// enchantment instead, and rods are four times harder to break. It returns
// the number of units destroyed.
func (s *Simple) DamageInventory(elem shared.Element, perc int) int {
	if perc <= 0 {
		return 0
	}

	destroyed := 0
	for index := 0; index < s.player.PackSize(); index++ {
		obj := s.player.PackSlot(index)
		if obj == nil || obj.Artifact || !obj.HatesElement(elem) {
			continue
		}

		chance := perc
		damaged := false
		switch {
		case obj.IsWeapon():
			if dice.RandInt0(s.rng, InventoryDamageScale) >= perc {
				continue
			}
			obj.ToH--
			obj.ToD--
			damaged = true
		case obj.IsArmour():
			if dice.RandInt0(s.rng, InventoryDamageScale) >= perc {
				continue
			}
			obj.ToA--
			damaged = true
		case obj.IsRod():
			chance /= 4
		}

		amount := obj.Number
		if damaged {
			s.player.Redraw(shared.RedrawEquip)
		} else {
			amount = 0
			for unit := 0; unit < obj.Number; unit++ {
				if dice.RandInt0(s.rng, InventoryDamageScale) < chance {
					amount++
				}
			}
		}
		if amount == 0 {
			continue
		}

		s.announceLoss(obj, index, amount, damaged)
		if damaged {
			continue
		}

		_ = s.player.TakeFromSlot(index, amount)
		destroyed += amount
	}

	if destroyed > 0 {
		log.Printf("[EFFECTS] %s destroyed %d items of player %s", elem, destroyed, s.player.ID)
	}
	return destroyed
}

func (s *Simple) announceLoss(obj *objects.Object, index, amount int, damaged bool) {
	owner := "Your"
	if obj.Number > 1 {
		switch {
		case amount == obj.Number:
			owner = "All of your"
		case amount > 1:
			owner = "Some of your"
		default:
			owner = "One of your"
		}
	}

	verb := "was"
	if amount > 1 {
		verb = "were"
	}
	outcome := "destroyed"
	if damaged {
		outcome = "damaged"
	}

	s.player.Msg("%s %s (%c) %s %s!", owner, obj.Describe(objects.DescBase), shared.IndexLabel(index), verb, outcome)
}
