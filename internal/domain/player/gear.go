package player

import (
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
)

// Slot is a body location for worn equipment
type Slot int

const (
	SlotWeapon Slot = iota
	SlotBow
	SlotRing
	SlotAmulet
	SlotLight
	SlotBody
	SlotCloak
	SlotShield
	SlotHead
	SlotHands
	SlotFeet

	SlotCount
)

var slotNames = [SlotCount]string{
	"weapon", "bow", "ring", "amulet", "light", "body",
	"cloak", "shield", "head", "hands", "feet",
}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// IsWeapon reports whether the slot holds a weapon or launcher
func (s Slot) IsWeapon() bool {
	return s == SlotWeapon || s == SlotBow
}

// IsJewelry reports whether the slot holds a ring, amulet or light, which
// carry no combat bonuses worth disenchanting
func (s Slot) IsJewelry() bool {
	return s == SlotRing || s == SlotAmulet || s == SlotLight
}

// PackSize returns the number of inventory slots
func (p *Player) PackSize() int {
	return len(p.Inventory)
}

// PackSlot returns the object in an inventory slot, or nil
func (p *Player) PackSlot(index int) *objects.Object {
	if index < 0 || index >= len(p.Inventory) {
		return nil
	}
	return p.Inventory[index]
}

// Carry puts an object into the first free inventory slot
func (p *Player) Carry(obj *objects.Object) (int, error) {
	for i, held := range p.Inventory {
		if held == nil {
			p.Inventory[i] = obj
			return i, nil
		}
	}
	return -1, dnderr.Validation("pack is full").WithMeta("player_id", p.ID)
}

// TakeFromSlot removes up to n units from an inventory slot and returns
// them. A split stack comes back without an ID.
func (p *Player) TakeFromSlot(index, n int) *objects.Object {
	obj := p.PackSlot(index)
	if obj == nil || n <= 0 {
		return nil
	}

	p.redraw |= shared.RedrawInven
	if n >= obj.Number {
		p.Inventory[index] = nil
		return obj
	}
	return obj.Split(n)
}

// Wield puts an object into an equipment slot, returning what was there
func (p *Player) Wield(slot Slot, obj *objects.Object) *objects.Object {
	old := p.Equipment[slot]
	p.Equipment[slot] = obj
	return old
}

// Equipped returns the object in an equipment slot, or nil
func (p *Player) Equipped(slot Slot) *objects.Object {
	if slot < 0 || slot >= SlotCount {
		return nil
	}
	return p.Equipment[slot]
}

// Light returns the wielded light source, or nil
func (p *Player) Light() *objects.Object {
	return p.Equipment[SlotLight]
}

// AC is the total armour class from innate armour and worn equipment
func (p *Player) AC() int {
	total := p.BaseAC
	for _, obj := range p.Equipment {
		if obj == nil {
			continue
		}
		total += obj.AC + obj.ToA
	}
	if total < 0 {
		return 0
	}
	return total
}
