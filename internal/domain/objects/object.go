package objects

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// TVal is the broad category of an object kind
type TVal int

const (
	TValNone TVal = iota
	TValFood
	TValMushroom
	TValPotion
	TValScroll
	TValFlask
	TValWand
	TValStaff
	TValRod
	TValSword
	TValSoftArmor
	TValLight
	TValRing
	TValGold
)

// MaxPval is the largest value a single object can hold
const MaxPval = 32767

// Origin records how an object came to exist
type Origin string

const (
	OriginNone   Origin = ""
	OriginFloor  Origin = "floor"
	OriginDrop   Origin = "drop"
	OriginStore  Origin = "store"
	OriginBirth  Origin = "birth"
	OriginStolen Origin = "stolen"
)

// Kind is the template shared by every object of the same type.
// A '~' in Name marks where the plural "s" goes.
type Kind struct {
	Key   string
	Name  string
	TVal  TVal
	Level int
	Hates []shared.Element
}

// Object is one stack of items carried, dropped or worn
type Object struct {
	ID     string
	Kind   *Kind
	Number int

	// Pval holds charges for wands and staves and the value of money
	Pval int
	// Timeout holds the remaining fuel for light sources
	Timeout int

	// AC is the base armour of worn items
	AC  int
	ToH int
	ToD int
	ToA int

	Artifact     bool
	ArtifactName string

	Origin      Origin
	OriginDepth int
}

// CanHaveCharges reports whether the object stores magical charges
func (o *Object) CanHaveCharges() bool {
	return o.Kind != nil && (o.Kind.TVal == TValWand || o.Kind.TVal == TValStaff)
}

// IsEdible reports whether the object can be eaten
func (o *Object) IsEdible() bool {
	return o.Kind != nil && (o.Kind.TVal == TValFood || o.Kind.TVal == TValMushroom)
}

// IsMoney reports whether the object is a pile of coins
func (o *Object) IsMoney() bool {
	return o.Kind != nil && o.Kind.TVal == TValGold
}

// IsLight reports whether the object is a light source
func (o *Object) IsLight() bool {
	return o.Kind != nil && o.Kind.TVal == TValLight
}

// IsWeapon reports whether the object is a melee weapon
func (o *Object) IsWeapon() bool {
	return o.Kind != nil && o.Kind.TVal == TValSword
}

// IsArmour reports whether the object is worn for protection
func (o *Object) IsArmour() bool {
	return o.Kind != nil && o.Kind.TVal == TValSoftArmor
}

// IsRod reports whether the object is a rod
func (o *Object) IsRod() bool {
	return o.Kind != nil && o.Kind.TVal == TValRod
}

// HatesElement reports whether the element can destroy this object
func (o *Object) HatesElement(elem shared.Element) bool {
	if o.Kind == nil || o.Artifact {
		return false
	}
	for _, hated := range o.Kind.Hates {
		if hated == elem {
			return true
		}
	}
	return false
}

// HasEnchantment reports whether any combat bonus is positive
func (o *Object) HasEnchantment() bool {
	return o.ToH > 0 || o.ToD > 0 || o.ToA > 0
}

// Split removes n units from the stack and returns them as a new object.
// Charges are shared out in proportion to the units taken. The caller is
// responsible for giving the new object an ID.
func (o *Object) Split(n int) *Object {
	if n <= 0 {
		return nil
	}
	if n > o.Number {
		n = o.Number
	}

	split := *o
	split.ID = ""
	split.Number = n
	if o.CanHaveCharges() && o.Number > 0 {
		split.Pval = o.Pval * n / o.Number
		o.Pval -= split.Pval
	}
	o.Number -= n
	return &split
}

// DescMode selects how much detail Describe produces
type DescMode int

const (
	// DescBase is the bare name, pluralised by stack size
	DescBase DescMode = 1 << iota
	// DescPrefix adds the article or count
	DescPrefix
	// DescExtra adds charges, bonuses and the artifact name
	DescExtra

	DescFull = DescBase | DescPrefix | DescExtra
)

// Describe renders the object name for messages
func (o *Object) Describe(mode DescMode) string {
	if o.Kind == nil {
		return "(nothing)"
	}

	name := pluralize(o.Kind.Name, o.Number)
	if o.IsMoney() {
		name = fmt.Sprintf("%d gold pieces", o.Pval)
		return name
	}

	var b strings.Builder
	if mode&DescPrefix != 0 {
		switch {
		case o.Artifact:
			b.WriteString("the ")
		case o.Number == 1:
			b.WriteString(article(name))
			b.WriteString(" ")
		case o.Number <= 0:
			b.WriteString("no more ")
		default:
			fmt.Fprintf(&b, "%d ", o.Number)
		}
	}
	b.WriteString(name)

	if mode&DescExtra != 0 {
		if o.Artifact && o.ArtifactName != "" {
			b.WriteString(" ")
			b.WriteString(o.ArtifactName)
		}
		if o.ToH != 0 || o.ToD != 0 {
			fmt.Fprintf(&b, " (%+d,%+d)", o.ToH, o.ToD)
		}
		if o.ToA != 0 {
			fmt.Fprintf(&b, " [%+d]", o.ToA)
		}
		if o.CanHaveCharges() {
			charges := "charges"
			if o.Pval == 1 {
				charges = "charge"
			}
			fmt.Fprintf(&b, " (%d %s)", o.Pval, charges)
		}
		if o.IsLight() && o.Timeout > 0 {
			fmt.Fprintf(&b, " (%d turns)", o.Timeout)
		}
	}

	return b.String()
}

func pluralize(name string, number int) string {
	if number == 1 {
		return strings.ReplaceAll(name, "~", "")
	}
	return strings.ReplaceAll(name, "~", "s")
}

func article(name string) string {
	if name == "" {
		return "a"
	}
	switch strings.ToLower(name[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}
