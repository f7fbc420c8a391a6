package shared

// Element is a projection type that a defender may resist.
type Element int

const (
	ElementNone Element = iota
	ElementAcid
	ElementElec
	ElementFire
	ElementCold
	ElementPoison
	ElementLight
	ElementDark
	ElementSound
	ElementShards
	ElementNexus
	ElementNether
	ElementChaos
	ElementDisenchant
)

var elementNames = map[Element]string{
	ElementNone:       "none",
	ElementAcid:       "acid",
	ElementElec:       "electricity",
	ElementFire:       "fire",
	ElementCold:       "cold",
	ElementPoison:     "poison",
	ElementLight:      "light",
	ElementDark:       "darkness",
	ElementSound:      "sound",
	ElementShards:     "shards",
	ElementNexus:      "nexus",
	ElementNether:     "nether",
	ElementChaos:      "chaos",
	ElementDisenchant: "disenchantment",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "unknown"
}

// IsBase reports whether the element is one of the four base elements or
// poison, which resist by a fixed divisor.
func (e Element) IsBase() bool {
	switch e {
	case ElementAcid, ElementElec, ElementFire, ElementCold, ElementPoison:
		return true
	}
	return false
}

// Resistance levels as stored per element.
const (
	ResistVulnerable = -1
	ResistNone       = 0
	ResistResists    = 1
	ResistImmune     = 3
)
