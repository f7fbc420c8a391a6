package shared

// Trait is a protective property a defender can carry on equipment or
// innately. Monsters learn which traits their prey holds.
type Trait int

const (
	TraitNone Trait = iota
	TraitSustStr
	TraitSustInt
	TraitSustWis
	TraitSustDex
	TraitSustCon
	TraitProtBlind
	TraitProtConf
	TraitProtFear
	TraitProtStun
	TraitFreeAct
	TraitHoldLife
	TraitSeeInvis
)

var traitNames = map[Trait]string{
	TraitNone:      "NONE",
	TraitSustStr:   "SUST_STR",
	TraitSustInt:   "SUST_INT",
	TraitSustWis:   "SUST_WIS",
	TraitSustDex:   "SUST_DEX",
	TraitSustCon:   "SUST_CON",
	TraitProtBlind: "PROT_BLIND",
	TraitProtConf:  "PROT_CONF",
	TraitProtFear:  "PROT_FEAR",
	TraitProtStun:  "PROT_STUN",
	TraitFreeAct:   "FREE_ACT",
	TraitHoldLife:  "HOLD_LIFE",
	TraitSeeInvis:  "SEE_INVIS",
}

func (t Trait) String() string {
	if name, ok := traitNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// SustainFor returns the trait that protects a stat from draining.
func SustainFor(s Stat) Trait {
	return TraitSustStr + Trait(s)
}

// Defences is what an attacker can study about its prey
type Defences interface {
	HasTrait(t Trait) bool
	ResistLevel(e Element) int
}
