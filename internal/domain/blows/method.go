package blows

import "strings"

// Method is how a blow is delivered
type Method struct {
	Name string
	// ActMsg is the narration appended to "The <monster> ..."
	ActMsg string
	// Phys is set when the method itself does physical damage
	Phys bool
}

var methods = []*Method{
	{Name: "HIT", ActMsg: "hits you.", Phys: true},
	{Name: "TOUCH", ActMsg: "touches you."},
	{Name: "PUNCH", ActMsg: "punches you.", Phys: true},
	{Name: "KICK", ActMsg: "kicks you.", Phys: true},
	{Name: "CLAW", ActMsg: "claws you.", Phys: true},
	{Name: "BITE", ActMsg: "bites you.", Phys: true},
	{Name: "STING", ActMsg: "stings you.", Phys: true},
	{Name: "BUTT", ActMsg: "butts you.", Phys: true},
	{Name: "CRUSH", ActMsg: "crushes you.", Phys: true},
	{Name: "ENGULF", ActMsg: "engulfs you.", Phys: true},
	{Name: "CRAWL", ActMsg: "crawls on you."},
	{Name: "DROOL", ActMsg: "drools on you."},
	{Name: "SPIT", ActMsg: "spits on you."},
	{Name: "GAZE", ActMsg: "gazes at you."},
	{Name: "WAIL", ActMsg: "wails at you."},
	{Name: "SPORE", ActMsg: "releases spores at you."},
	{Name: "BEG", ActMsg: "begs you for money."},
	{Name: "INSULT"},
	{Name: "MOAN"},
}

// Methods returns the standard blow methods
func Methods() []*Method {
	out := make([]*Method, len(methods))
	copy(out, methods)
	return out
}

// MethodByName finds a standard method, ignoring case
func MethodByName(name string) *Method {
	for _, m := range methods {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}
	return nil
}
