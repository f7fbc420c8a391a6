package blows

import "github.com/KirkDiggler/dungeon-melee/internal/dice"

var insults = [8]string{
	"insults you!",
	"insults your mother!",
	"gives you the finger!",
	"humiliates you!",
	"defiles you!",
	"dances around you!",
	"makes obscene gestures!",
	"moons you!!!",
}

var moans = [8]string{
	"wants his mushrooms back.",
	"tells you to get off his land.",
	"looks for his dogs. ",
	"says 'Did you kill my Fang?' ",
	"asks 'Do you want to buy any mushrooms?' ",
	"seems sad about something.",
	"asks if you have seen his dogs.",
	"mumbles something about mushrooms.",
}

// Insults returns the insult table
func Insults() []string {
	out := insults
	return out[:]
}

// Moans returns the moan table
func Moans() []string {
	out := moans
	return out[:]
}

// MethodAction is the narration for a blow method: its literal action
// message, a random insult or moan, or "" when it has neither.
func MethodAction(method *Method, rng dice.Source) string {
	if method == nil {
		return ""
	}

	switch {
	case method.ActMsg != "":
		return method.ActMsg
	case method.Name == "INSULT":
		return insults[dice.RandInt0(rng, len(insults))]
	case method.Name == "MOAN":
		return moans[dice.RandInt0(rng, len(moans))]
	}
	return ""
}
