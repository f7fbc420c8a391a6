package blows

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// DefaultLifeDrainPercent is the share of experience, per hundred points,
// added to every experience drain
const DefaultLifeDrainPercent = 10

// Env holds the collaborators a blow needs besides the two combatants
type Env struct {
	Rand     dice.Source
	Effects  Effects
	Messages shared.Messenger
	Objects  ObjectFactory

	LifeDrainPercent int
}

func (e *Env) withDefaults() *Env {
	out := Env{LifeDrainPercent: DefaultLifeDrainPercent}
	if e != nil {
		out = *e
	}
	if out.Rand == nil {
		out.Rand = dice.NewRandomRoller()
	}
	if out.Effects == nil {
		out.Effects = noEffects{}
	}
	if out.Messages == nil {
		out.Messages = shared.Discard
	}
	if out.Objects == nil {
		out.Objects = objects.NewFactory(nil)
	}
	return &out
}

// Context is the state of one blow while its effect resolves. Handlers
// only ever set Obvious, Blinked and DoBreak, never clear them.
type Context struct {
	Attacker Attacker
	Defender Defender
	Method   *Method

	// Damage is the rolled damage, adjusted by the handler
	Damage int
	// AC is the defender's armour class when the blow landed
	AC int
	// Rlev is the attacker's effective level, at least 1
	Rlev int
	// Desc names the attacker in death messages
	Desc string

	Obvious bool
	Blinked bool
	DoBreak bool

	Env *Env
}

// ContextConfig holds the values for a new Context
type ContextConfig struct {
	Attacker Attacker
	Defender Defender
	Method   *Method
	Damage   int
	AC       int
	Rlev     int
	Desc     string
	Env      *Env
}

// NewContext prepares a Context for one blow
func NewContext(cfg *ContextConfig) *Context {
	damage := cfg.Damage
	if damage < 0 {
		damage = 0
	}
	rlev := cfg.Rlev
	if rlev < 1 {
		rlev = 1
	}
	method := cfg.Method
	if method == nil {
		method = &Method{Name: "HIT", Phys: true}
	}

	return &Context{
		Attacker: cfg.Attacker,
		Defender: cfg.Defender,
		Method:   method,
		Damage:   damage,
		AC:       cfg.AC,
		Rlev:     rlev,
		Desc:     cfg.Desc,
		Env:      cfg.Env.withDefaults(),
	}
}

// hurt deals the current damage and reports whether the defender survived.
// Every handler that deals damage stops when it returns false.
func (c *Context) hurt() bool {
	c.Defender.TakeHit(c.Damage, c.Desc)
	return !c.Defender.IsDead()
}

func (c *Context) msg(format string, args ...any) {
	c.Env.Messages.Msg(format, args...)
}

func (c *Context) rand() dice.Source {
	return c.Env.Rand
}
