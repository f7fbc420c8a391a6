package melee

//go:generate mockgen -destination=mock/mock_service.go -package=mockmelee -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/blows"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/dungeon"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/player"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	"github.com/KirkDiggler/dungeon-melee/internal/effects"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
	"github.com/KirkDiggler/dungeon-melee/internal/repositories/lore"
)

// Service resolves monster blows against the player
type Service interface {
	// ResolveBlow applies one blow that has already hit
	ResolveBlow(ctx context.Context, input *BlowInput) (*BlowResult, error)

	// ActionText narrates a blow method, e.g. "hits you."
	ActionText(method *blows.Method) string
}

// BlowInput describes a blow that landed
type BlowInput struct {
	Attacker *monster.Monster
	Defender *player.Player
	// Level is where the fight happens; without it SHATTER cannot quake
	Level *dungeon.Level

	Method string
	Effect string
	// Damage is the rolled damage before any reduction
	Damage int
}

// BlowResult reports what the blow did
type BlowResult struct {
	Method string
	Effect string
	Damage int

	Obvious bool
	Blinked bool
	DoBreak bool
	// Skipped is set when the effect has no handler
	Skipped      bool
	DefenderDied bool

	Messages []string
	// Lore is the attacker's updated race lore, when the blow was obvious
	Lore *monster.Lore
}

type service struct {
	loreRepo         lore.Repository
	rng              dice.Source
	objects          blows.ObjectFactory
	lifeDrainPercent int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	LoreRepository lore.Repository // Required
	Rand           dice.Source
	Objects        blows.ObjectFactory
	// LifeDrainPercent defaults to blows.DefaultLifeDrainPercent
	LifeDrainPercent int
}

// NewService creates a new melee service
func NewService(cfg *ServiceConfig) Service {
	if cfg.LoreRepository == nil {
		panic("lore repository is required")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = dice.NewRandomRoller()
	}
	lifeDrain := cfg.LifeDrainPercent
	if lifeDrain <= 0 {
		lifeDrain = blows.DefaultLifeDrainPercent
	}

	return &service{
		loreRepo:         cfg.LoreRepository,
		rng:              rng,
		objects:          cfg.Objects,
		lifeDrainPercent: lifeDrain,
	}
}

// ResolveBlow applies one blow that has already hit
func (s *service) ResolveBlow(ctx context.Context, input *BlowInput) (*BlowResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("blow input is required")
	}
	if input.Attacker == nil {
		return nil, dnderr.InvalidArgument("attacker is required")
	}
	if input.Defender == nil {
		return nil, dnderr.InvalidArgument("defender is required")
	}
	if input.Method == "" {
		return nil, dnderr.InvalidArgument("blow method is required")
	}

	method := blows.MethodByName(input.Method)
	if method == nil {
		return nil, dnderr.InvalidArgumentf("unknown blow method %s", input.Method).
			WithMeta("method", input.Method)
	}

	result := &BlowResult{
		Method: method.Name,
		Effect: strings.ToUpper(input.Effect),
	}

	kind, ok := blows.ParseEffectKind(input.Effect)
	if !ok {
		log.Printf("[MELEE] %s used unknown effect %q, skipping", input.Attacker.ID(), input.Effect)
		result.Skipped = true
		return result, nil
	}
	result.Effect = kind.String()

	if input.Defender.IsDead() {
		log.Printf("[MELEE] Player %s is already dead, skipping %s", input.Defender.ID, kind)
		result.Skipped = true
		result.DefenderDied = true
		return result, nil
	}

	// Capture messages for the result while still sending them on
	messages := shared.NewMessageLog()
	previous := input.Defender.Messenger()
	tee := teeMessenger{messages, previous}
	input.Defender.SetMessenger(tee)
	defer input.Defender.SetMessenger(previous)

	applier, err := effects.NewSimple(&effects.Config{
		Player: input.Defender,
		Level:  input.Level,
		Rand:   s.rng,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to prepare blow effects")
	}

	blowCtx := blows.NewContext(&blows.ContextConfig{
		Attacker: input.Attacker,
		Defender: input.Defender,
		Method:   method,
		Damage:   input.Damage,
		AC:       input.Defender.AC(),
		Rlev:     input.Attacker.Rlev(),
		Desc:     describe(input.Attacker),
		Env: &blows.Env{
			Rand:             s.rng,
			Effects:          applier,
			Messages:         tee,
			Objects:          s.objects,
			LifeDrainPercent: s.lifeDrainPercent,
		},
	})

	blows.HandlerFor(kind)(blowCtx)

	result.Damage = blowCtx.Damage
	result.Obvious = blowCtx.Obvious
	result.Blinked = blowCtx.Blinked
	result.DoBreak = blowCtx.DoBreak
	result.DefenderDied = input.Defender.IsDead()
	result.Messages = messages.Messages()

	log.Printf("[MELEE] %s %s player %s with %s for %d damage (obvious: %t)",
		input.Attacker.Name(), method.Name, input.Defender.ID, kind, result.Damage, result.Obvious)

	if result.Obvious && input.Attacker.Race != nil {
		learned, err := s.loreRepo.RecordBlow(ctx, input.Attacker.Race.ID, method.Name, kind.String())
		if err != nil {
			// Lore is best effort
			log.Printf("[MELEE] Failed to record lore for %s (%s %v): %v",
				input.Attacker.Race.ID, dnderr.GetCode(err), dnderr.GetMeta(err), err)
		} else {
			result.Lore = learned
		}
	}

	return result, nil
}

// ActionText narrates a blow method
func (s *service) ActionText(method *blows.Method) string {
	return blows.MethodAction(method, s.rng)
}

// describe names the attacker in death messages, e.g. "a Cave orc"
func describe(m *monster.Monster) string {
	name := m.Name()
	if name == "" || name == "it" {
		return "it"
	}
	switch strings.ToLower(name[:1]) {
	case "a", "e", "i", "o", "u":
		return "an " + name
	}
	return "a " + name
}

type teeMessenger []shared.Messenger

func (t teeMessenger) Msg(format string, args ...any) {
	for _, m := range t {
		m.Msg(format, args...)
	}
}
