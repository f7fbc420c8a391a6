package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/blows"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/dungeon"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/player"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
	"github.com/KirkDiggler/dungeon-melee/internal/services/melee"
)

// ParseBlows reads a comma separated list of METHOD:EFFECT:DICE blows,
// e.g. "HIT:HURT:1d8,TOUCH:EAT_GOLD:0"
func ParseBlows(list string) ([]monster.Blow, error) {
	var out []monster.Blow
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, dnderr.InvalidArgumentf("blow %q must be METHOD:EFFECT:DICE", part)
		}
		if blows.MethodByName(fields[0]) == nil {
			return nil, dnderr.InvalidArgumentf("unknown blow method %s", fields[0])
		}
		if _, _, _, err := dice.ParseString(fields[2]); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, fmt.Sprintf("bad damage dice %q", fields[2]))
		}

		out = append(out, monster.Blow{
			Method: strings.ToUpper(fields[0]),
			Effect: strings.ToUpper(fields[1]),
			Dice:   fields[2],
		})
	}

	if len(out) == 0 {
		return nil, dnderr.InvalidArgument("at least one blow is required")
	}
	return out, nil
}

// Simulator runs rounds of a monster's blows against the player
type Simulator struct {
	service melee.Service
	rng     dice.Source
	out     io.Writer
}

// NewSimulator creates a Simulator writing narration to out
func NewSimulator(service melee.Service, rng dice.Source, out io.Writer) *Simulator {
	return &Simulator{service: service, rng: rng, out: out}
}

// Run attacks with every blow of the attacker's race for the given number
// of rounds. It stops early when the player dies or the attacker blinks away.
func (s *Simulator) Run(ctx context.Context, attacker *monster.Monster, defender *player.Player, level *dungeon.Level, rounds int) error {
	for round := 1; round <= rounds; round++ {
		fmt.Fprintf(s.out, "-- Round %d --\n", round)

		for _, blow := range attacker.Race.Blows {
			damage, err := dice.RollString(s.rng, blow.Dice)
			if err != nil {
				return dnderr.Wrapf(err, "failed to roll %s", blow.Dice)
			}

			fmt.Fprintf(s.out, "The %s %s\n", attacker.Name(), s.service.ActionText(blows.MethodByName(blow.Method)))

			result, err := s.service.ResolveBlow(ctx, &melee.BlowInput{
				Attacker: attacker,
				Defender: defender,
				Level:    level,
				Method:   blow.Method,
				Effect:   blow.Effect,
				Damage:   damage.Total,
			})
			if err != nil {
				return err
			}

			for _, msg := range result.Messages {
				fmt.Fprintln(s.out, msg)
			}
			fmt.Fprintf(s.out, "   [%s %d damage, HP %d/%d]\n", result.Effect, result.Damage,
				defender.CurrentHitPoints, defender.MaxHitPoints)

			if result.DefenderDied {
				fmt.Fprintf(s.out, "You were killed by %s.\n", defender.KilledBy)
				return nil
			}
			if result.Blinked {
				fmt.Fprintf(s.out, "There is a puff of smoke!\n")
				return nil
			}
			if result.DoBreak {
				break
			}
		}

		s.endRound(defender)
	}
	return nil
}

// endRound ticks the player's timed effects and prints those that wore off
func (s *Simulator) endRound(defender *player.Player) {
	turnLog := shared.NewMessageLog()
	previous := defender.Messenger()
	defender.SetMessenger(turnLog)
	defender.ProcessTurn()
	defender.SetMessenger(previous)

	for _, msg := range turnLog.Messages() {
		fmt.Fprintln(s.out, msg)
	}
}

// WriteLore prints what has been seen of every race's blows
func WriteLore(out io.Writer, known []*monster.Lore) {
	fmt.Fprintln(out, "-- Monster lore --")
	if len(known) == 0 {
		fmt.Fprintln(out, "Nothing is known yet.")
		return
	}
	for _, race := range known {
		fmt.Fprintf(out, "%s:\n", race.RaceID)
		for _, b := range race.Blows {
			fmt.Fprintf(out, "   %s to %s, seen %d times\n", b.Method, b.Effect, b.Times)
		}
	}
}
