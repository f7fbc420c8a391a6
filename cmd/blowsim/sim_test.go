package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	mockdice "github.com/KirkDiggler/dungeon-melee/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
	"github.com/KirkDiggler/dungeon-melee/internal/repositories/lore"
	"github.com/KirkDiggler/dungeon-melee/internal/services/melee"
	mockmelee "github.com/KirkDiggler/dungeon-melee/internal/services/melee/mock"
	"github.com/KirkDiggler/dungeon-melee/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseBlows(t *testing.T) {
	parsed, err := ParseBlows("hit:hurt:1d8, TOUCH:EAT_GOLD:0")
	require.NoError(t, err)
	assert.Equal(t, []monster.Blow{
		{Method: "HIT", Effect: "HURT", Dice: "1d8"},
		{Method: "TOUCH", Effect: "EAT_GOLD", Dice: "0"},
	}, parsed)
}

func TestParseBlows_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: " , "},
		{name: "missing dice", input: "HIT:HURT"},
		{name: "unknown method", input: "TICKLE:HURT:1d4"},
		{name: "bad dice", input: "HIT:HURT:1d0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlows(tt.input)
			require.Error(t, err)
			assert.True(t, dnderr.IsInvalidArgument(err))
		})
	}
}

func newFight(blows ...monster.Blow) (*monster.Monster, *bytes.Buffer) {
	race := testutils.CreateTestRace("cave-orc", "Cave orc", 10, blows...)
	return testutils.CreateTestMonster("orc-1", race, 30), &bytes.Buffer{}
}

func TestSimulator_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmelee.NewMockService(ctrl)

	attacker, out := newFight(
		monster.Blow{Method: "HIT", Effect: "HURT", Dice: "1d8"},
		monster.Blow{Method: "TOUCH", Effect: "EAT_GOLD", Dice: "0"},
	)
	defender := testutils.CreateTestPlayer("player-1", shared.Discard)

	service.EXPECT().ActionText(gomock.Any()).Return("hits you.")
	service.EXPECT().ResolveBlow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *melee.BlowInput) (*melee.BlowResult, error) {
			assert.Equal(t, "HURT", input.Effect)
			assert.Equal(t, 5, input.Damage)
			return &melee.BlowResult{Method: "HIT", Effect: "HURT", Damage: 5, Obvious: true}, nil
		})
	service.EXPECT().ActionText(gomock.Any()).Return("touches you.")
	service.EXPECT().ResolveBlow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *melee.BlowInput) (*melee.BlowResult, error) {
			assert.Equal(t, "EAT_GOLD", input.Effect)
			assert.Equal(t, 0, input.Damage)
			return &melee.BlowResult{
				Method:   "TOUCH",
				Effect:   "EAT_GOLD",
				Obvious:  true,
				Blinked:  true,
				Messages: []string{"Your purse feels lighter.", "15 coins were stolen!"},
			}, nil
		})

	sim := NewSimulator(service, mockdice.NewManualMockRoller(4), out)
	err := sim.Run(context.Background(), attacker, defender, nil, 3)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "-- Round 1 --")
	assert.Contains(t, text, "The Cave orc hits you.")
	assert.Contains(t, text, "The Cave orc touches you.")
	assert.Contains(t, text, "15 coins were stolen!")
	assert.Contains(t, text, "There is a puff of smoke!")
	assert.NotContains(t, text, "-- Round 2 --")
}

func TestSimulator_RunStopsOnDeath(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmelee.NewMockService(ctrl)

	attacker, out := newFight(
		monster.Blow{Method: "BITE", Effect: "HURT", Dice: "20"},
		monster.Blow{Method: "BITE", Effect: "HURT", Dice: "20"},
	)
	defender := testutils.CreateTestPlayer("player-1", shared.Discard)
	defender.KilledBy = "a Cave orc"

	service.EXPECT().ActionText(gomock.Any()).Return("bites you.")
	service.EXPECT().ResolveBlow(gomock.Any(), gomock.Any()).
		Return(&melee.BlowResult{Effect: "HURT", Damage: 20, DefenderDied: true}, nil)

	sim := NewSimulator(service, mockdice.NewManualMockRoller(), out)
	require.NoError(t, sim.Run(context.Background(), attacker, defender, nil, 5))
	assert.Contains(t, out.String(), "You were killed by a Cave orc.")
}

func TestSimulator_RunBreaksRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmelee.NewMockService(ctrl)

	attacker, out := newFight(
		monster.Blow{Method: "HIT", Effect: "SHATTER", Dice: "30"},
		monster.Blow{Method: "HIT", Effect: "HURT", Dice: "2"},
	)
	defender := testutils.CreateTestPlayer("player-1", shared.Discard)

	service.EXPECT().ActionText(gomock.Any()).Return("hits you.").Times(2)
	service.EXPECT().ResolveBlow(gomock.Any(), gomock.Any()).
		Return(&melee.BlowResult{Effect: "SHATTER", Damage: 30, DoBreak: true}, nil).Times(2)

	sim := NewSimulator(service, mockdice.NewManualMockRoller(), out)
	require.NoError(t, sim.Run(context.Background(), attacker, defender, nil, 2))
	assert.Contains(t, out.String(), "-- Round 2 --")
}

func TestSimulator_RunServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmelee.NewMockService(ctrl)

	attacker, out := newFight(monster.Blow{Method: "HIT", Effect: "HURT", Dice: "1d4"})
	defender := testutils.CreateTestPlayer("player-1", shared.Discard)

	boom := errors.New("boom")
	service.EXPECT().ActionText(gomock.Any()).Return("hits you.")
	service.EXPECT().ResolveBlow(gomock.Any(), gomock.Any()).Return(nil, boom)

	sim := NewSimulator(service, mockdice.NewManualMockRoller(0), out)
	err := sim.Run(context.Background(), attacker, defender, nil, 1)
	assert.ErrorIs(t, err, boom)
}

func TestSimulator_RunTicksTimers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockmelee.NewMockService(ctrl)

	attacker, out := newFight(monster.Blow{Method: "TOUCH", Effect: "CONFUSE", Dice: "0"})
	msgs := shared.NewMessageLog()
	defender := testutils.CreateTestPlayer("player-1", msgs)
	require.True(t, defender.IncTimed(conditions.Confused, 1))
	msgs.Drain()

	service.EXPECT().ActionText(gomock.Any()).Return("touches you.")
	service.EXPECT().ResolveBlow(gomock.Any(), gomock.Any()).
		Return(&melee.BlowResult{Effect: "CONFUSE"}, nil)

	sim := NewSimulator(service, mockdice.NewManualMockRoller(), out)
	require.NoError(t, sim.Run(context.Background(), attacker, defender, nil, 1))

	assert.Contains(t, out.String(), "You feel less confused now.")
	assert.False(t, defender.TimedActive(conditions.Confused))
	assert.Same(t, msgs, defender.Messenger())
	assert.Empty(t, msgs.Messages())
}

func TestWriteLore(t *testing.T) {
	repo := lore.NewInMemoryRepository(nil)
	ctx := context.Background()

	out := &bytes.Buffer{}
	known, err := repo.List(ctx)
	require.NoError(t, err)
	WriteLore(out, known)
	assert.Contains(t, out.String(), "Nothing is known yet.")

	for _, effect := range []string{"EAT_GOLD", "EAT_GOLD", "HURT"} {
		_, err := repo.RecordBlow(ctx, "cutpurse", "TOUCH", effect)
		require.NoError(t, err)
	}
	_, err = repo.RecordBlow(ctx, "cave-orc", "HIT", "HURT")
	require.NoError(t, err)

	out.Reset()
	known, err = repo.List(ctx)
	require.NoError(t, err)
	WriteLore(out, known)

	assert.Equal(t, "-- Monster lore --\n"+
		"cave-orc:\n"+
		"   HIT to HURT, seen 1 times\n"+
		"cutpurse:\n"+
		"   TOUCH to EAT_GOLD, seen 2 times\n"+
		"   TOUCH to HURT, seen 1 times\n", out.String())
}
