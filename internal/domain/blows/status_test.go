package blows_test

import (
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	"go.uber.org/mock/gomock"
)

func (s *BlowsTestSuite) TestTimed_Terrify() {
	s.player.SavingThrow = 50

	s.Run("saving throw holds", func() {
		// 3+1d10 turns, then a save roll of 10 against 50
		ctx := s.hit("TERRIFY", "GAZE", 0, 0, rolls(2, 10))

		s.True(ctx.Obvious)
		s.False(s.player.TimedActive(conditions.Afraid))
		s.Contains(s.msgs.Drain(), "You stand your ground!")
	})

	s.Run("failed save terrifies", func() {
		ctx := s.hit("TERRIFY", "GAZE", 0, 0, rolls(2, 80))

		s.True(ctx.Obvious)
		s.Equal(6, s.player.Timed().Remaining(conditions.Afraid))
		s.Contains(s.msgs.Drain(), "You are terrified!")
	})

	held, known := s.orc.Knows(shared.TraitProtFear)
	s.True(known)
	s.False(held)
}

func (s *BlowsTestSuite) TestTimed_SaveAndTimerExclusive() {
	rng := dice.NewSeededRoller(42)
	saves := 0
	const trials = 2000

	for i := 0; i < trials; i++ {
		s.msgs = shared.NewMessageLog()
		s.player = newTestPlayer(s.msgs)
		s.player.SavingThrow = 30

		ctx := s.hit("TERRIFY", "WAIL", 0, 0, rng)

		saved := false
		for _, m := range s.msgs.Messages() {
			if m == "You stand your ground!" {
				saved = true
			}
		}
		s.NotEqual(saved, s.player.TimedActive(conditions.Afraid))
		s.True(ctx.Obvious)
		if saved {
			saves++
		}
	}

	s.InDelta(0.30, float64(saves)/trials, 0.05)
}

func (s *BlowsTestSuite) TestTimed_Blind() {
	ctx := s.hit("BLIND", "GAZE", 0, 0, rolls(4))
	s.True(ctx.Obvious)
	s.Equal(15, s.player.Timed().Remaining(conditions.Blinded))

	s.player = newTestPlayer(s.msgs)
	s.player.GrantTrait(shared.TraitProtBlind)
	ctx = s.hit("BLIND", "GAZE", 0, 0, rolls(4))
	s.False(ctx.Obvious)
	s.False(s.player.TimedActive(conditions.Blinded))

	held, known := s.orc.Knows(shared.TraitProtBlind)
	s.True(known)
	s.True(held)
}

func (s *BlowsTestSuite) TestTimed_MaxedTimerIsNotObvious() {
	s.player.Timed().Set(conditions.Confused, conditions.MaxDuration)

	ctx := s.hit("CONFUSE", "HIT", 0, 0, rolls(0))

	s.False(ctx.Obvious)
	s.Equal(conditions.MaxDuration, s.player.Timed().Remaining(conditions.Confused))
}

func (s *BlowsTestSuite) TestTimed_ParalyzeRaisesZeroDamage() {
	s.player.Timed().Set(conditions.Paralyzed, 3)

	ctx := s.hit("PARALYZE", "TOUCH", 0, 0, rolls(0, 99))

	s.Equal(1, ctx.Damage)
	s.Equal(99, s.player.CurrentHitPoints)
	s.False(ctx.Obvious, "paralysis does not stack")
	s.Equal(3, s.player.Timed().Remaining(conditions.Paralyzed))
}

func (s *BlowsTestSuite) TestTimed_Paralyze() {
	ctx := s.hit("PARALYZE", "TOUCH", 0, 0, rolls(1, 99))

	s.Equal(0, ctx.Damage)
	s.True(ctx.Obvious)
	s.Equal(5, s.player.Timed().Remaining(conditions.Paralyzed))

	s.player = newTestPlayer(s.msgs)
	s.player.GrantTrait(shared.TraitFreeAct)
	ctx = s.hit("PARALYZE", "TOUCH", 0, 0, rolls(1, 99))
	s.False(ctx.Obvious)
	s.False(s.player.TimedActive(conditions.Paralyzed))
}

func (s *BlowsTestSuite) TestTimed_DeathSkipsEverything() {
	ctx := s.hit("BLIND", "HIT", 200, 0, rolls(4))

	s.True(s.player.IsDead())
	s.False(ctx.Obvious)
	s.False(s.player.TimedActive(conditions.Blinded))
	_, known := s.orc.Knows(shared.TraitProtBlind)
	s.False(known)
}

func (s *BlowsTestSuite) TestLoseStat() {
	s.effects.EXPECT().DrainStat(shared.StatStr).Return(true)

	ctx := s.hit("LOSE_STR", "TOUCH", 5, 0, rolls())

	s.True(ctx.Obvious)
	s.Equal(95, s.player.CurrentHitPoints)
}

func (s *BlowsTestSuite) TestLoseStat_NothingDrained() {
	s.effects.EXPECT().DrainStat(shared.StatWis).Return(false)

	ctx := s.hit("LOSE_WIS", "TOUCH", 0, 0, rolls())

	s.False(ctx.Obvious)
}

func (s *BlowsTestSuite) TestLoseAll_Order() {
	gomock.InOrder(
		s.effects.EXPECT().DrainStat(shared.StatStr).Return(false),
		s.effects.EXPECT().DrainStat(shared.StatDex).Return(false),
		s.effects.EXPECT().DrainStat(shared.StatCon).Return(true),
		s.effects.EXPECT().DrainStat(shared.StatInt).Return(false),
		s.effects.EXPECT().DrainStat(shared.StatWis).Return(false),
	)

	ctx := s.hit("LOSE_ALL", "TOUCH", 0, 0, rolls())

	s.True(ctx.Obvious)
}

func (s *BlowsTestSuite) TestLoseStat_DeadDefender() {
	// No DrainStat expectation: the mock fails the test if one is made
	ctx := s.hit("LOSE_ALL", "HIT", 500, 0, rolls())

	s.True(s.player.IsDead())
	s.False(ctx.Obvious)
}

func (s *BlowsTestSuite) TestDrainExperience() {
	tenFives := repeat(5, 10)

	s.Run("full drain without hold life", func() {
		ctx := s.hit("EXP_10", "TOUCH", 0, 0, rolls(tenFives...))

		// Queued 5s roll sixes: 60 plus a tenth of the experience per hundred points
		s.True(ctx.Obvious)
		s.Equal(840, s.player.Exp)
		s.Contains(s.msgs.Drain(), "You feel your life draining away!")
		held, known := s.orc.Knows(shared.TraitHoldLife)
		s.True(known)
		s.False(held)
	})

	s.Run("hold life cuts the drain", func() {
		s.player = newTestPlayer(s.msgs)
		s.player.GrantTrait(shared.TraitHoldLife)

		ctx := s.hit("EXP_10", "TOUCH", 0, 0, rolls(append(tenFives, 99)...))

		s.True(ctx.Obvious)
		s.Equal(984, s.player.Exp)
		s.Contains(s.msgs.Drain(), "You feel your life slipping away!")
	})

	s.Run("hold life blocks the drain", func() {
		s.player = newTestPlayer(s.msgs)
		s.player.GrantTrait(shared.TraitHoldLife)

		s.hit("EXP_10", "TOUCH", 0, 0, rolls(append(tenFives, 0)...))

		s.Equal(1000, s.player.Exp)
		s.Contains(s.msgs.Drain(), "You keep hold of your life force!")
		held, _ := s.orc.Knows(shared.TraitHoldLife)
		s.True(held)
	})

	s.Run("dead defenders lose nothing", func() {
		s.player = newTestPlayer(s.msgs)

		ctx := s.hit("EXP_80", "HIT", 500, 0, rolls())

		s.True(ctx.Obvious)
		s.True(s.player.IsDead())
		s.Equal(1000, s.player.Exp)
	})
}

func (s *BlowsTestSuite) TestDrainExperience_Tiers() {
	tests := []struct {
		effect string
		dice   int
	}{
		{effect: "EXP_10", dice: 10},
		{effect: "EXP_20", dice: 20},
		{effect: "EXP_40", dice: 40},
		{effect: "EXP_80", dice: 80},
	}

	for _, tt := range tests {
		s.Run(tt.effect, func() {
			s.player = newTestPlayer(s.msgs)
			s.player.Exp = 100000
			s.player.MaxExp = 100000

			// Every die shows one
			s.hit(tt.effect, "TOUCH", 0, 0, rolls(repeat(0, tt.dice)...))

			s.Equal(100000-tt.dice-10000, s.player.Exp)
		})
	}
}

func (s *BlowsTestSuite) TestOrdinaryAttackerLearnsOnAFlip() {
	ordinary := func() {
		s.orc = newTestOrc()
		s.orc.Race = &monster.Race{ID: "cave-orc", Name: "Cave orc", Level: 10}
	}

	s.Run("a zero flip forgets", func() {
		ordinary()
		rng := rolls(append(repeat(5, 10), 0)...)
		s.hit("EXP_10", "TOUCH", 0, 0, rng)

		_, known := s.orc.Knows(shared.TraitHoldLife)
		s.False(known)
		s.Equal(0, rng.Remaining())
	})

	s.Run("a one flip remembers", func() {
		ordinary()
		rng := rolls(append(repeat(5, 10), 1)...)
		s.hit("EXP_10", "TOUCH", 0, 0, rng)

		held, known := s.orc.Knows(shared.TraitHoldLife)
		s.True(known)
		s.False(held)
		s.Equal(0, rng.Remaining())
	})

	s.Run("smart attackers take no flip", func() {
		s.orc = newTestOrc()
		rng := rolls(append(repeat(5, 10), 0)...)
		s.hit("EXP_10", "TOUCH", 0, 0, rng)

		_, known := s.orc.Knows(shared.TraitHoldLife)
		s.True(known)
		s.Equal(1, rng.Remaining())
	})
}
