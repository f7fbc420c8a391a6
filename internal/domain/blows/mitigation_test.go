package blows_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	mockdice "github.com/KirkDiggler/dungeon-melee/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/blows"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestAdjustArmor(t *testing.T) {
	tests := []struct {
		name   string
		damage int
		ac     int
		want   int
	}{
		{name: "no armour", damage: 40, ac: 0, want: 40},
		{name: "some armour", damage: 40, ac: 50, want: 35},
		{name: "elemental bonus armour", damage: 40, ac: 100, want: 30},
		{name: "capped armour", damage: 100, ac: 240, want: 40},
		{name: "armour beyond the cap", damage: 100, ac: 1000, want: 40},
		{name: "no damage", damage: 0, ac: 100, want: 0},
		{name: "negative armour counts as none", damage: 10, ac: -5, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blows.AdjustArmor(tt.damage, tt.ac))
		})
	}
}

func TestAdjustArmor_Monotonic(t *testing.T) {
	for damage := 0; damage <= 200; damage += 7 {
		prev := damage
		for ac := 0; ac <= 300; ac += 10 {
			got := blows.AdjustArmor(damage, ac)
			assert.LessOrEqual(t, got, prev)
			assert.GreaterOrEqual(t, got, 0)
			prev = got
		}
	}
}

func TestAdjustElemental(t *testing.T) {
	tests := []struct {
		name   string
		resist int
		elem   shared.Element
		rolls  []int
		want   int
	}{
		{name: "immune", resist: shared.ResistImmune, elem: shared.ElementFire, want: 0},
		{name: "vulnerable", resist: shared.ResistVulnerable, elem: shared.ElementFire, want: 40},
		{name: "resists base element", resist: shared.ResistResists, elem: shared.ElementFire, want: 10},
		{name: "resists poison", resist: shared.ResistResists, elem: shared.ElementPoison, want: 10},
		{name: "resists chaos, low roll", resist: shared.ResistResists, elem: shared.ElementChaos, rolls: []int{0}, want: 25},
		{name: "resists chaos, high roll", resist: shared.ResistResists, elem: shared.ElementChaos, rolls: []int{5}, want: 15},
		{name: "no resistance", resist: shared.ResistNone, elem: shared.ElementCold, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := mockdice.NewManualMockRoller(tt.rolls...)
			assert.Equal(t, tt.want, blows.AdjustElemental(tt.resist, tt.elem, 30, rng))
			assert.Equal(t, 0, rng.Remaining())
		})
	}
}

func TestSavingThrow_Boundaries(t *testing.T) {
	assert.True(t, blows.SavingThrow(mockdice.NewManualMockRoller(29), 30))
	assert.False(t, blows.SavingThrow(mockdice.NewManualMockRoller(30), 30))
	assert.False(t, blows.SavingThrow(mockdice.NewManualMockRoller(0), 0))
	assert.True(t, blows.SavingThrow(mockdice.NewManualMockRoller(99), 100))
}

func TestSavingThrow_MatchesSkill(t *testing.T) {
	rng := dice.NewSeededRoller(1234)
	const trials = 100000

	for _, skill := range []int{5, 37, 80} {
		saved := 0
		for i := 0; i < trials; i++ {
			if blows.SavingThrow(rng, skill) {
				saved++
			}
		}
		assert.InDelta(t, float64(skill)/100, float64(saved)/trials, 0.01, "skill %d", skill)
	}
}
