package dungeon

import (
	"testing"

	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	mockdice "github.com/KirkDiggler/dungeon-melee/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVictim struct {
	pos    shared.Point
	damage int
	killer string
}

func (v *fakeVictim) Position() shared.Point { return v.pos }
func (v *fakeVictim) MoveTo(p shared.Point)  { v.pos = p }
func (v *fakeVictim) TakeHit(amount int, killer string) {
	v.damage += amount
	v.killer = killer
}

func TestNewLevel(t *testing.T) {
	level := NewLevel(5, 10, 8)

	assert.Equal(t, FeatPermanent, level.Feature(shared.Point{X: 0, Y: 3}))
	assert.Equal(t, FeatPermanent, level.Feature(shared.Point{X: 9, Y: 7}))
	assert.Equal(t, FeatFloor, level.Feature(shared.Point{X: 4, Y: 4}))
	assert.Equal(t, FeatPermanent, level.Feature(shared.Point{X: -1, Y: 4}), "off the map is solid")
	assert.True(t, level.InBoundsFully(shared.Point{X: 1, Y: 1}))
	assert.False(t, level.InBoundsFully(shared.Point{X: 0, Y: 1}))
}

func TestLevel_IsOpen(t *testing.T) {
	level := NewLevel(1, 10, 10)
	spot := shared.Point{X: 3, Y: 3}

	assert.True(t, level.IsOpen(spot))

	level.PlaceMonster("orc-1", spot)
	assert.False(t, level.IsOpen(spot))
	id, ok := level.MonsterAt(spot)
	assert.True(t, ok)
	assert.Equal(t, "orc-1", id)

	level.RemoveMonster(spot)
	assert.True(t, level.IsOpen(spot))

	level.SetFeature(spot, FeatRubble)
	assert.False(t, level.IsOpen(spot))
	assert.Equal(t, "rubble", level.Feature(spot).String())
}

func TestEarthquake_NothingShattered(t *testing.T) {
	level := NewLevel(3, 20, 20)
	victim := &fakeVictim{pos: shared.Point{X: 11, Y: 10}}

	// An empty roller always answers 0, which never passes the 15% check
	changed := level.Earthquake(shared.Point{X: 10, Y: 10}, 8, mockdice.NewManualMockRoller(), victim, nil)

	assert.Equal(t, 0, changed)
	assert.Equal(t, shared.Point{X: 11, Y: 10}, victim.pos)
	assert.Equal(t, 0, victim.damage)
}

func TestEarthquake_VictimDodges(t *testing.T) {
	level := NewLevel(3, 20, 20)
	center := shared.Point{X: 10, Y: 10}
	level.PlaceMonster("attacker", center)
	victim := &fakeVictim{pos: shared.Point{X: 11, Y: 10}}
	msgs := shared.NewMessageLog()

	rng := mockdice.NewManualMockRoller(
		// radius 1 scan, only the victim's grid (fifth) is hit
		0, 0, 0, 0, 99, 0, 0, 0,
		// six more safe neighbours, none replaces the first
		1, 1, 1, 1, 1, 1,
		// quake message, then a clean dodge
		0, 0,
		// new terrain for the shattered grid
		10,
	)

	changed := level.Earthquake(center, 1, rng, victim, msgs)

	assert.Equal(t, 1, changed)
	assert.Equal(t, shared.Point{X: 11, Y: 11}, victim.pos)
	assert.Equal(t, 0, victim.damage)
	assert.Equal(t, []string{"The cave ceiling collapses!", "You nimbly dodge the blast!"}, msgs.Messages())
	assert.Equal(t, FeatGranite, level.Feature(shared.Point{X: 11, Y: 10}))
	assert.Equal(t, 0, rng.Remaining())
}

func TestEarthquake_VictimBashed(t *testing.T) {
	level := NewLevel(3, 20, 20)
	center := shared.Point{X: 10, Y: 10}
	level.PlaceMonster("attacker", center)
	victim := &fakeVictim{pos: shared.Point{X: 11, Y: 10}}
	msgs := shared.NewMessageLog()

	rolls := []int{0, 0, 0, 0, 99, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1}
	// ten d4 faces of 3 (rolled as 2)
	for i := 0; i < 10; i++ {
		rolls = append(rolls, 2)
	}
	rolls = append(rolls, 50)
	rng := mockdice.NewManualMockRoller(rolls...)

	level.Earthquake(center, 1, rng, victim, msgs)

	assert.Equal(t, 30, victim.damage)
	assert.Equal(t, "an earthquake", victim.killer)
	assert.Equal(t, []string{"The cave floor twists in an unnatural way!", "You are bashed by rubble!"}, msgs.Messages())
	assert.Equal(t, FeatQuartz, level.Feature(shared.Point{X: 11, Y: 10}))
}

func TestEarthquake_VictimCrushed(t *testing.T) {
	level := NewLevel(3, 12, 12)
	center := shared.Point{X: 4, Y: 5}
	level.PlaceMonster("attacker", center)
	victim := &fakeVictim{pos: shared.Point{X: 5, Y: 5}}
	for _, d := range neighbours {
		grid := shared.Point{X: 5 + d.X, Y: 5 + d.Y}
		if grid != center {
			level.SetFeature(grid, FeatGranite)
		}
	}
	msgs := shared.NewMessageLog()

	rng := mockdice.NewManualMockRoller(0, 0, 0, 0, 99, 0, 0, 0, 2)
	changed := level.Earthquake(center, 1, rng, victim, msgs)

	assert.Equal(t, 0, changed, "the victim's own grid is left alone")
	assert.Equal(t, CrushDamage, victim.damage)
	assert.Equal(t, shared.Point{X: 5, Y: 5}, victim.pos)
	assert.Equal(t, []string{
		"The cave quakes!  You are pummeled with debris!",
		"You are severely crushed!",
	}, msgs.Messages())
}

func TestEarthquake_ShattersAboutFifteenPercent(t *testing.T) {
	level := NewLevel(10, 60, 60)
	center := shared.Point{X: 30, Y: 30}

	inRange := 0
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			grid := shared.Point{X: x, Y: y}
			if grid != center && shared.Distance(center, grid) <= 8 {
				inRange++
			}
		}
	}
	require.Greater(t, inRange, 100)

	changed := level.Earthquake(center, 8, dice.NewSeededRoller(42), nil, nil)

	assert.Greater(t, changed, inRange*5/100)
	assert.Less(t, changed, inRange*30/100)

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			grid := shared.Point{X: x, Y: y}
			if shared.Distance(center, grid) > 8 && level.InBoundsFully(grid) {
				assert.Equal(t, FeatFloor, level.Feature(grid), "grid %v is out of range", grid)
			}
		}
	}
}

func TestEarthquake_KeepsPermanentWalls(t *testing.T) {
	level := NewLevel(1, 6, 6)
	rolls := make([]int, 0, 200)
	for i := 0; i < 200; i++ {
		rolls = append(rolls, 99)
	}

	level.Earthquake(shared.Point{X: 1, Y: 1}, 20, mockdice.NewManualMockRoller(rolls...), nil, nil)

	for i := 0; i < 6; i++ {
		assert.Equal(t, FeatPermanent, level.Feature(shared.Point{X: i, Y: 0}))
		assert.Equal(t, FeatPermanent, level.Feature(shared.Point{X: 0, Y: i}))
	}
	assert.Equal(t, FeatFloor, level.Feature(shared.Point{X: 1, Y: 1}), "the epicentre is never hit")
	assert.Equal(t, FeatMagma, level.Feature(shared.Point{X: 2, Y: 2}))
}
