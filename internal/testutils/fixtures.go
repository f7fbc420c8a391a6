package testutils

import (
	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/player"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// CreateTestPlayer creates a level 13 player with 100 hit points, 100 gold,
// no saving throw and average dexterity
func CreateTestPlayer(id string, msgs shared.Messenger) *player.Player {
	p := player.New(&player.Config{
		ID:        id,
		Name:      "Tester",
		Exp:       1000,
		HitPoints: 100,
		Stats:     [5]int{16, 12, 12, 10, 14},
		Coins:     100,
		Depth:     5,
		Messages:  msgs,
	})
	p.MoveTo(shared.Point{X: 11, Y: 10})
	p.ClearRedraws()
	return p
}

// CreateTestRace creates a monster race
func CreateTestRace(id, name string, level int, blows ...monster.Blow) *monster.Race {
	return &monster.Race{
		ID:    id,
		Name:  name,
		Level: level,
		Blows: blows,
		Smart: true,
	}
}

// CreateTestMonster creates a full health monster of race standing next to
// the test player
func CreateTestMonster(id string, race *monster.Race, hp int) *monster.Monster {
	m := monster.New(id, race, hp)
	m.Pos = shared.Point{X: 10, Y: 10}
	return m
}

// CreateTestPack fills a player's pack with a few common items and returns
// them in slot order
func CreateTestPack(p *player.Player, factory *objects.Factory) []*objects.Object {
	food := factory.New(objects.RationOfFood, 3)
	wand := factory.New(objects.WandMagicMissile, 1)
	wand.Pval = 7
	scrolls := factory.New(objects.PhaseDoor, 4)

	items := []*objects.Object{food, wand, scrolls}
	for _, obj := range items {
		if _, err := p.Carry(obj); err != nil {
			panic(err)
		}
	}
	p.ClearRedraws()
	return items
}
