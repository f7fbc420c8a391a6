package lore

import (
	"context"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

// Repository stores what the player has learned about each monster race
type Repository interface {
	// Get returns the lore for a race, or a NotFound error
	Get(ctx context.Context, raceID string) (*monster.Lore, error)
	Save(ctx context.Context, lore *monster.Lore) error
	// RecordBlow counts one observed blow, creating the race's lore if needed
	RecordBlow(ctx context.Context, raceID, method, effect string) (*monster.Lore, error)
	// List returns lore for the given races, or every known race when none
	// are given. Unknown races are skipped.
	List(ctx context.Context, raceIDs ...string) ([]*monster.Lore, error)
}
