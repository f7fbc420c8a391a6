package lore

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	races        map[string]*monster.Lore
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory lore repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &inMemoryRepository{
		races:        make(map[string]*monster.Lore),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Get(ctx context.Context, raceID string) (*monster.Lore, error) {
	if raceID == "" {
		return nil, dnderr.InvalidArgument("race ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lore, exists := r.races[raceID]
	if !exists {
		return nil, dnderr.NotFoundf("no lore for race %s", raceID).WithMeta("race_id", raceID)
	}

	// Return a copy to avoid external modifications
	return lore.Clone(), nil
}

func (r *inMemoryRepository) Save(ctx context.Context, lore *monster.Lore) error {
	if lore == nil {
		return dnderr.InvalidArgument("lore cannot be nil")
	}
	if lore.RaceID == "" {
		return dnderr.InvalidArgument("race ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.races[lore.RaceID] = lore.Clone()
	return nil
}

func (r *inMemoryRepository) RecordBlow(ctx context.Context, raceID, method, effect string) (*monster.Lore, error) {
	if raceID == "" {
		return nil, dnderr.InvalidArgument("race ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lore, exists := r.races[raceID]
	if !exists {
		lore = &monster.Lore{RaceID: raceID}
		r.races[raceID] = lore
	}

	blow := lore.RecordBlow(method, effect)
	lore.UpdatedAt = r.timeProvider.Now()

	log.Printf("[LORE] %s %s/%s seen %d times", raceID, method, effect, blow.Times)
	return lore.Clone(), nil
}

func (r *inMemoryRepository) List(ctx context.Context, raceIDs ...string) ([]*monster.Lore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(raceIDs) == 0 {
		for id := range r.races {
			raceIDs = append(raceIDs, id)
		}
		sort.Strings(raceIDs)
	}

	out := make([]*monster.Lore, 0, len(raceIDs))
	for _, id := range raceIDs {
		if lore, exists := r.races[id]; exists {
			out = append(out, lore.Clone())
		}
	}
	return out, nil
}
