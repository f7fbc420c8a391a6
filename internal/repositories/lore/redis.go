package lore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// DefaultKeyPrefix namespaces lore keys when none is configured
const DefaultKeyPrefix = "lore"

// Data is the stored form of a race's lore
type Data struct {
	RaceID    string     `json:"race_id"`
	Blows     []BlowData `json:"blows"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BlowData is one observed blow
type BlowData struct {
	Method string `json:"method"`
	Effect string `json:"effect"`
	Times  int    `json:"times"`
}

type redisRepo struct {
	client       redis.UniversalClient
	prefix       string
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	KeyPrefix    string
	TimeProvider TimeProvider
}

// NewRedis creates a Redis-backed lore repository
func NewRedis(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dnderr.InvalidArgument("redis client is required")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		prefix:       prefix,
		timeProvider: timeProvider,
	}, nil
}

func (r *redisRepo) raceKey(raceID string) string {
	return fmt.Sprintf("%s:race:%s", r.prefix, raceID)
}

func (r *redisRepo) racesKey() string {
	return fmt.Sprintf("%s:races", r.prefix)
}

func (r *redisRepo) Get(ctx context.Context, raceID string) (*monster.Lore, error) {
	if raceID == "" {
		return nil, dnderr.InvalidArgument("race ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.raceKey(raceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("no lore for race %s", raceID).WithMeta("race_id", raceID)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get lore from Redis").
			WithMeta("race_id", raceID)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeCorrupt, "failed to unmarshal lore data").
			WithMeta("race_id", raceID)
	}

	return toLore(&data), nil
}

func (r *redisRepo) Save(ctx context.Context, lore *monster.Lore) error {
	if lore == nil {
		return dnderr.InvalidArgument("lore cannot be nil")
	}
	if lore.RaceID == "" {
		return dnderr.InvalidArgument("race ID is required")
	}

	jsonData, err := json.Marshal(toLoreData(lore))
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal lore data").WithMeta("race_id", lore.RaceID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.raceKey(lore.RaceID), string(jsonData), 0)
	pipe.SAdd(ctx, r.racesKey(), lore.RaceID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to save lore in Redis").
			WithMeta("race_id", lore.RaceID)
	}

	return nil
}

func (r *redisRepo) RecordBlow(ctx context.Context, raceID, method, effect string) (*monster.Lore, error) {
	lore, err := r.Get(ctx, raceID)
	if err != nil {
		if !dnderr.IsNotFound(err) {
			return nil, err
		}
		lore = &monster.Lore{RaceID: raceID}
	}

	blow := lore.RecordBlow(method, effect)
	lore.UpdatedAt = r.timeProvider.Now()

	if err := r.Save(ctx, lore); err != nil {
		return nil, err
	}

	log.Printf("[LORE] %s %s/%s seen %d times", raceID, method, effect, blow.Times)
	return lore, nil
}

func (r *redisRepo) List(ctx context.Context, raceIDs ...string) ([]*monster.Lore, error) {
	if len(raceIDs) == 0 {
		members, err := r.client.SMembers(ctx, r.racesKey()).Result()
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get lore races from Redis")
		}
		raceIDs = members
	}

	found := make([]*monster.Lore, len(raceIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range raceIDs {
		g.Go(func() error {
			lore, err := r.Get(ctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return dnderr.Wrapf(err, "failed to get lore %s", id)
			}
			found[i] = lore
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*monster.Lore, 0, len(found))
	for _, lore := range found {
		if lore != nil {
			out = append(out, lore)
		}
	}
	return out, nil
}

func toLoreData(lore *monster.Lore) *Data {
	data := &Data{
		RaceID:    lore.RaceID,
		Blows:     make([]BlowData, 0, len(lore.Blows)),
		UpdatedAt: lore.UpdatedAt,
	}
	for _, blow := range lore.Blows {
		data.Blows = append(data.Blows, BlowData{Method: blow.Method, Effect: blow.Effect, Times: blow.Times})
	}
	return data
}

func toLore(data *Data) *monster.Lore {
	lore := &monster.Lore{
		RaceID:    data.RaceID,
		Blows:     make([]*monster.BlowLore, 0, len(data.Blows)),
		UpdatedAt: data.UpdatedAt,
	}
	for _, blow := range data.Blows {
		lore.Blows = append(lore.Blows, &monster.BlowLore{Method: blow.Method, Effect: blow.Effect, Times: blow.Times})
	}
	return lore
}
