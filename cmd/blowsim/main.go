package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/dungeon-melee/internal/config"
	"github.com/KirkDiggler/dungeon-melee/internal/dice"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/dungeon"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/monster"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/player"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	"github.com/KirkDiggler/dungeon-melee/internal/repositories/lore"
	"github.com/KirkDiggler/dungeon-melee/internal/services/melee"
	"github.com/KirkDiggler/dungeon-melee/internal/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	raceName := flag.String("race", "Cave orc", "Attacking monster's name")
	raceLevel := flag.Int("level", 10, "Attacking monster's level")
	blowList := flag.String("blows", "HIT:HURT:1d8,TOUCH:EAT_GOLD:0", "Comma separated METHOD:EFFECT:DICE blows")
	smart := flag.Bool("smart", true, "The monster learns from every blow instead of half of them")
	stupid := flag.Bool("stupid", false, "The monster never learns from its blows")
	rounds := flag.Int("rounds", 3, "Rounds of blows to simulate")
	depth := flag.Int("depth", 5, "Dungeon depth")
	exp := flag.Int("exp", 1000, "Player experience")
	hp := flag.Int("hp", 100, "Player hit points")
	gold := flag.Int("gold", 250, "Player gold")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	raceBlows, err := ParseBlows(*blowList)
	if err != nil {
		log.Fatalf("Invalid blows: %v", err)
	}

	ctx := context.Background()
	repo := newLoreRepository(ctx, cfg)

	var rng dice.Roller
	if cfg.Melee.Seed != 0 {
		log.Printf("Using seed %d", cfg.Melee.Seed)
		rng = dice.NewSeededRoller(cfg.Melee.Seed)
	} else {
		rng = dice.NewRandomRoller()
	}

	factory := objects.NewFactory(uuid.NewGoogleUUIDGenerator())

	hero := player.New(&player.Config{
		ID:        "hero",
		Name:      "Hero",
		Exp:       *exp,
		HitPoints: *hp,
		Stats:     [5]int{16, 14, 14, 12, 14},
		Coins:     *gold,
		Depth:     *depth,
		PackSize:  cfg.Melee.PackSize,
		Messages:  shared.Discard,
	})
	equip(hero, factory)

	level := dungeon.NewLevel(*depth, 21, 21)
	hero.MoveTo(shared.Point{X: 11, Y: 10})

	race := &monster.Race{
		ID:     strings.ReplaceAll(strings.ToLower(*raceName), " ", "-"),
		Name:   *raceName,
		Level:  *raceLevel,
		Blows:  raceBlows,
		Smart:  *smart && !*stupid,
		Stupid: *stupid,
	}
	attacker := monster.New(uuid.NewGoogleUUIDGenerator().New(), race, 10+*raceLevel*3)
	attacker.Pos = shared.Point{X: 10, Y: 10}
	level.PlaceMonster(attacker.ID(), attacker.Pos)

	service := melee.NewService(&melee.ServiceConfig{
		LoreRepository:   repo,
		Rand:             rng,
		Objects:          factory,
		LifeDrainPercent: cfg.Melee.LifeDrainPercent,
	})

	sim := NewSimulator(service, rng, os.Stdout)
	if err := sim.Run(ctx, attacker, hero, level, *rounds); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	known, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list monster lore: %v", err)
	}
	WriteLore(os.Stdout, known)
}

// newLoreRepository connects to Redis when configured and falls back to
// memory otherwise
func newLoreRepository(ctx context.Context, cfg *config.Config) lore.Repository {
	if !cfg.Redis.Enabled() {
		log.Println("No Redis configured, keeping lore in memory")
		return lore.NewInMemoryRepository(nil)
	}

	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.URL != "" {
		parsed, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory lore")
			return lore.NewInMemoryRepository(nil)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory lore")
		_ = client.Close()
		return lore.NewInMemoryRepository(nil)
	}

	repo, err := lore.NewRedis(&lore.RedisRepoConfig{
		Client:    client,
		KeyPrefix: cfg.Lore.KeyPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create lore repository: %v", err)
	}
	log.Println("Using Redis for monster lore")
	return repo
}

// equip hands the player a starting kit worth stealing and burning
func equip(p *player.Player, factory *objects.Factory) {
	dagger := factory.New(objects.Dagger, 1)
	dagger.ToH, dagger.ToD = 3, 3
	p.Wield(player.SlotWeapon, dagger)

	armour := factory.New(objects.SoftLeatherArmour, 1)
	armour.ToA = 4
	p.Wield(player.SlotBody, armour)

	torch := factory.New(objects.WoodenTorch, 1)
	torch.Timeout = 5000
	p.Wield(player.SlotLight, torch)

	for _, kit := range []struct {
		kind   *objects.Kind
		number int
	}{
		{objects.RationOfFood, 4},
		{objects.CureLightWounds, 2},
		{objects.PhaseDoor, 5},
		{objects.FlaskOfOil, 3},
		{objects.WandMagicMissile, 1},
	} {
		obj := factory.New(kit.kind, kit.number)
		if kit.kind == objects.WandMagicMissile {
			obj.Pval = 10
		}
		if _, err := p.Carry(obj); err != nil {
			log.Printf("[PLAYER] Could not carry %s: %v", obj.Describe(objects.DescBase), err)
		}
	}
	p.ClearRedraws()
}
