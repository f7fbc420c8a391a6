package config

import (
	"os"
	"strconv"

	dnderr "github.com/KirkDiggler/dungeon-melee/internal/errors"
)

// MaxPackSize is the largest pack that still has a letter for every slot
const MaxPackSize = 52

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Melee MeleeConfig
	Lore  LoreConfig
}

// RedisConfig holds Redis-specific configuration. An empty URL and address
// means lore is kept in memory.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// MeleeConfig tunes blow resolution
type MeleeConfig struct {
	// LifeDrainPercent is added to experience drains per hundred points held
	LifeDrainPercent int
	PackSize         int
	// Seed fixes the random source; 0 seeds from the clock
	Seed int64
}

// LoreConfig holds monster lore storage settings
type LoreConfig struct {
	KeyPrefix string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	lifeDrain, err := getEnvAsInt("MELEE_LIFE_DRAIN_PERCENT", 10)
	if err != nil {
		return nil, err
	}
	packSize, err := getEnvAsInt("MELEE_PACK_SIZE", 23)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvAsInt("MELEE_SEED", 0)
	if err != nil {
		return nil, err
	}
	db, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		},
		Melee: MeleeConfig{
			LifeDrainPercent: lifeDrain,
			PackSize:         packSize,
			Seed:             int64(seed),
		},
		Lore: LoreConfig{
			KeyPrefix: getEnvOrDefault("LORE_KEY_PREFIX", "lore"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Melee.LifeDrainPercent < 0 {
		return dnderr.Validation("life drain percent cannot be negative").
			WithMeta("MELEE_LIFE_DRAIN_PERCENT", c.Melee.LifeDrainPercent)
	}
	if c.Melee.PackSize < 1 || c.Melee.PackSize > MaxPackSize {
		return dnderr.Validationf("pack size must be between 1 and %d", MaxPackSize).
			WithMeta("MELEE_PACK_SIZE", c.Melee.PackSize)
	}
	if c.Redis.DB < 0 {
		return dnderr.Validation("redis db cannot be negative").WithMeta("REDIS_DB", c.Redis.DB)
	}
	if c.Lore.KeyPrefix == "" {
		return dnderr.Validation("lore key prefix is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, dnderr.InvalidArgumentf("%s must be a whole number", key).WithMeta("value", value)
	}
	return intValue, nil
}
