package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// LoreTestDB keeps test lore away from a developer's real data
const LoreTestDB = 15

// RedisForLore returns a client for lore integration tests. A server named
// by LORE_TEST_REDIS_ADDR is used when set, otherwise one is started in
// Docker.
func RedisForLore(t *testing.T) redis.UniversalClient {
	t.Helper()

	addr := os.Getenv("LORE_TEST_REDIS_ADDR")
	if addr == "" {
		return StartRedisContainer(t)
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   LoreTestDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis at %s not available for testing: %v", addr, err)
	}

	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush lore test database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}
