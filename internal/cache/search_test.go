package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, searchKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestSearchCacheRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSearchCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := sc.Get(ctx, "tylenol"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	body := []byte(`{"categories":[],"query":"tylenol","total":0}`)
	sc.Set(ctx, "tylenol", body)

	got, ok := sc.Get(ctx, "tylenol")
	if !ok {
		t.Fatal("expected cache hit after Set")
	}
	if string(got) != string(body) {
		t.Errorf("got %q, want %q", got, body)
	}
}

func TestSearchCacheTTLExpiry(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSearchCache(client, 100*time.Millisecond)
	ctx := context.Background()

	sc.Set(ctx, "ibuprofen", []byte("{}"))
	time.Sleep(200 * time.Millisecond)

	if _, ok := sc.Get(ctx, "ibuprofen"); ok {
		t.Error("entry should have expired")
	}
}

func TestSearchCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSearchCache(client, time.Minute)
	ctx := context.Background()

	sc.Set(ctx, "tylenol", []byte("{}"))
	sc.Set(ctx, "eye drops", []byte("{}"))
	sc.InvalidateAll(ctx)

	if _, ok := sc.Get(ctx, "tylenol"); ok {
		t.Error("tylenol should be gone after InvalidateAll")
	}
	if _, ok := sc.Get(ctx, "eye drops"); ok {
		t.Error("eye drops should be gone after InvalidateAll")
	}
}

// A nil cache is the configured-off state; every method must be a no-op.
func TestSearchCacheNilSafe(t *testing.T) {
	var sc *SearchCache
	ctx := context.Background()

	if _, ok := sc.Get(ctx, "tylenol"); ok {
		t.Error("nil cache must never hit")
	}
	sc.Set(ctx, "tylenol", []byte("{}"))
	sc.InvalidateAll(ctx)
}
