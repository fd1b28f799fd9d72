// search.go provides a Valkey-backed cache for shaped search responses.
// The engine is fast, but popular queries ("tylenol") repeat constantly,
// so the final JSON envelope is cached per query as the client sent it;
// the envelope echoes that text back, so differently cased spellings of
// the same query get their own entries. The cache is strictly
// best-effort: every error degrades to a recompute, and the whole cache
// is dropped when the search index is rebuilt.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// searchKeyPrefix is the Valkey key prefix for cached search responses.
	searchKeyPrefix = "search:"

	// DefaultSearchTTL is how long a cached search response stays valid.
	DefaultSearchTTL = time.Minute
)

// SearchCache caches shaped search response bodies in Valkey, keyed by
// query text. A nil *SearchCache is a valid no-op cache, so callers
// never branch on whether Valkey is configured.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a search cache backed by the given Valkey client.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl == 0 {
		ttl = DefaultSearchTTL
	}
	return &SearchCache{client: client, ttl: ttl}
}

// Get retrieves the cached response body for a query.
func (sc *SearchCache) Get(ctx context.Context, query string) ([]byte, bool) {
	if sc == nil {
		return nil, false
	}
	val, err := sc.client.Get(ctx, searchKeyPrefix+query).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("search cache get error", "query", query, "error", err)
		return nil, false
	}
	slog.Debug("search cache hit", "query", query)
	return val, true
}

// Set stores a response body for a query with the configured TTL.
func (sc *SearchCache) Set(ctx context.Context, query string, body []byte) {
	if sc == nil {
		return
	}
	if err := sc.client.Set(ctx, searchKeyPrefix+query, body, sc.ttl).Err(); err != nil {
		slog.Warn("search cache set error", "query", query, "error", err)
	}
}

// InvalidateAll removes every cached search response. Called after each
// index rebuild, since any result set could have changed.
func (sc *SearchCache) InvalidateAll(ctx context.Context) {
	if sc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, next, err := sc.client.Scan(ctx, cursor, searchKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("search cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("search cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("search cache cleared", "deleted", deleted)
	}
}
