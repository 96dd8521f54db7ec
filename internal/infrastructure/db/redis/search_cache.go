package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

const defaultSearchTTL = 30 * time.Second

// SearchCache keeps serialized search results for a short window so repeated
// identical queries skip the document store. Staleness is bounded by the TTL;
// a fresh partner claim shows up within it.
// Key format: search:<lowercased query>
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache wraps the given Redis client. ttl <= 0 selects the default.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = defaultSearchTTL
	}
	return &SearchCache{client: client, ttl: ttl}
}

// Get returns the cached result for query, or nil on a miss.
func (c *SearchCache) Get(ctx context.Context, query string) (*ports.SearchResult, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search cache get: %w", err)
	}

	var result ports.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("search cache decode: %w", err)
	}
	return &result, nil
}

// Set stores result for query, expiring after the cache TTL.
func (c *SearchCache) Set(ctx context.Context, query string, result *ports.SearchResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(query), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("search cache set: %w", err)
	}
	return nil
}

func (c *SearchCache) key(query string) string {
	return "search:" + strings.ToLower(query)
}
