package trello

import (
	"context"
	"log/slog"
	"time"

	"cardtracker.app/api/internal/cache"
)

// CachedAPI serves list-name lookups from a cache. Card actions, card info
// and board lists always go upstream.
type CachedAPI struct {
	API
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedAPI(api API, c cache.Cache, ttl time.Duration) *CachedAPI {
	if c == nil {
		c = cache.Nop()
	}
	return &CachedAPI{API: api, cache: c, ttl: ttl}
}

func (c *CachedAPI) List(ctx context.Context, listID string) (*List, error) {
	key := "trello:list:" + listID

	var list List
	if c.lookup(ctx, key, &list) {
		return &list, nil
	}

	fetched, err := c.API.List(ctx, listID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fetched)
	return fetched, nil
}

// Cache failures degrade to upstream calls.
func (c *CachedAPI) lookup(ctx context.Context, key string, dst any) bool {
	hit, err := c.cache.Get(ctx, key, dst)
	if err != nil {
		slog.WarnContext(ctx, "cache lookup failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (c *CachedAPI) store(ctx context.Context, key string, v any) {
	if err := c.cache.Set(ctx, key, v, c.ttl); err != nil {
		slog.WarnContext(ctx, "cache store failed", "key", key, "error", err)
	}
}
