package redis

import (
	"context"
	"fmt"
	"time"

	"ledger-explorer/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// PageCache implements ports.PageCache using Redis. It holds raw upstream
// page payloads keyed by request path and query, so repeated listing hits
// within the TTL skip the ledger API round trip.
type PageCache struct {
	client *goredis.Client
	prefix string
}

// NewPageCache creates a new Redis-backed page cache.
func NewPageCache(client *goredis.Client) *PageCache {
	return &PageCache{
		client: client,
		prefix: "page:",
	}
}

// Get retrieves a cached page payload.
// Returns nil, nil if the key does not exist.
func (c *PageCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, apperror.ErrCacheError(fmt.Errorf("redis page get: %w", err))
	}
	return val, nil
}

// Set stores a page payload with TTL.
func (c *PageCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return apperror.ErrCacheError(fmt.Errorf("redis page set: %w", err))
	}
	return nil
}
