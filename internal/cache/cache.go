// Package cache is a thin Redis-backed response cache for engine proxy
// reads. A nil *Cache is valid and means caching is off; every method is a
// no-op then, so callers never branch on configuration.
package cache

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores raw response bodies under a short TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache around an existing Redis client.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached body for key, or nil when absent or disabled.
// Cache trouble must never fail a dashboard read, so errors are logged and
// reported as misses.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get %s: %v", key, err)
		}
		return nil
	}
	return data
}

// Set stores body under the cache TTL. Errors are logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, body []byte) {
	if c == nil || c.client == nil || len(body) == 0 {
		return
	}
	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

// Key builds a namespaced cache key from route and scope parts.
func Key(parts ...string) string {
	return "shell:proxy:" + strings.Join(parts, ":")
}
