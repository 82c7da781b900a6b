// Package cache provides an optional Redis read-through cache for the
// gateway's list and get actions.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores raw MISP responses keyed by request path and body. Misses and
// Redis errors are equivalent: the caller falls through to the remote call.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a cache over an existing Redis client.
func New(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

// Key derives the cache key for a request.
func Key(path string, body []byte) string {
	sum := sha256.Sum256(body)
	return "mispgate:cache:" + path + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached response for key, if any.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cache read failed", zap.Error(err))
		return nil, false
	}
	return json.RawMessage(val), true
}

// Set stores a response under key. Failures are logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, val json.RawMessage) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, []byte(val), c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.Error(err))
	}
}
