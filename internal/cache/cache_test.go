package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, ttl, zap.NewNop()), mr
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	key := Key("/list-event/", []byte(`{}`))
	payload := json.RawMessage(`{"response":[{"Event":{"id":"1"}}]}`)

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("expected a miss before Set")
	}

	c.Set(ctx, key, payload)

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if string(got) != string(payload) {
		t.Errorf("expected %s, got %s", payload, got)
	}
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	key := Key("/list-tag/", nil)
	c.Set(ctx, key, json.RawMessage(`{"Tag":[]}`))

	mr.FastForward(2 * time.Minute)

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected a miss after the TTL elapsed")
	}
}

// TestCache_KeyVariesWithBody verifies different request bodies never share a
// cache entry even on the same path.
func TestCache_KeyVariesWithBody(t *testing.T) {
	a := Key("/get-event/", []byte(`{"event_id":"1"}`))
	b := Key("/get-event/", []byte(`{"event_id":"2"}`))
	if a == b {
		t.Error("distinct bodies should produce distinct keys")
	}

	again := Key("/get-event/", []byte(`{"event_id":"1"}`))
	if a != again {
		t.Error("the same path and body should produce a stable key")
	}
}

// TestCache_NilReceiver verifies a disabled cache is safe to call through.
func TestCache_NilReceiver(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if _, ok := c.Get(ctx, "any"); ok {
		t.Error("a nil cache should always miss")
	}
	c.Set(ctx, "any", json.RawMessage(`{}`)) // must not panic
}

// TestCache_RedisDownIsAMiss verifies Redis errors degrade to misses so the
// request falls through to the remote call.
func TestCache_RedisDownIsAMiss(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	key := Key("/list-feed/", nil)
	c.Set(ctx, key, json.RawMessage(`{}`))

	mr.Close()

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected a miss when redis is unreachable")
	}
	c.Set(ctx, key, json.RawMessage(`{}`)) // must not panic
}
