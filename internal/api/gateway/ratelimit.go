// Package gateway provides request-level middleware for the API surface.
package gateway

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter enforces a fixed-window per-client request budget backed by
// Redis. When Redis is unreachable the limiter fails open: availability of
// the façade matters more than precise accounting.
type RateLimiter struct {
	redis  *redis.Client
	logger *zap.Logger
	config Config
}

// Config configures the rate limiter.
type Config struct {
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	IncludeHeaders    bool `yaml:"include_headers"`
}

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	Limit      int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// incrScript bumps the window counter and arms its expiry on first hit.
var incrScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

// NewRateLimiter creates a rate limiter.
func NewRateLimiter(redisClient *redis.Client, cfg Config, logger *zap.Logger) *RateLimiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 100
	}
	return &RateLimiter{
		redis:  redisClient,
		logger: logger,
		config: cfg,
	}
}

// Check performs a rate limit check for one client.
func (rl *RateLimiter) Check(r *http.Request, clientID string) *Result {
	ctx := r.Context()
	key := fmt.Sprintf("mispgate:ratelimit:%s:minute", clientID)
	now := time.Now()

	count, err := incrScript.Run(ctx, rl.redis, []string{key}, 60000).Int()
	if err != nil {
		rl.logger.Warn("rate limit check failed, allowing request", zap.Error(err))
		return &Result{Allowed: true, Limit: rl.config.RequestsPerMinute}
	}

	remaining := rl.config.RequestsPerMinute - count
	if remaining < 0 {
		remaining = 0
	}

	ttl, _ := rl.redis.TTL(ctx, key).Result()
	result := &Result{
		Allowed:   count <= rl.config.RequestsPerMinute,
		Remaining: remaining,
		Limit:     rl.config.RequestsPerMinute,
		ResetAt:   now.Add(ttl),
	}
	if !result.Allowed {
		result.RetryAfter = ttl
	}
	return result
}

// Middleware returns an HTTP middleware enforcing the limit per client IP.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := rl.Check(r, clientIP(r))

			if rl.config.IncludeHeaders {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
			}

			if !result.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"error":"rate_limit_exceeded","retry_after":%d}`,
					int(result.RetryAfter.Seconds()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
