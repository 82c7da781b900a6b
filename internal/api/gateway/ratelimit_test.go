package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestLimiter(t *testing.T, cfg Config) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRateLimiter(rdb, cfg, zap.NewNop()), mr
}

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	rl, _ := newTestLimiter(t, Config{RequestsPerMinute: 3})
	req := httptest.NewRequest(http.MethodPost, "/list-event/", nil)

	for i := 0; i < 3; i++ {
		if res := rl.Check(req, "10.0.0.1"); !res.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if res := rl.Check(req, "10.0.0.1"); res.Allowed {
		t.Error("the fourth request should exceed the budget")
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, Config{RequestsPerMinute: 1})
	req := httptest.NewRequest(http.MethodPost, "/list-event/", nil)

	rl.Check(req, "10.0.0.1")
	if res := rl.Check(req, "10.0.0.1"); res.Allowed {
		t.Error("the first client should be over budget")
	}
	if res := rl.Check(req, "10.0.0.2"); !res.Allowed {
		t.Error("a different client should have its own budget")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl, mr := newTestLimiter(t, Config{RequestsPerMinute: 1})
	req := httptest.NewRequest(http.MethodPost, "/list-event/", nil)

	rl.Check(req, "10.0.0.1")
	if res := rl.Check(req, "10.0.0.1"); res.Allowed {
		t.Fatal("expected the budget to be spent")
	}

	mr.FastForward(61 * time.Second)

	if res := rl.Check(req, "10.0.0.1"); !res.Allowed {
		t.Error("the budget should reset after the window expires")
	}
}

// TestRateLimiter_FailsOpen verifies an unreachable Redis never blocks
// requests.
func TestRateLimiter_FailsOpen(t *testing.T) {
	rl, mr := newTestLimiter(t, Config{RequestsPerMinute: 1})
	mr.Close()

	req := httptest.NewRequest(http.MethodPost, "/list-event/", nil)
	if res := rl.Check(req, "10.0.0.1"); !res.Allowed {
		t.Error("the limiter should fail open when redis is down")
	}
}

func TestMiddleware_RejectsWith429(t *testing.T) {
	rl, _ := newTestLimiter(t, Config{RequestsPerMinute: 1, IncludeHeaders: true})
	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/list-event/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "1" {
		t.Errorf("expected limit header, got %q", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("a limited response should carry Retry-After")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	if got := clientIP(req); got != "192.0.2.1:1234" {
		t.Errorf("expected the remote addr, got %q", got)
	}

	req.Header.Set("X-Real-IP", "198.51.100.7")
	if got := clientIP(req); got != "198.51.100.7" {
		t.Errorf("expected X-Real-IP to win over remote addr, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("expected X-Forwarded-For to win, got %q", got)
	}
}
