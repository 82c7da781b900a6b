// Package api exposes the gateway's HTTP surface: a declarative action table
// dispatched by one generic handler. Every MISP operation is a POST carrying
// its parameters in the body, identifiers included; this non-RESTful
// convention is preserved from the legacy surface for caller compatibility.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lvonguyen/mispgate/internal/cache"
	"github.com/lvonguyen/mispgate/internal/faultlog"
	"github.com/lvonguyen/mispgate/internal/misp"
	"github.com/lvonguyen/mispgate/internal/observability"
)

// Server holds the wired gateway components.
type Server struct {
	logger        *zap.Logger
	client        *misp.Client
	misp          *misp.Services
	faults        *faultlog.Logger
	cache         *cache.Cache // nil when redis is disabled
	metrics       *observability.Metrics
	registry      *prometheus.Registry
	remoteTimeout time.Duration
	extra         []func(http.Handler) http.Handler
}

// Option configures optional server pieces.
type Option func(*Server)

// WithCache enables the redis read cache for list/get actions.
func WithCache(c *cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithMetrics enables Prometheus metrics and the /metrics endpoint.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
		s.metrics = observability.NewMetrics(reg)
	}
}

// WithMiddleware appends extra middleware, e.g. the rate limiter.
func WithMiddleware(mw func(http.Handler) http.Handler) Option {
	return func(s *Server) { s.extra = append(s.extra, mw) }
}

// New creates the server. remoteTimeout bounds every MISP call; the legacy
// surface had none, which let a hung upstream hang requests forever.
func New(logger *zap.Logger, client *misp.Client, faults *faultlog.Logger, remoteTimeout time.Duration, opts ...Option) *Server {
	if remoteTimeout <= 0 {
		remoteTimeout = 30 * time.Second
	}
	s := &Server{
		logger:        logger,
		client:        client,
		misp:          misp.NewServices(client),
		faults:        faults,
		remoteTimeout: remoteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with the full action table mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	for _, mw := range s.extra {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	if s.registry != nil {
		r.Get("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP)
	}

	for _, action := range Table {
		r.Post(action.Path, s.handle(action))
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleReady checks MISP connectivity before reporting ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.client.HealthCheck(r.Context()); err != nil {
		s.logger.Warn("readiness check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// requestLogger logs one line per request through zap.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
