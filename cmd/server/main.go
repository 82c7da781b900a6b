// Package main provides the entry point for the mispgate server, a thin
// HTTP façade over a MISP threat-intelligence instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lvonguyen/mispgate/internal/api"
	"github.com/lvonguyen/mispgate/internal/api/gateway"
	"github.com/lvonguyen/mispgate/internal/cache"
	"github.com/lvonguyen/mispgate/internal/config"
	"github.com/lvonguyen/mispgate/internal/faultlog"
	"github.com/lvonguyen/mispgate/internal/misp"
	"github.com/lvonguyen/mispgate/internal/observability"
)

// Version information (injected at build time via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("mispgate %s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting mispgate",
		zap.String("version", Version),
		zap.String("config", *configPath),
		zap.String("misp_url", cfg.MISP.BaseURL))

	client, err := misp.NewClient(misp.Config{
		BaseURL:   cfg.MISP.BaseURL,
		APIKeyEnv: cfg.MISP.APIKeyEnv,
		VerifySSL: cfg.MISP.VerifySSL,
		Timeout:   cfg.MISP.Timeout.Std(),
	})
	if err != nil {
		logger.Fatal("failed to create MISP client", zap.Error(err))
	}
	if !cfg.MISP.VerifySSL {
		logger.Warn("TLS certificate verification for MISP is disabled")
	}

	faults := faultlog.New(faultlog.Config{
		Dir:       cfg.FaultLog.Dir,
		MaxSizeMB: cfg.FaultLog.MaxSizeMB,
	})

	opts := []api.Option{}
	if cfg.Metrics.Enabled {
		opts = append(opts, api.WithMetrics(prometheus.NewRegistry()))
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: os.Getenv(cfg.Redis.PasswordEnv),
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		opts = append(opts, api.WithCache(cache.New(rdb, cfg.Redis.CacheTTL.Std(), logger)))

		if cfg.RateLimit.Enabled {
			limiter := gateway.NewRateLimiter(rdb, gateway.Config{
				RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
				IncludeHeaders:    cfg.RateLimit.IncludeHeaders,
			}, logger)
			opts = append(opts, api.WithMiddleware(limiter.Middleware()))
		}
	} else if cfg.RateLimit.Enabled {
		logger.Warn("rate limiting requested but redis is disabled; limiter not installed")
	}

	srv := api.New(logger, client, faults, cfg.MISP.Timeout.Std(), opts...)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
