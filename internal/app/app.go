// Package app wires configuration, storage, use cases and the HTTP server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vadimbarashkov/linkstats/internal/adapter/geoip"
	"github.com/vadimbarashkov/linkstats/internal/adapter/ratelimit"
	"github.com/vadimbarashkov/linkstats/internal/adapter/repository/cache"
	"github.com/vadimbarashkov/linkstats/internal/config"
	"github.com/vadimbarashkov/linkstats/internal/usecase"
	"github.com/vadimbarashkov/linkstats/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/linkstats/internal/adapter/delivery/http"
	repository "github.com/vadimbarashkov/linkstats/internal/adapter/repository/postgres"
)

// NewLogger builds the request logger for env: JSON at info level in stage and
// prod, concise text at debug level in dev.
func NewLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel: slog.LevelInfo,
		JSON:     true,
		Tags: map[string]string{
			"env": env,
		},
	}

	if env == config.EnvDev {
		opts.LogLevel = slog.LevelDebug
		opts.JSON = false
		opts.Concise = true
	}

	return httplog.NewLogger("linkstats", opts)
}

type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func newLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (limiter, func() error, error) {
	const op = "app.newLimiter"

	if cfg.Redis.Addr == "" {
		logger.Info("redis address is empty, using in-memory rate limiter")
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("%s: failed to connect to redis: %w", op, err)
	}

	return ratelimit.NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window), client.Close, nil
}

func Run(ctx context.Context, cfg *config.Config, logger *httplog.Logger) error {
	const op = "app.Run"

	loc, err := cfg.Analytics.Location()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	db, err := postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		postgres.WithConnectAttempts(cfg.Postgres.ConnectAttempts, 0),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	version, err := postgres.RunMigrations(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}
	logger.Info("database schema is up to date", slog.Uint64("version", uint64(version)))

	locator, err := geoip.Open(cfg.GeoIP.DBPath, logger.Logger)
	if err != nil {
		return fmt.Errorf("%s: failed to open geoip database: %w", op, err)
	}
	defer locator.Close()

	rl, closeLimiter, err := newLimiter(ctx, cfg, logger.Logger)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeLimiter()

	linkRepo, err := cache.NewLinkRepository(repository.NewLinkRepository(db), cfg.LinkCache.Size)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	clickRepo := repository.NewClickRepository(db)

	linkUseCase := usecase.NewLinkUseCase(cfg.ShortCodeLength, linkRepo, clickRepo, locator)
	analyticsUseCase := usecase.NewAnalyticsUseCase(
		linkRepo,
		clickRepo,
		usecase.WithLocation(loc),
		usecase.WithQueryTimeout(cfg.Analytics.QueryTimeout),
		usecase.WithBaseURL(cfg.BaseURL),
	)

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("jwt secret is empty, authenticated routes will reject every request")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "linkstats"),
	)

	r := delivery.NewRouter(logger, linkUseCase, analyticsUseCase, delivery.Options{
		BaseURL:   cfg.BaseURL,
		JWTSecret: []byte(cfg.Auth.JWTSecret),
		Limiter:   rl,
		Metrics:   delivery.NewMetrics(registry),
	})

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        r,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		logger.Info("starting http server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down http server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
