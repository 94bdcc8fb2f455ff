// Command dashboard serves the therapist directory admin dashboard.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/therapist-admin/handler"
	"github.com/dmitrymomot/therapist-admin/modules/dashboard"
	"github.com/dmitrymomot/therapist-admin/modules/dashboard/views"
	"github.com/dmitrymomot/therapist-admin/pkg/config"
	"github.com/dmitrymomot/therapist-admin/pkg/environment"
	"github.com/dmitrymomot/therapist-admin/pkg/httpserver"
	"github.com/dmitrymomot/therapist-admin/pkg/logger"
	"github.com/dmitrymomot/therapist-admin/pkg/metrics"
	"github.com/dmitrymomot/therapist-admin/pkg/pg"
	"github.com/dmitrymomot/therapist-admin/pkg/redis"
	"github.com/dmitrymomot/therapist-admin/pkg/requestid"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
	"github.com/dmitrymomot/therapist-admin/svc/quality"
	"github.com/dmitrymomot/therapist-admin/svc/remediation"
)

func main() {
	var cfg settings
	config.MustLoad(&cfg)

	log := newLogger(cfg.App)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("dashboard stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		if lvl, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}
	return logger.New(opts...)
}

func run(ctx context.Context, cfg settings, log *slog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	var checks []httpserver.Check

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()
	if store.pool != nil {
		checks = append(checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(store.pool)})
	}

	cache, closeCache, err := openCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()
	if cache.check != nil {
		checks = append(checks, *cache.check)
	}

	scanner := quality.NewScanner(store.Store,
		quality.WithCache(cache.Cache),
		quality.WithMetrics(quality.NewMetrics(reg)),
		quality.WithLimits(cfg.App.ScanLimit, cfg.App.ScanLimit),
		quality.WithLogger(log),
	)

	remOpts := []remediation.Option{
		remediation.WithMetrics(remediation.NewMetrics(reg)),
		remediation.WithLogger(log),
		remediation.WithOnApplied(func(ctx context.Context, _ remediation.Edit) {
			_ = scanner.Invalidate(ctx)
		}),
	}
	if cfg.App.RemediationValidate {
		remOpts = append(remOpts, remediation.WithValidation(remediation.FieldValidation()))
	}

	svc := dashboard.NewService(
		dashboard.Config{
			ScanLimit:   cfg.App.ScanLimit,
			BrowseLimit: cfg.App.BrowseLimit,
		},
		scanner,
		remediation.NewService(store.Store, remOpts...),
		store.Store,
		views.Dashboard(),
		handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		}),
		dashboard.WithLogger(log),
	)

	router := dashboard.Router(dashboard.RouterOptions{
		Dashboard: svc,
		Metrics:   metrics.Handler(reg),
		Liveness:  httpserver.LivenessHandler(),
		Readiness: httpserver.ReadinessHandler(log, checks...),
		Middlewares: []func(http.Handler) http.Handler{
			requestid.Middleware,
			httpserver.Recover(log),
			environment.Middleware(cfg.App.Env),
			metrics.NewHTTP(reg).Middleware,
			httpserver.AccessLog(log, httpserver.AccessLogConfig{
				SkipPaths: []string{"/health/live", "/health/ready", "/metrics"},
			}),
		},
	})

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

type storeHandle struct {
	directory.Store
	pool *pgxpool.Pool
}

func openStore(ctx context.Context, cfg settings, log *slog.Logger) (storeHandle, func(), error) {
	if cfg.App.Store == storeMemory {
		log.Warn("using in-memory store with sample data")
		return storeHandle{Store: directory.NewMemoryStore(directory.SampleTherapists()...)}, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return storeHandle{}, nil, err
	}

	if cfg.PG.Migrate {
		if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
			pool.Close()
			return storeHandle{}, nil, err
		}
	}

	store := directory.NewPostgresStore(pool)
	if cfg.App.Seed {
		if err := store.Insert(ctx, directory.SampleTherapists()...); err != nil {
			pool.Close()
			return storeHandle{}, nil, err
		}
		log.Info("sample therapists seeded")
	}

	return storeHandle{Store: store, pool: pool}, pool.Close, nil
}

type cacheHandle struct {
	quality.Cache
	check *httpserver.Check
}

// openCache prefers Redis so replicas share summaries. Without REDIS_URL the
// cache lives in process.
func openCache(ctx context.Context, cfg settings, log *slog.Logger) (cacheHandle, func(), error) {
	if !cfg.Redis.Enabled() {
		return cacheHandle{Cache: quality.NewMemoryCache(cfg.App.SummaryCacheTTL)}, func() {}, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return cacheHandle{}, nil, err
	}
	log.Info("quality cache backed by redis")

	rcfg := cfg.Redis
	rcfg.KeyPrefix += "quality:"
	return cacheHandle{
		Cache: quality.NewRedisCache(redis.NewStorageWithConfig(client, rcfg), cfg.App.SummaryCacheTTL),
		check: &httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
	}, func() { _ = client.Close() }, nil
}
