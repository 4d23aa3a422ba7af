package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	gigmarketplace "talentia/contexts/marketplace/gig-marketplace"
	gigpostgres "talentia/contexts/marketplace/gig-marketplace/adapters/postgres"
	talentranking "talentia/contexts/marketplace/talent-ranking"
	rankingpostgres "talentia/contexts/marketplace/talent-ranking/adapters/postgres"
	"talentia/internal/platform/config"
	"talentia/internal/platform/db"
	"talentia/internal/platform/httpserver"
	"talentia/internal/platform/identity"
	"talentia/internal/platform/metrics"
	"talentia/internal/platform/migrations"
	"talentia/internal/platform/ratelimit"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const shutdownTimeout = 10 * time.Second

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *redis.Client
	logger   *slog.Logger
}

type MigrateApp struct {
	postgres *db.Postgres
	seed     bool
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg).With("service", cfg.ServiceName, "process", "api")
	slog.SetDefault(logger)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	verifier, err := identity.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}

	pg, err := connect(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := pg.SQL()
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	gigRepo := gigpostgres.NewRepository(pg.DB, logger)
	gigs := gigmarketplace.NewModule(gigmarketplace.Dependencies{
		Gigs:          gigRepo,
		Applications:  gigRepo,
		Conversations: gigRepo,
		Contracts:     gigRepo,
		Directory:     gigRepo,
		Clock:         gigpostgres.SystemClock{},
		IDGenerator:   gigpostgres.UUIDGenerator{},
		Currency:      cfg.CurrencyCode,
		Logger:        logger,
	})

	talents := talentranking.NewModule(talentranking.Dependencies{
		Source: rankingpostgres.NewRepository(sqlDB, logger),
		Logger: logger,
	})

	var (
		limiter     ratelimit.Limiter
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewRedis(redisClient, cfg.ServiceName+":ratelimit", cfg.RateLimitRPS, cfg.RateLimitBurst, logger)
	} else {
		limiter = ratelimit.NewLocal(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	var registry *metrics.Metrics
	if cfg.EnableMetrics {
		registry = metrics.New()
	}

	server := httpserver.New(gigs, talents, httpserver.Options{
		Identity:      verifier,
		Limiter:       limiter,
		Metrics:       registry,
		EnableSwagger: cfg.EnableSwagger,
	}, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisClient,
		logger:   logger,
	}, nil
}

func BuildMigrate() (*MigrateApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg).With("service", cfg.ServiceName, "process", "migrate")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := connect(cfg)
	if err != nil {
		return nil, err
	}
	return &MigrateApp{
		postgres: pg,
		seed:     cfg.SeedDemoData,
		logger:   logger,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(a.server.Start)
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (a *APIApp) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.postgres != nil {
		errs = append(errs, a.postgres.Close())
	}
	return errors.Join(errs...)
}

func (m *MigrateApp) Run(ctx context.Context) error {
	sqlDB, err := m.postgres.SQL()
	if err != nil {
		return err
	}
	if err := migrations.Apply(ctx, sqlDB); err != nil {
		return err
	}
	m.logger.Info("migrations applied",
		"event", "bootstrap_migrations_applied",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	if !m.seed {
		return nil
	}
	if err := migrations.SeedDemo(ctx, sqlDB); err != nil {
		return err
	}
	m.logger.Info("demo data seeded",
		"event", "bootstrap_demo_seeded",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return nil
}

func (m *MigrateApp) Close() error {
	if m.postgres != nil {
		return m.postgres.Close()
	}
	return nil
}

func connect(cfg config.Config) (*db.Postgres, error) {
	pg, err := db.Connect(cfg.PostgresDSN, db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
