package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	scoringengine "chorepool/contexts/community-experience/scoring-engine"
	scoringpostgres "chorepool/contexts/community-experience/scoring-engine/adapters/postgres"
	scoringredis "chorepool/contexts/community-experience/scoring-engine/adapters/redis"
	poolservice "chorepool/contexts/household-coordination/pool-service"
	requestservice "chorepool/contexts/household-coordination/request-service"
	requestpostgres "chorepool/contexts/household-coordination/request-service/adapters/postgres"
	requestworkers "chorepool/contexts/household-coordination/request-service/application/workers"
	"chorepool/internal/platform/cache"
	"chorepool/internal/platform/config"
	"chorepool/internal/platform/db"
	"chorepool/internal/platform/httpserver"
	"chorepool/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *cache.Redis
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  requestworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	statsRepo := scoringpostgres.NewRepository(pg.DB, logger)
	if err := statsRepo.AutoMigrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}
	requestRepo := requestpostgres.NewRepository(pg.DB, logger)
	if err := requestRepo.AutoMigrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	var redisConn *cache.Redis
	scoringDeps := scoringengine.Dependencies{
		Repository:     statsRepo,
		Clock:          scoringpostgres.SystemClock{},
		LeaderboardTTL: cfg.LeaderboardCacheTTL,
		Logger:         logger,
	}
	if cfg.EnableLeaderboardCache {
		redisConn, err = cache.Connect(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		scoringDeps.Cache = scoringredis.NewCache(redisConn.Client)
	}
	scoringModule := scoringengine.NewModule(scoringDeps)

	// Pool membership is kept in memory for now; it is the only state that is
	// cheap to rebuild and not yet needed across restarts.
	poolsModule := poolservice.NewInMemoryModule(logger)

	requestsModule := requestservice.NewModule(requestservice.Dependencies{
		Requests:      requestRepo,
		Notifications: requestRepo,
		Scoreboard:    scoringModule.Service,
		Clock:         requestpostgres.SystemClock{},
		IDGen:         requestpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	server := httpserver.New(scoringModule, requestsModule, poolsModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisConn,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if !cfg.EnableOutboxRelay {
		return nil, errors.New("outbox relay is disabled, nothing for the worker to run")
	}
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	requestRepo := requestpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: requestworkers.OutboxRelay{
			Outbox:    requestRepo,
			Publisher: kafka,
			Clock:     requestpostgres.SystemClock{},
			Topic:     "requests.lifecycle",
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
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
