package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/api"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/broker"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/config"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/monitor"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/service"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/storage/postgres"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/storage/redis"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Hub        *broker.Hub
	Monitor    *monitor.Monitor
	Notifier   *service.Notifier
	cron       *cron.Cron
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient)
	outbox := redis.NewOutbox(redisClient.Client, cfg.Notify.QueueKey)

	hub := broker.NewHub(logger, cfg.WS.QueueSize)

	safetyMonitor := monitor.New(monitor.Config{
		DefaultGrace:          cfg.Monitor.DefaultGrace,
		StatusRefreshInterval: cfg.Monitor.StatusRefreshInterval,
		EvictAfter:            cfg.Monitor.EvictAfter,
	}, logger, hub, outbox)

	var risk service.RiskScorer
	if cfg.Risk.Enabled {
		risk = service.NewRiskClient(logger, cfg.Risk)
	}

	telemetrySvc := service.NewTelemetryService(
		logger,
		storage.Incidents,
		storage.PanicAlerts,
		storage.SafeZones,
		storage.RiskAreas,
		zoneCache,
		safetyMonitor,
		risk,
		outbox,
		hub,
		cfg.Monitor.ZoneCacheTTL,
	)
	incidentSvc := service.NewIncidentService(logger, storage.Incidents, storage.PanicAlerts, hub)
	safeZoneSvc := service.NewSafeZoneService(logger, storage.SafeZones, storage.RiskAreas, zoneCache, hub)

	srv := service.NewService(telemetrySvc, incidentSvc, safeZoneSvc)

	httpServer := api.NewServer(cfg, logger, srv, hub)
	logger.Info("initialized server")

	notifier := service.NewNotifier(logger, cfg.Notify, outbox)

	c := cron.New()
	sweepSpec := fmt.Sprintf("@every %s", cfg.Monitor.SweepInterval)
	if _, err := c.AddFunc(sweepSpec, func() { safetyMonitor.Sweep(ctx) }); err != nil {
		return nil, fmt.Errorf("failed to schedule monitor sweep: %w", err)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Hub:        hub,
		Monitor:    safetyMonitor,
		Notifier:   notifier,
		cron:       c,
	}, nil
}

// StartBackground launches the cron sweeper and the notification
// worker. They stop when ctx is canceled.
func (c *Components) StartBackground(ctx context.Context) {
	c.cron.Start()
	go c.Notifier.Run(ctx)
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	cronCtx := c.cron.Stop()
	<-cronCtx.Done()

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
