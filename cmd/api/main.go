package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-priority/internal/api/http"
	"github.com/spec-kit/helpdesk-priority/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-priority/internal/broker"
	"github.com/spec-kit/helpdesk-priority/internal/config"
	"github.com/spec-kit/helpdesk-priority/internal/events"
	"github.com/spec-kit/helpdesk-priority/internal/observability"
	"github.com/spec-kit/helpdesk-priority/internal/service"
	"github.com/spec-kit/helpdesk-priority/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger = logger.With(zap.String("service", cfg.App.Name), zap.String("version", cfg.App.Version))

	classifier, _, err := service.LoadClassifier(cfg.Priority, logger)
	if err != nil {
		logger.Fatal("failed to load priority rules", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)

	var (
		readiness handlers.Pinger
		relay     *worker.RelayWorker
	)
	if cfg.Events.RedisEnabled {
		redis := broker.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		readiness = redis

		relay = worker.NewRelayWorker(events.NewRedisRelay(redis, cfg.Events.RedisChannel, logger, metrics), logger, 0)
		relay.RegisterHandlers(dispatcher, events.EventTicketPriorityAssigned)
		relay.Start()
	}

	priorities := service.NewPriorityService(classifier, metrics, logger)
	triage := service.NewTriageService(priorities, dispatcher, logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env != "development",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		Priority: handlers.NewPriorityHandler(priorities),
		Triage:   handlers.NewTriageHandler(triage),
		Metrics:  metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()
	logger.Info("listening", zap.String("addr", cfg.App.Addr()))

	waitForShutdown(logger)

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	if relay != nil {
		if err := relay.Stop(shutdownCtx); err != nil {
			logger.Warn("relay worker did not drain", zap.Error(err))
		}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
