package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/account-console/internal/api/http"
	"github.com/spec-kit/account-console/internal/api/http/handlers"
	"github.com/spec-kit/account-console/internal/auth"
	"github.com/spec-kit/account-console/internal/config"
	"github.com/spec-kit/account-console/internal/events"
	"github.com/spec-kit/account-console/internal/observability"
	"github.com/spec-kit/account-console/internal/persistence"
	"github.com/spec-kit/account-console/internal/profile"
	"github.com/spec-kit/account-console/internal/repository"
	"github.com/spec-kit/account-console/internal/service"
	"github.com/spec-kit/account-console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var auditRepo repository.AuditRepository
	if pg.Enabled() {
		auditRepo = repository.NewAuditRepository(pg.PoolHandle())
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, auditRepo, metrics, logger))

	profileClient := profile.NewClient(cfg.Profile.BaseURL, cfg.Profile.Timeout())

	tokens := auth.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.TTLMinutes)
	sessions := service.NewSessionService(service.SessionDependencies{
		KV:         redis.SessionKV(),
		KeyPrefix:  redis.KeyPrefix,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		AuditRepo:  auditRepo,
		Profiles:   service.ClientProfileLookup(profileClient),
		Logger:     logger,
	})

	profiles := service.NewProfileService(sessions, service.ClientUpdaterFactory(profileClient), dispatcher, logger)

	deps := map[string]handlers.Pinger{"redis": redis}
	if pg.Enabled() {
		deps["postgres"] = pg
	}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:             handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps),
		Messages:           handlers.NewMessagesHandler(cfg.Features.ParentChild),
		Sessions:           handlers.NewSessionHandler(sessions),
		Timezones:          handlers.NewTimezoneHandler(profiles),
		AuthMiddleware:     auth.NewAuthMiddleware(tokens),
		Metrics:            metrics,
		ParentChildEnabled: cfg.Features.ParentChild,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
