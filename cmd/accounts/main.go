package main

import (
	"context"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/paysetu/bbps-account/internal/pkg/config"
	"github.com/paysetu/bbps-account/internal/pkg/database"
	"github.com/paysetu/bbps-account/internal/pkg/health"
	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/middleware"
	nsqpkg "github.com/paysetu/bbps-account/internal/pkg/nsq"
	"github.com/paysetu/bbps-account/internal/pkg/server"
	"github.com/paysetu/bbps-account/services/accounts/gateway"
	"github.com/paysetu/bbps-account/services/accounts/handler"
	"github.com/paysetu/bbps-account/services/accounts/repository"
	"github.com/paysetu/bbps-account/services/accounts/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/accounts.env"
	}
	cfg := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		os.Exit(1)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting accounts service",
		logger.String("environment", cfg.App.Environment),
		logger.String("version", cfg.App.Version))

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}

	// Redis is optional; without it token resolution hits the store directly
	var redisClient *database.RedisClient
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to redis", logger.Err(err))
		}
	} else {
		zapLogger.Warn("Redis not configured, session cache disabled")
	}

	// NSQ is optional; without it ledger events are dropped
	var producer *nsqpkg.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
	} else {
		zapLogger.Info("NSQ disabled, ledger events will not be published")
	}

	accountRepo := repository.NewAccountRepo(cfg, pgClient.GetDB(), redisClient)
	accountGW := gateway.NewAccountGW(producer)
	accountUC := usecase.NewAccountUC(accountRepo, accountGW, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)
	handler.NewHandler(accountUC, cfg).RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})
	if redisClient != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})
	}
	if producer != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
