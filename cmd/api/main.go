package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nutricheck/backend/config"
	"github.com/nutricheck/backend/internal/database"
	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/server"
)

func main() {
	// .env is optional; real deployments use secrets and env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	if err := logger.Init(config.IsProduction()); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.L().Fatal("failed to run migrations", zap.Error(err))
	}

	var opts []server.Option
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("redis unavailable, continuing without rate limiting", zap.Error(err))
		} else {
			defer rdb.Close()
			opts = append(opts, server.WithRedis(rdb))
		}
	}

	if cfg.S3Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		storage, err := config.NewS3Config(ctx, cfg)
		cancel()
		if err != nil {
			logger.Warn("s3 unavailable, image uploads disabled", zap.Error(err))
		} else {
			opts = append(opts, server.WithImageStorage(storage))
		}
	}

	srv, err := server.New(cfg, db, opts...)
	if err != nil {
		logger.L().Fatal("failed to create server", zap.Error(err))
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.L().Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
