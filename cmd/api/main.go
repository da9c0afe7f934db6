package main

// @title Food Truck Service API
// @version 1.0.0
// @description HTTP сервис поиска фудтраков по снапшоту данных.
// @description
// @description Основные возможности:
// @description - Поиск записей по произвольному ключу и подстроке
// @description - Ближайший одобренный фудтрак по координатам
// @description - Добавление и обновление фудтраков в таблице в памяти

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/foodtruck-service/docs"
	"github.com/foodtruck-service/internal/config"
	httpDelivery "github.com/foodtruck-service/internal/delivery/http"
	"github.com/foodtruck-service/internal/delivery/http/handler"
	"github.com/foodtruck-service/internal/domain/repository"
	"github.com/foodtruck-service/internal/pkg/logger"
	"github.com/foodtruck-service/internal/repository/file"
	"github.com/foodtruck-service/internal/repository/memory"
	redisRepo "github.com/foodtruck-service/internal/repository/redis"
	"github.com/foodtruck-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Food Truck Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("snapshot_path", cfg.Snapshot.Path),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Optional Redis for vendor events
	var streamRepo repository.StreamRepository
	if cfg.Redis.Enabled {
		redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), cfg.Events.MaxLen, log)
		log.Info("Vendor events enabled", zap.String("stream", cfg.Events.Stream))
	}

	// 4. Initialize Repositories
	snapshotRepo := file.NewSnapshotRepository(cfg.Snapshot.Path, log)
	vendorRepo := memory.NewVendorRepository()

	// 5. Initialize Use Cases
	searchUC := usecase.NewSearchUseCase(snapshotRepo, log)
	truckUC := usecase.NewTruckUseCase(snapshotRepo, log)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, streamRepo, cfg.Events.Stream, log)

	// 6. Initialize HTTP Handlers
	searchHandler := handler.NewSearchHandler(searchUC, log)
	truckHandler := handler.NewTruckHandler(truckUC, vendorUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, searchHandler, truckHandler)

	// 8. Run until signal, then shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start()
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Server stopped with error", zap.Error(err))
		return
	}

	log.Info("Server stopped successfully")
}
