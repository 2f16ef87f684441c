package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/estate-api/internal/api"
	"github.com/baharkarakas/estate-api/internal/auth"
	"github.com/baharkarakas/estate-api/internal/config"
	"github.com/baharkarakas/estate-api/internal/db"
	"github.com/baharkarakas/estate-api/internal/logger"
	"github.com/baharkarakas/estate-api/internal/metrics"
	"github.com/baharkarakas/estate-api/internal/repository"
	"github.com/baharkarakas/estate-api/internal/repository/memory"
	mongorepo "github.com/baharkarakas/estate-api/internal/repository/mongo"
	"github.com/baharkarakas/estate-api/internal/repository/postgres"
	"github.com/baharkarakas/estate-api/internal/services"
	"github.com/baharkarakas/estate-api/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store connect", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()
	log.Info("store ready", "driver", cfg.StoreDriver)

	wp := worker.NewPool(cfg.AuditWorkers)
	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	userSvc := services.NewUserService(repos.Users, tm)
	propertySvc := services.NewPropertyService(repos.Properties, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:         cfg,
		TM:          tm,
		UserSvc:     userSvc,
		PropertySvc: propertySvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	// flush pending audit entries before the store closes
	wp.Stop()
}

// openStore connects the configured backend and returns its repositories and a close func.
func openStore(ctx context.Context, cfg config.Config) (repository.Repositories, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return repository.Repositories{}, nil, fmt.Errorf("migrations: %w", err)
			}
		}
		return postgres.NewRepositories(pool), pool.Close, nil

	case "mongo":
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := db.EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return repository.Repositories{}, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}
		return mongorepo.NewRepositories(database), closeFn, nil

	case "memory":
		slog.Warn("using in-memory store; data is lost on restart")
		return memory.NewRepositories(memory.New()), func() {}, nil
	}
	return repository.Repositories{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
