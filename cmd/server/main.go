package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mtb-intake-service/internal/api"
	"github.com/mtb-intake-service/internal/catalog"
	"github.com/mtb-intake-service/internal/config"
	"github.com/mtb-intake-service/internal/database"
	"github.com/mtb-intake-service/internal/domain"
	"github.com/mtb-intake-service/internal/query"
	"github.com/mtb-intake-service/internal/service"
	"github.com/mtb-intake-service/internal/storage"
	"github.com/mtb-intake-service/internal/validation"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)

	// Catalogs are a startup requirement: without them the validator
	// cannot decide catalog membership.
	catalogs, err := catalog.Load(cfg.Catalogs.Dir, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load code-system catalogs")
	}
	validator := validation.NewFileValidator(catalogs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, probes, cleanup, err := newStagingStore(ctx, cfg, configManager, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open staging store")
	}
	defer cleanup()
	defer store.Close()

	dedup, err := newIdempotencyCache(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create idempotency cache")
	}

	queryClient, err := query.NewClient(query.Config{
		BaseURL:   cfg.Query.BaseURL,
		Timeout:   cfg.Query.Timeout,
		RateLimit: cfg.Query.RateLimit,
	}, dedup, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create query service client")
	}

	intake, err := service.NewIntakeService(logger, cfg.Site.ZPM, validator, store, queryClient)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create intake service")
	}

	server := api.NewServer(cfg.Server, cfg.Logging.Level, logger, intake, store, probes...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
	logger.Info("Server stopped")
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func newStagingStore(ctx context.Context, cfg *config.Config, manager *config.Manager, logger *logrus.Logger) (domain.StagingStore, []api.HealthProbe, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case "postgres":
		pg := cfg.Storage.Postgres
		databaseURL := manager.GetPostgresURL()

		// The pool doubles as the /healthz probe for the staging backend.
		db, err := database.NewConnection(ctx, database.Config{
			Host:        pg.Host,
			Port:        pg.Port,
			Database:    pg.Database,
			Username:    pg.Username,
			Password:    pg.Password,
			SSLMode:     pg.SSLMode,
			MaxConns:    10,
			MinConns:    2,
			MaxConnLife: 30 * time.Minute,
			MaxConnIdle: 5 * time.Minute,
		}, logger)
		if err != nil {
			return nil, nil, noop, err
		}

		runner, err := database.NewMigrationRunner(databaseURL, pg.MigrationsPath, logger)
		if err != nil {
			db.Close()
			return nil, nil, noop, err
		}
		defer runner.Close()
		if err := runner.Up(); err != nil {
			db.Close()
			return nil, nil, noop, err
		}

		store, err := storage.NewPostgresStoreFromURL(databaseURL)
		if err != nil {
			db.Close()
			return nil, nil, noop, err
		}
		return store, []api.HealthProbe{db.Health}, db.Close, nil

	default:
		store, err := storage.NewSQLiteStore(cfg.Storage.SQLite.Path)
		return store, nil, noop, err
	}
}

func newIdempotencyCache(cfg *config.Config, logger *logrus.Logger) (query.IdempotencyCache, error) {
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		logger.WithField("redis", opts.Addr).Info("Using shared idempotency cache")
		return query.NewRedisCache(redis.NewClient(opts), cfg.Redis.TTL), nil
	}
	return query.NewLRUCache(1024)
}
