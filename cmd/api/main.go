package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/inventory-ledger/api/routes"
	"github.com/angelmondragon/inventory-ledger/internal/inventory"
	"github.com/angelmondragon/inventory-ledger/pkg/config"
	"github.com/angelmondragon/inventory-ledger/pkg/logger"
	"github.com/angelmondragon/inventory-ledger/pkg/metrics"
	"github.com/angelmondragon/inventory-ledger/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "inventory-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "inventory-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "inventory api stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	params := inventory.ServiceParams{
		Logger: logg,
		Dispatcher: inventory.MultiDispatcher{
			inventory.MetricsDispatcher{Metrics: metrics.NewLedgerMetrics(reg)},
			inventory.LogDispatcher{Logger: logg},
		},
	}
	if cfg.SeedFixtures() {
		seed := inventory.DefaultSeed(time.Now())
		params.Seed = &seed
	}
	ledger, err := inventory.NewService(params)
	if err != nil {
		return err
	}
	metrics.RegisterCatalogGauges(reg, inventory.CatalogSnapshot(ledger))

	deps := routes.Dependencies{
		Config:      cfg,
		Logger:      logg,
		Ledger:      ledger,
		Gatherer:    reg,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
	}

	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		deps.Store = redisClient
		deps.RedisPinger = redisClient
	} else {
		logg.Warn(ctx, "redis not configured, idempotency keys disabled")
	}

	addr := ":" + cfg.App.Port
	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"seeded": cfg.SeedFixtures(),
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(serverCtx, "starting inventory api")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(serverCtx, "shutting down inventory api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
