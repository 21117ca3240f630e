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

	"github.com/angelmondragon/gash-demo/api/routes"
	"github.com/angelmondragon/gash-demo/internal/demo"
	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/storage"
	"github.com/angelmondragon/gash-demo/pkg/config"
	"github.com/angelmondragon/gash-demo/pkg/latency"
	"github.com/angelmondragon/gash-demo/pkg/logger"
	"github.com/angelmondragon/gash-demo/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Env:         cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := loadDataset(cfg.Demo)
	if err != nil {
		logg.Error(ctx, "failed to load fixtures", err)
		os.Exit(1)
	}

	store, err := storage.Open(ctx, *cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	env, err := demo.New(demo.Options{
		Dataset: data,
		Store:   store,
		Token:   cfg.Demo.Token,
		Seed:    cfg.Demo.Seed,
	})
	if err != nil {
		logg.Error(ctx, "failed to build demo environment", err)
		os.Exit(1)
	}
	reseeded, err := env.Bootstrap(ctx)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap demo session", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"storage":  cfg.Storage.Driver,
		"prefix":   cfg.App.Prefix(),
		"latency":  cfg.Demo.Latency.String(),
		"reseeded": reseeded,
		"routes":   len(routes.Table(env, logg)),
	})
	if !cfg.Demo.Enabled {
		logg.Warn(ctx, "GASH_USE_MOCK is false; serving the mock backend anyway")
	}
	logg.Info(ctx, "starting demo api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:   cfg,
			Logger:   logg,
			Env:      env,
			Metrics:  metrics.NewMockMetrics(reg),
			Gatherer: reg,
			Latency:  latency.FromDuration(cfg.Demo.Latency),
			Storage:  store,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(shutdownCtx, "graceful shutdown failed", err)
		}
	}
}

func loadDataset(cfg config.DemoConfig) (*fixtures.Dataset, error) {
	if cfg.FixturesDir != "" {
		return fixtures.Load(os.DirFS(cfg.FixturesDir), fixtures.Options{})
	}
	return fixtures.LoadEmbedded(fixtures.Options{})
}
