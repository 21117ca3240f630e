package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/gash-demo/api/routes"
	"github.com/angelmondragon/gash-demo/internal/demo"
	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/storage"
	"github.com/angelmondragon/gash-demo/pkg/apiclient"
	"github.com/angelmondragon/gash-demo/pkg/config"
	"github.com/angelmondragon/gash-demo/pkg/latency"
	"github.com/angelmondragon/gash-demo/pkg/logger"
	"github.com/angelmondragon/gash-demo/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "smoke"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "smoke",
		Env:         cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := newClient(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to build api client", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"demo":     cfg.Demo.Enabled,
		"base_url": client.BaseURL(),
	})
	prefix := ""
	if cfg.Demo.Enabled {
		prefix = cfg.App.Prefix()
	}
	if err := run(ctx, client, prefix, logg); err != nil {
		logg.Error(ctx, "smoke run failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "smoke run passed")
}

// newClient points at the real backend, or with the demo toggle on, at an in-process
// mock router over a throwaway memory store.
func newClient(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*apiclient.Client, error) {
	if !cfg.Demo.Enabled {
		return apiclient.New(apiclient.Options{
			BaseURL: cfg.API.BaseURL,
			Token:   cfg.Demo.Token,
			Timeout: cfg.API.Timeout,
			Logger:  logg,
		})
	}

	data, err := fixtures.LoadEmbedded(fixtures.Options{})
	if err != nil {
		return nil, err
	}
	store := storage.NewMemory()
	env, err := demo.New(demo.Options{
		Dataset: data,
		Store:   store,
		Token:   cfg.Demo.Token,
		Seed:    cfg.Demo.Seed,
	})
	if err != nil {
		return nil, err
	}
	if _, err := env.Bootstrap(ctx); err != nil {
		return nil, err
	}

	router := routes.NewRouter(routes.Params{
		Config:  cfg,
		Logger:  logg,
		Env:     env,
		Metrics: metrics.NewMockMetrics(nil),
		Latency: latency.None,
		Storage: store,
	})
	return apiclient.New(apiclient.Options{
		Demo:    true,
		BaseURL: cfg.Demo.BaseURL,
		Token:   cfg.Demo.Token,
		Timeout: cfg.API.Timeout,
		Handler: router,
		Latency: latency.FromDuration(cfg.Demo.Latency),
		Logger:  logg,
	})
}
