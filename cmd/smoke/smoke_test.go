package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/gash-demo/pkg/config"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func demoConfig(prefix string) *config.Config {
	cfg := &config.Config{}
	cfg.App.APIPrefix = prefix
	cfg.Demo.Enabled = true
	cfg.Demo.Seed = 42
	cfg.Demo.Token = "demo-token-12345"
	return cfg
}

func TestSmokeRunPassesInDemoMode(t *testing.T) {
	ctx := context.Background()
	cfg := demoConfig("")
	client, err := newClient(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, run(ctx, client, cfg.App.Prefix(), logger.Nop()))
}

func TestSmokeRunHonoursPrefix(t *testing.T) {
	ctx := context.Background()
	cfg := demoConfig("/api/")
	client, err := newClient(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, run(ctx, client, cfg.App.Prefix(), logger.Nop()))
	require.Error(t, run(ctx, client, "", logger.Nop()))
}
