package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Demo.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Demo.Latency)
	assert.Equal(t, "http://gash-demo-mock", cfg.Demo.BaseURL)
	assert.Equal(t, "demo-token-12345", cfg.Demo.Token)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.App.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvDemoLatency, "0s")
	t.Setenv(EnvDemoSeed, "7")
	t.Setenv(EnvStorageDriver, StorageDriverRedis)
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvAPIPrefix, "/api/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProd())
	assert.Zero(t, cfg.Demo.Latency)
	assert.Equal(t, uint64(7), cfg.Demo.Seed)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "/api", cfg.App.Prefix())
}

func TestLoad_CombinesValidationErrors(t *testing.T) {
	t.Setenv(EnvStorageDriver, StorageDriverPostgres)
	t.Setenv(EnvUseMock, "false")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDBDSN)
	assert.Contains(t, err.Error(), EnvAPIBaseURL)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv(EnvStorageDriver, "mongo")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage driver")
}

func TestPrefixRoot(t *testing.T) {
	assert.Equal(t, "", AppConfig{APIPrefix: "/"}.Prefix())
	assert.Equal(t, "", AppConfig{}.Prefix())
}
