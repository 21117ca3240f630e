package config

const (
	EnvPrefix = "GASH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv       = "GASH_APP_ENV"
	EnvPort         = "GASH_APP_PORT"
	EnvLogLevel     = "GASH_LOG_LEVEL"
	EnvLogWarnStack = "GASH_LOG_WARN_STACK"
	EnvAPIPrefix    = "GASH_APP_API_PREFIX"
	EnvCORSOrigins  = "GASH_APP_CORS_ORIGINS"

	EnvUseMock          = "GASH_USE_MOCK"
	EnvDemoLatency      = "GASH_DEMO_LATENCY"
	EnvDemoSeed         = "GASH_DEMO_SEED"
	EnvDemoBaseURL      = "GASH_DEMO_BASE_URL"
	EnvDemoToken        = "GASH_DEMO_TOKEN"
	EnvDemoFixturesDir  = "GASH_DEMO_FIXTURES_DIR"
	EnvAPIBaseURL       = "GASH_API_BASE_URL"
	EnvAPITimeout       = "GASH_API_TIMEOUT"
	EnvStorageDriver    = "GASH_STORAGE_DRIVER"
	EnvStorageNamespace = "GASH_STORAGE_NAMESPACE"

	EnvRedisURL  = "GASH_REDIS_URL"
	EnvRedisAddr = "GASH_REDIS_ADDR"
	EnvDBDSN     = "GASH_DB_DSN"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)
