package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App     AppConfig
	Demo    DemoConfig
	API     APIConfig
	Storage StorageConfig
	Redis   RedisConfig
	DB      DBConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every cross-field problem at once.
func (c *Config) Validate() error {
	var errs error
	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s or %s is required for the redis storage driver", EnvRedisURL, EnvRedisAddr))
		}
	case StorageDriverSQLite, StorageDriverPostgres:
		if c.DB.DSN == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s is required for the %s storage driver", EnvDBDSN, c.Storage.Driver))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("unsupported storage driver %q", c.Storage.Driver))
	}
	if _, err := url.ParseRequestURI(c.Demo.BaseURL); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("invalid %s: %w", EnvDemoBaseURL, err))
	}
	if c.Demo.Latency < 0 {
		errs = multierr.Append(errs, errors.New("demo latency must not be negative"))
	}
	if !c.Demo.Enabled && c.API.BaseURL == "" {
		errs = multierr.Append(errs, fmt.Errorf("%s is required when %s is false", EnvAPIBaseURL, EnvUseMock))
	}
	return errs
}

type AppConfig struct {
	Env          string   `envconfig:"GASH_APP_ENV" default:"dev"`
	Port         string   `envconfig:"GASH_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"GASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"GASH_LOG_WARN_STACK" default:"false"`
	APIPrefix    string   `envconfig:"GASH_APP_API_PREFIX" default:""`
	CORSOrigins  []string `envconfig:"GASH_APP_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Prefix returns the normalized route prefix: "" for root, otherwise "/x" without a trailing slash.
func (a AppConfig) Prefix() string {
	p := strings.Trim(strings.TrimSpace(a.APIPrefix), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// DemoConfig drives the fixture-backed mock backend.
type DemoConfig struct {
	Enabled     bool          `envconfig:"GASH_USE_MOCK" default:"true"`
	Latency     time.Duration `envconfig:"GASH_DEMO_LATENCY" default:"500ms"`
	Seed        uint64        `envconfig:"GASH_DEMO_SEED" default:"42"`
	BaseURL     string        `envconfig:"GASH_DEMO_BASE_URL" default:"http://gash-demo-mock"`
	Token       string        `envconfig:"GASH_DEMO_TOKEN" default:"demo-token-12345"`
	FixturesDir string        `envconfig:"GASH_DEMO_FIXTURES_DIR"`
}

// APIConfig points the client at a real backend when demo mode is off.
type APIConfig struct {
	BaseURL string        `envconfig:"GASH_API_BASE_URL"`
	Timeout time.Duration `envconfig:"GASH_API_TIMEOUT" default:"10s"`
}

type StorageConfig struct {
	Driver    string `envconfig:"GASH_STORAGE_DRIVER" default:"memory"`
	Namespace string `envconfig:"GASH_STORAGE_NAMESPACE" default:"gash"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GASH_REDIS_URL"`
	Address      string        `envconfig:"GASH_REDIS_ADDR"`
	Password     string        `envconfig:"GASH_REDIS_PASSWORD"`
	DB           int           `envconfig:"GASH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GASH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GASH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GASH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GASH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GASH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN             string        `envconfig:"GASH_DB_DSN"`
	MaxOpenConns    int           `envconfig:"GASH_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"GASH_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"GASH_DB_CONN_MAX_LIFETIME" default:"1h"`
}
