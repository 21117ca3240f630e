package storage

import (
	"context"
	"fmt"

	"github.com/angelmondragon/gash-demo/pkg/config"
	"github.com/angelmondragon/gash-demo/pkg/db"
	"github.com/angelmondragon/gash-demo/pkg/logger"
	"github.com/angelmondragon/gash-demo/pkg/redis"
)

// Keys of the persisted demo session.
const (
	KeyOrders        = "GASH_MOCK_ORDERS"
	KeyCart          = "GASH_MOCK_CART"
	KeyFavorites     = "GASH_MOCK_FAVORITES"
	KeyNotifications = "GASH_MOCK_NOTIFICATIONS"
	KeyTemplates     = "GASH_MOCK_NOTIFICATION_TEMPLATES"
	KeyToken         = "token"
	KeyUser          = "user"
	KeyLoginTime     = "loginTime"
)

// Store is the string key-value surface overlays and the session bootstrap persist through.
// Values are whole JSON documents; there is no partial update.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Backend is a Store with a lifecycle, as returned by Open.
type Backend interface {
	Store
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg config.Config, logg *logger.Logger) (Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory, "":
		return NewMemory(), nil
	case config.StorageDriverRedis:
		client, err := redis.New(ctx, cfg.Redis, cfg.Storage.Namespace, logg)
		if err != nil {
			return nil, fmt.Errorf("opening redis storage: %w", err)
		}
		return NewRedis(client), nil
	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		client, err := db.New(ctx, cfg.Storage.Driver, cfg.DB, logg)
		if err != nil {
			return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Driver, err)
		}
		store, err := NewSQL(ctx, client, cfg.Storage.Namespace)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
