package storage

import (
	"context"
	"time"
)

type redisClient interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Redis persists the session under the client's key namespace.
type Redis struct {
	client redisClient
}

func NewRedis(client redisClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	return r.client.Get(ctx, key)
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key)
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.client.Flush(ctx)
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *Redis) Close() error {
	return r.client.Close()
}
