package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/gash-demo/pkg/config"
	"github.com/angelmondragon/gash-demo/pkg/db"
	"github.com/angelmondragon/gash-demo/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, KeyOrders, `[{"_id":"o1"}]`))
	require.NoError(t, store.Set(ctx, KeyOrders, `[{"_id":"o2"}]`))
	require.NoError(t, store.Set(ctx, KeyToken, "demo-token-12345"))

	val, ok, err := store.Get(ctx, KeyOrders)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"_id":"o2"}]`, val)

	require.NoError(t, store.Delete(ctx, KeyOrders))
	_, ok, err = store.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Clear(ctx))
	_, ok, err = store.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func newSQLiteClient(t *testing.T) *db.Client {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	client := db.Wrap(conn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSQLStore(t *testing.T) {
	client := newSQLiteClient(t)
	store, err := NewSQL(context.Background(), client, "demo")
	require.NoError(t, err)
	exerciseStore(t, store)
	require.NoError(t, store.Ping(context.Background()))
}

func TestSQLStoreNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	client := newSQLiteClient(t)
	first, err := NewSQL(ctx, client, "one")
	require.NoError(t, err)
	second, err := NewSQL(ctx, client, "two")
	require.NoError(t, err)

	require.NoError(t, first.Set(ctx, KeyCart, "[]"))
	require.NoError(t, second.Set(ctx, KeyCart, `[{"_id":"c"}]`))
	require.NoError(t, first.Clear(ctx))

	val, ok, err := second.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"_id":"c"}]`, val)
}

type fakeRedis struct {
	data   map[string]string
	closed bool
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeRedis) Flush(context.Context) error {
	f.data = map[string]string{}
	return nil
}

func (f *fakeRedis) Ping(context.Context) error { return nil }

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisStore(t *testing.T) {
	fake := &fakeRedis{data: map[string]string{}}
	store := NewRedis(fake)
	exerciseStore(t, store)
	require.NoError(t, store.Close())
	assert.True(t, fake.closed)
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()

	backend, err := Open(ctx, config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, backend)

	backend, err = Open(ctx, config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverSQLite, Namespace: "open"},
		DB:      config.DBConfig{DSN: "file:open_selects_driver?mode=memory&cache=shared"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, backend)
	require.NoError(t, backend.Close())

	_, err = Open(ctx, config.Config{Storage: config.StorageConfig{Driver: "etcd"}}, logger.Nop())
	require.Error(t, err)
}
