package demo

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/gash-demo/internal/cart"
	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/orders"
	"github.com/angelmondragon/gash-demo/internal/storage"
	"github.com/angelmondragon/gash-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }

func newEnv(t *testing.T, store storage.Store, seed uint64) *Environment {
	t.Helper()
	data, err := fixtures.LoadEmbedded(fixtures.Options{Now: clock})
	require.NoError(t, err)
	env, err := New(Options{Dataset: data, Store: store, Seed: seed, Now: clock})
	require.NoError(t, err)
	return env
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Options{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestEnvironmentsAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := newEnv(t, storage.NewMemory(), 1)
	second := newEnv(t, storage.NewMemory(), 1)

	_, err := first.Orders.UpdateStatus(ctx, "665000000000000000001001", orders.UpdateStatusInput{OrderStatus: enums.OrderStatusConfirmed})
	require.NoError(t, err)

	got, err := second.Orders.Get(ctx, "665000000000000000001001")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.OrderStatus)

	assert.Equal(t, first.Analytics.RevenueByDay(ctx), second.Analytics.RevenueByDay(ctx))
}

func TestBootstrapDropsForeignSessionOverlays(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	env := newEnv(t, store, 1)

	reseeded, err := env.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, reseeded)

	_, err = env.Cart.Add(ctx, cart.AddInput{VariantID: "665000000000000000000a01", Quantity: 1})
	require.NoError(t, err)

	reseeded, err = env.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, reseeded)
	items, err := env.Cart.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"_id":"someone-else"}`))
	reseeded, err = env.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, reseeded)
	items, err = env.Cart.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderStatisticsFollowOverlay(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t, storage.NewMemory(), 1)

	before, err := env.Analytics.OrderStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, before.TotalOrders)
	assert.Equal(t, 1, before.Pending)

	_, err = env.Orders.UpdateStatus(ctx, "665000000000000000001001", orders.UpdateStatusInput{OrderStatus: enums.OrderStatusCancelled})
	require.NoError(t, err)

	after, err := env.Analytics.OrderStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Pending)
	assert.Equal(t, 2, after.Cancelled)
}
