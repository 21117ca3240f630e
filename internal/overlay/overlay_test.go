package overlay

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID  string `json:"_id"`
	Qty int    `json:"quantity"`
}

func TestLoadSeedsOnceAndPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	seeds := 0
	ov := New(store, storage.KeyCart, func() []item {
		seeds++
		return []item{{ID: "a", Qty: 1}}
	})

	items, err := ov.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "a", Qty: 1}}, items)

	raw, ok, err := store.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"_id":"a","quantity":1}]`, raw)

	_, err = ov.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, seeds)
}

func TestUpdateSurvivesNewOverlay(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	ov := New[item](store, storage.KeyFavorites, nil)

	_, err := ov.Update(ctx, func(items []item) ([]item, error) {
		return append(items, item{ID: "p1"}), nil
	})
	require.NoError(t, err)

	reloaded := New(store, storage.KeyFavorites, func() []item { return []item{{ID: "seed"}} })
	items, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "p1"}}, items)
}

func TestUpdateErrorLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	ov := New(store, storage.KeyOrders, func() []item { return []item{{ID: "o1"}} })

	_, err := ov.Update(ctx, func(items []item) ([]item, error) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	items, err := ov.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "o1"}}, items)
}

func TestCorruptDocumentIsInternalError(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeyOrders, "{not json"))

	_, err := New[item](store, storage.KeyOrders, nil).Load(ctx)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}

func TestResetReseeds(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	ov := New(store, storage.KeyCart, func() []item { return []item{} })

	require.NoError(t, ov.Save(ctx, []item{{ID: "x"}}))
	require.NoError(t, ov.Reset(ctx))
	items, err := ov.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

type failingStore struct{ storage.Store }

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func TestStoreFailureIsDependencyError(t *testing.T) {
	_, err := New[item](failingStore{}, storage.KeyCart, nil).Load(context.Background())
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	ov := New(storage.NewMemory(), storage.KeyCart, func() []item { return []item{{ID: "a"}} })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ov.Update(ctx, func(items []item) ([]item, error) {
				items[0].Qty++
				return items, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := ov.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, items[0].Qty)
}
