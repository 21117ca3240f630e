package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teeID = "6916c4f34945cd9a5d8631fb"

func newTestService(t *testing.T, store storage.Store) Service {
	t.Helper()
	data, err := fixtures.LoadEmbedded(fixtures.Options{})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{
		Data:      data,
		Favorites: overlay.New[Favorite](store, storage.KeyFavorites, nil),
		NewID:     func() string { return "fav-1" },
		Now:       func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return svc
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	first, err := svc.Add(ctx, AddInput{ProductID: teeID})
	require.NoError(t, err)
	second, err := svc.Add(ctx, AddInput{ProductID: teeID})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	favs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	product, ok := favs[0].ProductID.(*fixtures.Product)
	require.True(t, ok)
	assert.Equal(t, "Basic Cotton Tee", product.ProductName)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	_, err := svc.Add(context.Background(), AddInput{ProductID: "nope"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, "Product not found", typed.Message())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := newTestService(t, store)

	assert.True(t, pkgerrors.IsCode(svc.Remove(ctx, teeID), pkgerrors.CodeNotFound))

	_, err := svc.Add(ctx, AddInput{ProductID: teeID})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, teeID))

	favs, err := newTestService(t, store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestViewKeepsBareIDForMissingProduct(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeyFavorites, `[{"_id":"f","productId":"gone","createdAt":"2026-01-01T00:00:00Z"}]`))

	favs, err := newTestService(t, store).List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "gone", favs[0].ProductID)
}
