package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	teeBlackS  = "665000000000000000000a01"
	jeansOut   = "665000000000000000000a04"
	orphanVar  = "665000000000000000000a07"
	missingVar = "665000000000000000000a98"
)

func newTestService(t *testing.T, store storage.Store) Service {
	t.Helper()
	data, err := fixtures.LoadEmbedded(fixtures.Options{})
	require.NoError(t, err)
	n := 0
	svc, err := NewService(ServiceParams{
		Data:  data,
		Items: overlay.New[Item](store, storage.KeyCart, nil),
		NewID: func() string { n++; return "cart-" + string(rune('0'+n)) },
	})
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestAddEnrichesAndIncrements(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	item, err := svc.Add(ctx, AddInput{VariantID: teeBlackS, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "cart-1", item.ID)
	assert.Equal(t, "Basic Cotton Tee", item.ProductName)
	require.NotNil(t, item.Variant.Variant)
	assert.False(t, item.ProductPrice.IsZero())

	item, err = svc.Add(ctx, AddInput{VariantID: teeBlackS, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "cart-1", item.ID)
	assert.Equal(t, 5, item.Quantity)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddUnknownVariant(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	_, err := svc.Add(context.Background(), AddInput{VariantID: missingVar, Quantity: 1})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "Variant not found", typed.Message())
}

func TestAddOrphanVariantUsesUnknownProduct(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	item, err := svc.Add(context.Background(), AddInput{VariantID: orphanVar, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "Unknown Product", item.ProductName)
}

func TestStockIsChecked(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	_, err := svc.Add(ctx, AddInput{VariantID: jeansOut, Quantity: 1})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	_, err = svc.Add(ctx, AddInput{VariantID: teeBlackS, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Update(ctx, teeBlackS, UpdateInput{Quantity: 41})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	_, err := svc.Update(ctx, teeBlackS, UpdateInput{Quantity: 1})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.True(t, pkgerrors.IsCode(svc.Remove(ctx, teeBlackS), pkgerrors.CodeNotFound))

	_, err = svc.Add(ctx, AddInput{VariantID: teeBlackS, Quantity: 1})
	require.NoError(t, err)
	updated, err := svc.Update(ctx, teeBlackS, UpdateInput{Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	require.NoError(t, svc.Remove(ctx, teeBlackS))
	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.Add(ctx, AddInput{VariantID: teeBlackS, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))
	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartPersistsOnlyVariantIDs(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := newTestService(t, store)

	_, err := svc.Add(ctx, AddInput{VariantID: teeBlackS, Quantity: 1})
	require.NoError(t, err)

	raw, ok, err := store.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, teeBlackS, stored[0]["variantId"])

	again := newTestService(t, store)
	items, err := again.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Basic Cotton Tee", items[0].ProductName)
}
