package catalog

import (
	"context"
	"testing"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	data, err := fixtures.LoadEmbedded(fixtures.Options{})
	require.NoError(t, err)
	svc, err := NewService(data)
	require.NoError(t, err)
	return svc
}

func TestCategoryLookup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Category(ctx, "abc123")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "Category not found", typed.Message())

	cats := svc.Categories(ctx)
	require.NotEmpty(t, cats)
	got, err := svc.Category(ctx, cats[0].ID)
	require.NoError(t, err)
	assert.Equal(t, cats[0], got)
}

func TestSearchCategoriesIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	found := svc.SearchCategories(context.Background(), "JEAN")
	require.Len(t, found, 1)
	assert.Equal(t, "Jeans", found[0].CatName)
	assert.Len(t, svc.SearchCategories(context.Background(), ""), 3)
}

func TestSearchSpecifications(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.Len(t, svc.SearchSpecifications(ctx, "", KindColor), 3)
	assert.Len(t, svc.SearchSpecifications(ctx, "", KindSize), 3)
	assert.Len(t, svc.SearchSpecifications(ctx, "", ""), 6)

	both := svc.SearchSpecifications(ctx, "l", "")
	require.Len(t, both, 2)
	assert.IsType(t, fixtures.Color{}, both[0])
	assert.IsType(t, fixtures.Size{}, both[1])
}

func TestFeedbackForProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fb := svc.FeedbackForProduct(ctx, "6916c4f34945cd9a5d8631fb")
	require.Len(t, fb, 1)
	assert.Equal(t, "f1", fb[0].ID)
	assert.Empty(t, svc.FeedbackForProduct(ctx, "unknown"))

	_, err := svc.Feedback(ctx, "f3")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
