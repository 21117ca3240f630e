package notifications

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	"github.com/angelmondragon/gash-demo/internal/storage"
	"github.com/angelmondragon/gash-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	managerID = "665000000000000000000b02"
	userID    = "665000000000000000000b03"
)

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, store storage.Store) Service {
	t.Helper()
	data, err := fixtures.LoadEmbedded(fixtures.Options{Now: func() time.Time { return testNow }})
	require.NoError(t, err)
	n := 0
	svc, err := NewService(ServiceParams{
		Data: data,
		Notifications: overlay.New(store, storage.KeyNotifications, func() []Notification {
			return SeedNotifications(data, testNow)
		}),
		Templates: overlay.New(store, storage.KeyTemplates, func() []Template {
			return SeedTemplates(testNow)
		}),
		NewID: func() string { n++; return fmt.Sprintf("id-%d", n) },
		Now:   func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return svc
}

func TestSeededCollections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID, "newest first")
	require.NotNil(t, list[0].UserID)
	assert.Nil(t, list[1].UserID)

	templates, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 2)
}

func TestCreateBroadcast(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	created, err := svc.Create(ctx, CreateInput{Title: "Hi", Message: "All", RecipientType: enums.RecipientAll})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Nil(t, created[0].UserID)
	assert.Equal(t, enums.NotificationTypeSystem, created[0].Type)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCreatePerRecipient(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	specific, err := svc.Create(ctx, CreateInput{
		Title: "Hi", Message: "You", RecipientType: enums.RecipientSpecific, UserID: managerID,
	})
	require.NoError(t, err)
	require.Len(t, specific, 1)
	assert.Equal(t, "linh.manager", specific[0].UserID.Username)

	multiple, err := svc.Create(ctx, CreateInput{
		Title: "Hi", Message: "You two", RecipientType: enums.RecipientMultiple,
		UserIDs: []string{managerID, userID, managerID, fixtures.OperatorID},
	})
	require.NoError(t, err)
	require.Len(t, multiple, 3)
	assert.Equal(t, "admin", multiple[2].UserID.Username)
}

func TestCreateUnknownUserStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	_, err := svc.Create(ctx, CreateInput{
		Title: "Hi", Message: "x", RecipientType: enums.RecipientMultiple, UserIDs: []string{managerID, "ghost"},
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, "User not found", typed.Message())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	cases := []CreateInput{
		{Message: "x", RecipientType: enums.RecipientAll},
		{Title: "x", Message: "x", RecipientType: "everyone"},
		{Title: "x", Message: "x", RecipientType: enums.RecipientSpecific},
		{Title: "x", Message: "x", RecipientType: enums.RecipientMultiple, UserIDs: []string{""}},
		{Title: "x", Message: "x", Type: "spam", RecipientType: enums.RecipientAll},
	}
	for i, in := range cases {
		_, err := svc.Create(context.Background(), in)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "case %d", i)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemory())

	require.NoError(t, svc.Delete(ctx, "n1"))
	assert.True(t, pkgerrors.IsCode(svc.Delete(ctx, "n1"), pkgerrors.CodeNotFound))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n2", list[0].ID)
}

func TestTemplateLifecycle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := newTestService(t, store)

	tpl, err := svc.CreateTemplate(ctx, TemplateInput{Name: "Restock", Title: "Back in stock", Message: "It's back"})
	require.NoError(t, err)
	assert.Equal(t, enums.NotificationTypeSystem, tpl.Type)

	title := "Restocked"
	updated, err := svc.UpdateTemplate(ctx, tpl.ID, TemplatePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Restocked", updated.Title)
	assert.Equal(t, "Restock", updated.Name)

	_, err = svc.UpdateTemplate(ctx, "missing", TemplatePatch{Title: &title})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	require.NoError(t, svc.DeleteTemplate(ctx, "t1"))
	templates, err := newTestService(t, store).ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "t2", templates[0].ID)
	assert.Equal(t, "Restocked", templates[1].Title)
}
