package accounts

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

func TestListFiltersByRoleExactly(t *testing.T) {
	svc := newTestService(t)

	admins := svc.List(context.Background(), Filter{Role: "admin"})
	require.Len(t, admins, 1)
	assert.Equal(t, "gash.admin", admins[0].Username)

	assert.Empty(t, svc.List(context.Background(), Filter{Role: "Admin"}))
	assert.Len(t, svc.List(context.Background(), Filter{}), 4)
}

func TestListMatchesQueryAcrossFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.Len(t, svc.List(ctx, Filter{Query: "example.com"}), 2)
	assert.Len(t, svc.List(ctx, Filter{Query: "LINH"}), 1)
	assert.Len(t, svc.List(ctx, Filter{Query: "hoa", Role: "user"}), 1)
	assert.Empty(t, svc.List(ctx, Filter{Query: "hoa", Role: "admin"}))
}

func TestGetFallsBackToOperator(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	acc, err := svc.Get(ctx, fixtures.OperatorID)
	require.NoError(t, err)
	assert.Equal(t, "admin@gash.com", acc.Email)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestNewServiceRequiresDataset(t *testing.T) {
	_, err := NewService(nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}
