package accounts

import (
	"context"
	"strings"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// Service exposes the fixture accounts.
type Service interface {
	List(ctx context.Context, filter Filter) []fixtures.Account
	Get(ctx context.Context, id string) (fixtures.Account, error)
}

// Filter narrows account listings. Query is a lower-cased substring matched against
// username, name and email; Role must match exactly.
type Filter struct {
	Query string
	Role  string
}

type service struct {
	data *fixtures.Dataset
}

func NewService(data *fixtures.Dataset) (Service, error) {
	if data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	return &service{data: data}, nil
}

func (s *service) List(_ context.Context, filter Filter) []fixtures.Account {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	return fixtures.Filter(s.data.Accounts.Values(), func(a fixtures.Account) bool {
		if query != "" && !matchesQuery(a, query) {
			return false
		}
		return filter.Role == "" || a.Role == filter.Role
	})
}

// Get looks an account up by id. The operator identity resolves even though it is not
// part of the fixture file.
func (s *service) Get(_ context.Context, id string) (fixtures.Account, error) {
	acc, ok := s.data.FindAccount(id)
	if !ok {
		return fixtures.Account{}, pkgerrors.New(pkgerrors.CodeNotFound, "Account not found")
	}
	return acc, nil
}

func matchesQuery(a fixtures.Account, query string) bool {
	for _, field := range []string{a.Username, a.Name, a.Email} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
