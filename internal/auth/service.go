package auth

import (
	"context"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/session"
	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// StatusActive is what check-status reports for a demo session.
const StatusActive = "Active"

// Service answers the dashboard's auth endpoints for the demo operator.
type Service interface {
	Login(ctx context.Context) (LoginResponse, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) string
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token   string           `json:"token"`
	Account fixtures.Account `json:"account"`
}

type service struct {
	store    storage.Store
	identity session.Identity
	now      func() time.Time
}

// NewService wires the auth dependencies.
func NewService(store storage.Store, identity session.Identity, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session store required")
	}
	if identity.Token == "" || identity.Account.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "demo identity required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, identity: identity, now: now}, nil
}

// Login always succeeds as the operator. A session left behind by another identity is
// replaced, which also drops its overlays.
func (s *service) Login(ctx context.Context) (LoginResponse, error) {
	if _, err := session.Bootstrap(ctx, s.store, s.identity, s.now()); err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Token: s.identity.Token, Account: s.identity.Account}, nil
}

// Logout forgets the token so the next bootstrap starts a fresh session.
func (s *service) Logout(ctx context.Context) error {
	for _, key := range []string{storage.KeyToken, storage.KeyUser, storage.KeyLoginTime} {
		if err := s.store.Delete(ctx, key); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "logout")
		}
	}
	return nil
}

func (s *service) Status(context.Context) string {
	return StatusActive
}
