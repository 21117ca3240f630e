package demo

import (
	"context"
	"time"

	"github.com/angelmondragon/gash-demo/internal/accounts"
	"github.com/angelmondragon/gash-demo/internal/analytics"
	"github.com/angelmondragon/gash-demo/internal/auth"
	"github.com/angelmondragon/gash-demo/internal/cart"
	"github.com/angelmondragon/gash-demo/internal/catalog"
	"github.com/angelmondragon/gash-demo/internal/favorites"
	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/notifications"
	"github.com/angelmondragon/gash-demo/internal/orders"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	"github.com/angelmondragon/gash-demo/internal/products"
	"github.com/angelmondragon/gash-demo/internal/session"
	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/google/uuid"
)

// DefaultToken is the bearer token handed out to the demo operator.
const DefaultToken = "demo-token-12345"

// Options configure one demo environment.
type Options struct {
	Dataset *fixtures.Dataset
	Store   storage.Store
	Token   string
	Seed    uint64
	Now     func() time.Time
	NewID   func() string
}

// Environment owns everything a demo session needs. Nothing is shared between
// environments, so tests can build as many as they like.
type Environment struct {
	Data     *fixtures.Dataset
	Store    storage.Store
	Identity session.Identity
	Now      func() time.Time

	Auth          auth.Service
	Accounts      accounts.Service
	Catalog       catalog.Service
	Products      products.Service
	Orders        orders.Service
	Analytics     analytics.Service
	Cart          cart.Service
	Favorites     favorites.Service
	Notifications notifications.Service
}

// New wires the overlays and services of an environment.
func New(opts Options) (*Environment, error) {
	if opts.Dataset == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	if opts.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "storage required")
	}
	if opts.Token == "" {
		opts.Token = DefaultToken
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	data, store := opts.Dataset, opts.Store
	env := &Environment{
		Data:     data,
		Store:    store,
		Identity: session.Identity{Token: opts.Token, Account: data.Operator},
		Now:      opts.Now,
	}

	orderOverlay := overlay.New(store, storage.KeyOrders, data.Orders.Values)
	cartOverlay := overlay.New[cart.Item](store, storage.KeyCart, nil)
	favoritesOverlay := overlay.New[favorites.Favorite](store, storage.KeyFavorites, nil)
	notificationOverlay := overlay.New(store, storage.KeyNotifications, func() []notifications.Notification {
		return notifications.SeedNotifications(data, opts.Now())
	})
	templateOverlay := overlay.New(store, storage.KeyTemplates, func() []notifications.Template {
		return notifications.SeedTemplates(opts.Now())
	})

	var err error
	if env.Auth, err = auth.NewService(store, env.Identity, opts.Now); err != nil {
		return nil, err
	}
	if env.Accounts, err = accounts.NewService(data); err != nil {
		return nil, err
	}
	if env.Catalog, err = catalog.NewService(data); err != nil {
		return nil, err
	}
	if env.Products, err = products.NewService(data); err != nil {
		return nil, err
	}
	if env.Orders, err = orders.NewService(data, orderOverlay); err != nil {
		return nil, err
	}
	if env.Analytics, err = analytics.NewService(env.Orders, analytics.Options{Seed: opts.Seed, Now: opts.Now}); err != nil {
		return nil, err
	}
	if env.Cart, err = cart.NewService(cart.ServiceParams{Data: data, Items: cartOverlay, NewID: opts.NewID}); err != nil {
		return nil, err
	}
	if env.Favorites, err = favorites.NewService(favorites.ServiceParams{
		Data:      data,
		Favorites: favoritesOverlay,
		NewID:     opts.NewID,
		Now:       opts.Now,
	}); err != nil {
		return nil, err
	}
	if env.Notifications, err = notifications.NewService(notifications.ServiceParams{
		Data:          data,
		Notifications: notificationOverlay,
		Templates:     templateOverlay,
		NewID:         opts.NewID,
		Now:           opts.Now,
	}); err != nil {
		return nil, err
	}
	return env, nil
}

// Bootstrap makes sure the store holds the operator's session, clearing a foreign one.
// It reports whether the store was reseeded.
func (e *Environment) Bootstrap(ctx context.Context) (bool, error) {
	return session.Bootstrap(ctx, e.Store, e.Identity, e.Now())
}
