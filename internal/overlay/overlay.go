package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// Overlay is a mutable, persisted copy of a collection. Every access reads the whole
// JSON document from the store and every mutation writes the whole document back.
// Access through one Overlay value is serialized.
type Overlay[T any] struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	seed  func() []T
}

// New returns an overlay stored under key and seeded lazily from seed.
func New[T any](store storage.Store, key string, seed func() []T) *Overlay[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return &Overlay[T]{store: store, key: key, seed: seed}
}

func (o *Overlay[T]) Key() string {
	return o.key
}

// Load returns the persisted collection, seeding and persisting it on first use.
func (o *Overlay[T]) Load(ctx context.Context) ([]T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.load(ctx)
}

// Save replaces the persisted collection.
func (o *Overlay[T]) Save(ctx context.Context, items []T) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.save(ctx, items)
}

// Update runs read-modify-write under the overlay lock. Returning an error from fn
// leaves the stored collection untouched.
func (o *Overlay[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	items, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(items)
	if err != nil {
		return nil, err
	}
	if err := o.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Reset drops the persisted collection so the next Load reseeds it.
func (o *Overlay[T]) Reset(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.store.Delete(ctx, o.key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset "+o.key)
	}
	return nil
}

func (o *Overlay[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := o.store.Get(ctx, o.key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read "+o.key)
	}
	if !ok || raw == "" {
		items := o.seed()
		if items == nil {
			items = []T{}
		}
		if err := o.save(ctx, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("decode %s", o.key))
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (o *Overlay[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("encode %s", o.key))
	}
	if err := o.store.Set(ctx, o.key, string(payload)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write "+o.key)
	}
	return nil
}
