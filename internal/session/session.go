package session

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/storage"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

// Identity is the synthetic operator a demo session runs as.
type Identity struct {
	Token   string
	Account fixtures.Account
}

// State is what the store currently says about the session.
type State struct {
	Token     string
	Account   *fixtures.Account
	LoginTime *time.Time
}

// Bootstrap makes sure the store holds a session for identity. A missing token, a missing
// or unreadable user, or a user whose id is not the operator's clears the whole store
// (overlays included) and writes a fresh session. It reports whether it reseeded.
func Bootstrap(ctx context.Context, store storage.Store, identity Identity, now time.Time) (bool, error) {
	if valid, err := isCurrent(ctx, store, identity); err != nil || valid {
		return false, err
	}

	if err := store.Clear(ctx); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear session store")
	}
	user, err := json.Marshal(identity.Account)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode operator account")
	}
	writes := []struct{ key, value string }{
		{storage.KeyToken, identity.Token},
		{storage.KeyUser, string(user)},
		{storage.KeyLoginTime, strconv.FormatInt(now.UnixMilli(), 10)},
	}
	for _, w := range writes {
		if err := store.Set(ctx, w.key, w.value); err != nil {
			return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write session "+w.key)
		}
	}
	return true, nil
}

// Current reads the stored session without modifying it.
func Current(ctx context.Context, store storage.Store) (State, error) {
	var st State
	token, _, err := store.Get(ctx, storage.KeyToken)
	if err != nil {
		return st, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session token")
	}
	st.Token = token

	raw, ok, err := store.Get(ctx, storage.KeyUser)
	if err != nil {
		return st, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session user")
	}
	if ok && raw != "" {
		var acc fixtures.Account
		if json.Unmarshal([]byte(raw), &acc) == nil {
			st.Account = &acc
		}
	}

	login, ok, err := store.Get(ctx, storage.KeyLoginTime)
	if err != nil {
		return st, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session login time")
	}
	if ok {
		if ms, err := strconv.ParseInt(login, 10, 64); err == nil {
			t := time.UnixMilli(ms).UTC()
			st.LoginTime = &t
		}
	}
	return st, nil
}

func isCurrent(ctx context.Context, store storage.Store, identity Identity) (bool, error) {
	st, err := Current(ctx, store)
	if err != nil {
		return false, err
	}
	if st.Token == "" || st.Account == nil {
		return false, nil
	}
	return st.Account.ID == identity.Account.ID, nil
}
