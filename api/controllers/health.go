package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/pkg/config"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

const envHeader = "X-Gash-Env"

// Pinger reports whether the overlay storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready", "storage": cfg.Storage.Driver})
	}
}
