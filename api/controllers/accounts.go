package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/internal/accounts"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

// ListAccounts filters by `q`/`search` and by an exact `role`.
func ListAccounts(svc accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := accounts.Filter{
			Query: validators.FirstQuery(r, "q", "search"),
			Role:  validators.FirstQuery(r, "role"),
		}
		responses.WriteData(w, svc.List(r.Context(), filter))
	}
}

// SearchAccounts ignores role.
func SearchAccounts(svc accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := accounts.Filter{Query: validators.FirstQuery(r, "q", "search")}
		responses.WriteData(w, svc.List(r.Context(), filter))
	}
}

func GetAccount(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundMessage)
			return
		}
		responses.WriteData(w, acc)
	}
}
