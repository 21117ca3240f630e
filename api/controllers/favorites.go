package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/internal/favorites"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func ListFavorites(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favs, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, favs)
	}
}

func AddFavorite(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body favorites.AddInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		fav, err := svc.Add(r.Context(), body)
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "Added to favorites (Demo)", fav)
	}
}

func RemoveFavorite(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "productId")); err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteAck(w, "Removed from favorites (Demo)")
	}
}
