package controllers

import (
	"net/http"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/internal/auth"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func AuthCheckStatus(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, http.StatusOK, svc.Status(r.Context()))
	}
}

// AuthLogin signs in as the demo operator regardless of the submitted credentials.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Login(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		logg.Info(logg.WithOperator(r.Context(), resp.Account.ID), "auth.login")
		responses.WriteJSON(w, http.StatusOK, resp)
	}
}

func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, nil)
	}
}
