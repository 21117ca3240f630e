package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/internal/cart"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func AddCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body cart.AddInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Add(r.Context(), body)
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "Added to cart (Demo)", item)
	}
}

func UpdateCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body cart.UpdateInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Update(r.Context(), chi.URLParam(r, "variantId"), body)
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "Cart updated (Demo)", item)
	}
}

func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "variantId")); err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteAck(w, "Removed from cart (Demo)")
	}
}

func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteAck(w, "Cart cleared (Demo)")
	}
}
