package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/internal/orders"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, all)
	}
}

func SearchOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := orders.Filter{
			Query:       validators.FirstQuery(r, "q"),
			OrderStatus: validators.FirstQuery(r, "orderStatus"),
			PayStatus:   validators.FirstQuery(r, "payStatus"),
		}
		found, err := svc.Search(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, found)
	}
}

func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundMessage)
			return
		}
		responses.WriteData(w, order)
	}
}

func UpdateOrderStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body orders.UpdateStatusInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body)
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundMessage)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "Order status updated successfully (Demo)", order)
	}
}

func SearchOrderDetails(svc orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, svc.SearchDetails(r.Context(), validators.FirstQuery(r, "q")))
	}
}
