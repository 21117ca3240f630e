package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/internal/catalog"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func ListCategories(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}

func GetCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := svc.Category(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

func SearchCategories(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.SearchCategories(r.Context(), validators.FirstQuery(r, "q")))
	}
}

func ListColors(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Colors(r.Context()))
	}
}

func GetColor(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		color, err := svc.Color(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, color)
	}
}

func ListSizes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Sizes(r.Context()))
	}
}

func GetSize(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size, err := svc.Size(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, size)
	}
}

// SearchSpecifications searches colors, sizes or both depending on `type`.
func SearchSpecifications(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.FirstQuery(r, "q")
		kind := validators.FirstQuery(r, "type")
		responses.WriteSuccess(w, svc.SearchSpecifications(r.Context(), query, kind))
	}
}

func ListVouchers(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Vouchers(r.Context()))
	}
}

func GetVoucher(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voucher, err := svc.Voucher(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, voucher)
	}
}

func ListFeedbacks(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Feedbacks(r.Context()))
	}
}

func GetFeedback(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedback, err := svc.Feedback(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, feedback)
	}
}

func ProductFeedback(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, svc.FeedbackForProduct(r.Context(), chi.URLParam(r, "id")))
	}
}
