package controllers

import (
	"net/http"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/internal/analytics"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

func OrderStatistics(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.OrderStatistics(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, stats)
	}
}

func RevenueByDay(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, svc.RevenueByDay(r.Context()))
	}
}

func RevenueByWeek(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, svc.RevenueByWeek(r.Context()))
	}
}

// RevenueByMonth is the only revenue endpoint that carries `success`.
func RevenueByMonth(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.RevenueByMonth(r.Context()))
	}
}

func RevenueByYear(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(w, svc.RevenueByYear(r.Context()))
	}
}
