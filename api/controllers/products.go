package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/gash-demo/api/responses"
	"github.com/angelmondragon/gash-demo/api/validators"
	"github.com/angelmondragon/gash-demo/internal/products"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

const placeholderImageURL = "https://via.placeholder.com/600"

func ListProducts(svc products.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

func SearchProducts(svc products.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Search(r.Context(), validators.FirstQuery(r, "q", "search")))
	}
}

func GetProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ListVariants optionally narrows to one product via `productId`.
func ListVariants(svc products.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Variants(r.Context(), validators.FirstQuery(r, "productId")))
	}
}

func GetVariant(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variant, err := svc.Variant(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeLookupError(w, r, logg, err, notFoundSuccess)
			return
		}
		responses.WriteSuccess(w, variant)
	}
}

// Upload answers single and multiple uploads with placeholder image URLs.
func Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"url":  placeholderImageURL,
			"urls": []string{placeholderImageURL, placeholderImageURL},
		})
	}
}

// Ack answers a catalog mutation without changing anything.
func Ack(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteAck(w, message)
	}
}
