package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"product_viewer/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/deals", func(r chi.Router) {
				r.Get("/", handler(s.getV1Deals))
				r.Post("/refresh", handler(s.postV1DealsRefresh))
				r.Post("/select/{index}", handler(s.postV1DealsSelect))
				r.Get("/{id}", handler(s.getV1Deal))
				r.Post("/{id}/retry", handler(s.postV1DealRetry))
				r.Post("/{id}/cart", handler(s.postV1DealCart))
			})
			r.Get("/images", handler(s.getV1Image))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
