package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the seasonality routes under /api
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/seasonality", func(r chi.Router) {
		r.Post("/breaks", h.HandleBreaks)
	})
}
