package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the scoring routes under /api
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/scoring", func(r chi.Router) {
		r.Post("/metrics", h.HandleMetrics)
		r.Post("/classify", h.HandleClassify)
	})
}
