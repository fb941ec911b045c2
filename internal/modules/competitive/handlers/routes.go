package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the competitive routes under /api
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/competitive", func(r chi.Router) {
		r.Post("/position", h.HandlePosition)
		r.Post("/simulate", h.HandleSimulate)
	})
}
