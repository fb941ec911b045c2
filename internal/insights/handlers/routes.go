package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the insights routes under /api
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/insights", func(r chi.Router) {
		r.Post("/dataset", h.HandleUploadDataset)
		r.Get("/snapshot", h.HandleGetSnapshot)
	})
}
