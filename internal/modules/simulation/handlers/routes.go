package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the simulation routes under /api
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/simulate", func(r chi.Router) {
		r.Post("/price-change", h.HandlePriceChange)
		r.Post("/promotion", h.HandlePromotion)
		r.Post("/inventory-change", h.HandleInventoryChange)
	})
}
