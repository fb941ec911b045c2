package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the forecasting routes under /api
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/forecast", h.HandleForecast)
}
