// Package handlers provides HTTP handlers for the forecasting API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/domain"
	"github.com/aristath/retailmind/internal/modules/forecasting"
	"github.com/aristath/retailmind/pkg/api"
)

// Handlers provides HTTP handlers for the forecasting module
type Handlers struct {
	forecaster     *forecasting.Forecaster
	defaultHorizon int
	log            zerolog.Logger
}

// NewHandlers creates a new forecasting handlers instance
func NewHandlers(forecaster *forecasting.Forecaster, defaultHorizon int, log zerolog.Logger) *Handlers {
	return &Handlers{
		forecaster:     forecaster,
		defaultHorizon: defaultHorizon,
		log:            log.With().Str("module", "forecasting_handlers").Logger(),
	}
}

// ForecastRequest represents a request to forecast one product
type ForecastRequest struct {
	ProductID   string             `json:"product_id"`
	History     []api.HistoryPoint `json:"history"`
	HorizonDays int                `json:"horizon_days,omitempty"`
}

// HandleForecast handles POST /api/forecast
func (h *Handlers) HandleForecast(w http.ResponseWriter, r *http.Request) {
	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode forecast request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ProductID == "" {
		h.writeError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	history, err := api.ParseHistory(req.ProductID, req.History)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	horizon := req.HorizonDays
	if horizon <= 0 {
		horizon = h.defaultHorizon
	}

	result, err := h.forecaster.Forecast(req.ProductID, history, horizon)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Str("product", req.ProductID).Msg("Forecast failed")
		h.writeError(w, "Forecast failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, result)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
