// Package handlers provides HTTP handlers for the seasonality API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/domain"
	"github.com/aristath/retailmind/internal/modules/seasonality"
	"github.com/aristath/retailmind/pkg/api"
)

// Handlers provides HTTP handlers for the seasonality module
type Handlers struct {
	detector *seasonality.Detector
	log      zerolog.Logger
}

// NewHandlers creates a new seasonality handlers instance
func NewHandlers(detector *seasonality.Detector, log zerolog.Logger) *Handlers {
	return &Handlers{
		detector: detector,
		log:      log.With().Str("module", "seasonality_handlers").Logger(),
	}
}

// BreaksRequest represents a break-detection request for one product
type BreaksRequest struct {
	ProductID string             `json:"product_id"`
	History   []api.HistoryPoint `json:"history"`
}

// HandleBreaks handles POST /api/seasonality/breaks
func (h *Handlers) HandleBreaks(w http.ResponseWriter, r *http.Request) {
	var req BreaksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode seasonality request")
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

	report, err := h.detector.DetectBreaks(req.ProductID, history)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Str("product", req.ProductID).Msg("Break detection failed")
		h.writeError(w, "Break detection failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, report)
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
