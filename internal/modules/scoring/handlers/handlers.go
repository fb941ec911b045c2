// Package handlers provides HTTP handlers for the scoring API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/domain"
	"github.com/aristath/retailmind/internal/modules/scoring"
	"github.com/aristath/retailmind/pkg/api"
)

// Handlers provides HTTP handlers for the scoring module
type Handlers struct {
	log zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(log zerolog.Logger) *Handlers {
	return &Handlers{
		log: log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// MetricsRequest represents a request to derive metrics for one product
type MetricsRequest struct {
	ProductID string             `json:"product_id"`
	History   []api.HistoryPoint `json:"history"`
}

// ClassifyRequest represents a request to classify one product. The forecast
// growth feeds the opportunity score; omit it to classify on metrics alone.
type ClassifyRequest struct {
	ProductID         string             `json:"product_id"`
	History           []api.HistoryPoint `json:"history"`
	ForecastGrowthPct float64            `json:"forecast_growth_pct,omitempty"`
}

// ClassifyResponse bundles the derived metrics with the classification
type ClassifyResponse struct {
	Metrics        scoring.Metrics        `json:"metrics"`
	Classification scoring.Classification `json:"classification"`
}

// HandleMetrics handles POST /api/scoring/metrics
func (h *Handlers) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	var req MetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode metrics request")
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

	metrics, err := scoring.CalculateMetrics(history)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Str("product", req.ProductID).Msg("Metrics calculation failed")
		h.writeError(w, "Metrics calculation failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, metrics)
}

// HandleClassify handles POST /api/scoring/classify
func (h *Handlers) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode classify request")
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

	metrics, err := scoring.CalculateMetrics(history)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Str("product", req.ProductID).Msg("Metrics calculation failed")
		h.writeError(w, "Metrics calculation failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, ClassifyResponse{
		Metrics:        metrics,
		Classification: scoring.Classify(metrics, req.ForecastGrowthPct),
	})
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
