// Package handlers provides HTTP handlers for the competitive analysis API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/modules/competitive"
)

// Handlers provides HTTP handlers for the competitive module
type Handlers struct {
	analyzer *competitive.Analyzer
	log      zerolog.Logger
}

// NewHandlers creates a new competitive handlers instance
func NewHandlers(analyzer *competitive.Analyzer, log zerolog.Logger) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		log:      log.With().Str("module", "competitive_handlers").Logger(),
	}
}

// PositionRequest carries the price quotes to analyze
type PositionRequest struct {
	Quotes []competitive.Quote `json:"quotes"`
}

// SimulateRequest represents a competitor price-change scenario
type SimulateRequest struct {
	ProductID                string  `json:"product_id"`
	CompetitorPriceChangePct float64 `json:"competitor_price_change_pct"`
}

// HandlePosition handles POST /api/competitive/position
func (h *Handlers) HandlePosition(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode position request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Quotes) == 0 {
		h.writeError(w, "quotes is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.analyzer.AnalyzePosition(req.Quotes))
}

// HandleSimulate handles POST /api/competitive/simulate
func (h *Handlers) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode simulate request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		h.writeError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.analyzer.SimulateCompetitorPriceChange(req.ProductID, req.CompetitorPriceChangePct))
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
