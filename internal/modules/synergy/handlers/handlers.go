// Package handlers provides HTTP handlers for the synergy API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/domain"
	"github.com/aristath/retailmind/internal/modules/synergy"
	"github.com/aristath/retailmind/pkg/api"
)

// Handlers provides HTTP handlers for the synergy module
type Handlers struct {
	detector *synergy.Detector
	log      zerolog.Logger
}

// NewHandlers creates a new synergy handlers instance
func NewHandlers(detector *synergy.Detector, log zerolog.Logger) *Handlers {
	return &Handlers{
		detector: detector,
		log:      log.With().Str("module", "synergy_handlers").Logger(),
	}
}

// AnalyzeRequest carries per-product histories keyed by product id
type AnalyzeRequest struct {
	Histories map[string][]api.HistoryPoint `json:"histories"`
}

// HandleAnalyze handles POST /api/synergies
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode synergy request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Histories) == 0 {
		h.writeError(w, "histories is required", http.StatusBadRequest)
		return
	}

	histories, err := api.ParseHistories(req.Histories)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.detector.Analyze(domain.BuildDataset(histories)))
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
