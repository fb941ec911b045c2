// Package handlers provides HTTP handlers for dataset uploads and cached
// analysis snapshots.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/insights"
	"github.com/aristath/retailmind/pkg/api"
)

// Handlers provides HTTP handlers for the insights module
type Handlers struct {
	state    *insights.StateManager
	analyzer *insights.Analyzer
	log      zerolog.Logger
}

// NewHandlers creates a new insights handlers instance
func NewHandlers(state *insights.StateManager, analyzer *insights.Analyzer, log zerolog.Logger) *Handlers {
	return &Handlers{
		state:    state,
		analyzer: analyzer,
		log:      log.With().Str("module", "insights_handlers").Logger(),
	}
}

// DatasetRequest carries a full multi-product dataset upload
type DatasetRequest struct {
	Histories map[string][]api.HistoryPoint `json:"histories"`
}

// HandleUploadDataset handles POST /api/insights/dataset. The upload replaces
// the held dataset and triggers an immediate re-analysis.
func (h *Handlers) HandleUploadDataset(w http.ResponseWriter, r *http.Request) {
	var req DatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode dataset upload")
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

	h.state.SetHistories(histories)
	snapshot := h.analyzer.Analyze(histories)
	h.state.SetSnapshot(snapshot)

	h.writeJSON(w, map[string]interface{}{
		"status":      "success",
		"snapshot_id": snapshot.ID,
		"products":    len(histories),
	})
}

// HandleGetSnapshot handles GET /api/insights/snapshot
func (h *Handlers) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.state.Snapshot()
	if !ok {
		h.writeError(w, "No snapshot available; upload a dataset first", http.StatusNotFound)
		return
	}
	h.writeJSON(w, snapshot)
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
