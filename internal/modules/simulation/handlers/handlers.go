// Package handlers provides HTTP handlers for the what-if simulation API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/modules/simulation"
)

// Handlers provides HTTP handlers for the simulation module
type Handlers struct {
	simulator *simulation.Simulator
	log       zerolog.Logger
}

// NewHandlers creates a new simulation handlers instance
func NewHandlers(simulator *simulation.Simulator, log zerolog.Logger) *Handlers {
	return &Handlers{
		simulator: simulator,
		log:       log.With().Str("module", "simulation_handlers").Logger(),
	}
}

// PriceChangeRequest represents a price-change scenario
type PriceChangeRequest struct {
	ProductID      string  `json:"product_id"`
	CurrentPrice   float64 `json:"current_price"`
	NewPrice       float64 `json:"new_price"`
	CurrentDemand  float64 `json:"current_demand"`
	ForecastDemand float64 `json:"forecast_demand"`
}

// PromotionRequest represents a promotion scenario
type PromotionRequest struct {
	ProductID      string  `json:"product_id"`
	DiscountPct    float64 `json:"discount_pct"`
	DurationDays   int     `json:"duration_days"`
	CurrentDemand  float64 `json:"current_demand"`
	ForecastDemand float64 `json:"forecast_demand"`
	AvgPrice       float64 `json:"avg_price"`
}

// InventoryChangeRequest represents an inventory-level scenario
type InventoryChangeRequest struct {
	ProductID        string  `json:"product_id"`
	CurrentStockDays float64 `json:"current_stock_days"`
	NewStockDays     float64 `json:"new_stock_days"`
	CurrentDemand    float64 `json:"current_demand"`
}

// HandlePriceChange handles POST /api/simulate/price-change
func (h *Handlers) HandlePriceChange(w http.ResponseWriter, r *http.Request) {
	var req PriceChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode price-change request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		h.writeError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.simulator.SimulatePriceChange(
		req.ProductID, req.CurrentPrice, req.NewPrice, req.CurrentDemand, req.ForecastDemand))
}

// HandlePromotion handles POST /api/simulate/promotion
func (h *Handlers) HandlePromotion(w http.ResponseWriter, r *http.Request) {
	var req PromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode promotion request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		h.writeError(w, "product_id is required", http.StatusBadRequest)
		return
	}
	if req.DurationDays <= 0 {
		h.writeError(w, "duration_days must be positive", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.simulator.SimulatePromotion(
		req.ProductID, req.DiscountPct, req.DurationDays, req.CurrentDemand, req.ForecastDemand, req.AvgPrice))
}

// HandleInventoryChange handles POST /api/simulate/inventory-change
func (h *Handlers) HandleInventoryChange(w http.ResponseWriter, r *http.Request) {
	var req InventoryChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode inventory-change request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		h.writeError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.simulator.SimulateInventoryChange(
		req.ProductID, req.CurrentStockDays, req.NewStockDays, req.CurrentDemand))
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
