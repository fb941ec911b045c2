package insights

import (
	"time"

	"github.com/aristath/retailmind/internal/modules/forecasting"
	"github.com/aristath/retailmind/internal/modules/scoring"
	"github.com/aristath/retailmind/internal/modules/synergy"
)

// ProductInsight bundles everything the dashboard shows for one product.
type ProductInsight struct {
	ProductID      string                 `json:"product_id"`
	Metrics        scoring.Metrics        `json:"metrics"`
	Classification scoring.Classification `json:"classification"`
	Forecast       forecasting.Result     `json:"forecast"`
}

// Snapshot is one full analysis run over the held dataset.
type Snapshot struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Products    []ProductInsight `json:"products"`
	Synergy     synergy.Analysis `json:"synergy"`
}
