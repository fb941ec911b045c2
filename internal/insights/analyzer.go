// Package insights holds the in-memory dataset state and produces cached
// analysis snapshots combining forecasts, classifications and synergy results
// for every product in the dataset.
package insights

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/retailmind/internal/domain"
	"github.com/aristath/retailmind/internal/modules/forecasting"
	"github.com/aristath/retailmind/internal/modules/scoring"
	"github.com/aristath/retailmind/internal/modules/synergy"
)

// Analyzer runs the full analysis pipeline over a set of product histories.
type Analyzer struct {
	forecaster  *forecasting.Forecaster
	synergy     *synergy.Detector
	horizonDays int
	log         zerolog.Logger
}

// NewAnalyzer wires the pipeline components together.
func NewAnalyzer(forecaster *forecasting.Forecaster, detector *synergy.Detector, horizonDays int, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		forecaster:  forecaster,
		synergy:     detector,
		horizonDays: horizonDays,
		log:         log.With().Str("component", "insights_analyzer").Logger(),
	}
}

// Analyze computes a fresh snapshot from the given histories. Products whose
// history is too short for any analysis are skipped with a warning rather
// than failing the whole run.
func (a *Analyzer) Analyze(histories map[string]domain.ProductHistory) Snapshot {
	start := time.Now()

	products := make([]string, 0, len(histories))
	for id := range histories {
		products = append(products, id)
	}
	sort.Strings(products)

	insights := make([]ProductInsight, 0, len(products))
	for _, id := range products {
		history := histories[id]

		forecast, err := a.forecaster.Forecast(id, history, a.horizonDays)
		if err != nil {
			a.log.Warn().Err(err).Str("product", id).Msg("Skipping product in snapshot")
			continue
		}
		metrics, err := scoring.CalculateMetrics(history)
		if err != nil {
			a.log.Warn().Err(err).Str("product", id).Msg("Skipping product in snapshot")
			continue
		}

		insights = append(insights, ProductInsight{
			ProductID:      id,
			Metrics:        metrics,
			Classification: scoring.Classify(metrics, forecast.GrowthPct),
			Forecast:       forecast,
		})
	}

	snapshot := Snapshot{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Products:    insights,
		Synergy:     a.synergy.Analyze(domain.BuildDataset(histories)),
	}

	a.log.Info().
		Str("snapshot_id", snapshot.ID).
		Int("products", len(insights)).
		Dur("elapsed", time.Since(start)).
		Msg("Analysis snapshot generated")

	return snapshot
}
