package insights

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/retailmind/internal/domain"
	"github.com/aristath/retailmind/internal/modules/forecasting"
	"github.com/aristath/retailmind/internal/modules/scoring"
	"github.com/aristath/retailmind/internal/modules/synergy"
)

func testHistories() map[string]domain.ProductHistory {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	histories := map[string]domain.ProductHistory{}
	for _, id := range []string{"Milk", "Bread"} {
		h := make(domain.ProductHistory, 0, 60)
		for i := 0; i < 60; i++ {
			h = append(h, domain.TimeSeriesPoint{
				Date:            start.AddDate(0, 0, i),
				ProductID:       id,
				UnitsSold:       10 + 3*math.Sin(2*math.Pi*float64(i)/7),
				InventoryOnHand: 40,
				UnitPrice:       2.99,
			})
		}
		histories[id] = h
	}
	return histories
}

func newTestAnalyzer() *Analyzer {
	log := zerolog.Nop()
	return NewAnalyzer(forecasting.New(log), synergy.NewDetector(synergy.Config{}, log), 7, log)
}

func TestAnalyze_SnapshotCoversAllProducts(t *testing.T) {
	a := newTestAnalyzer()

	snapshot := a.Analyze(testHistories())

	assert.NotEmpty(t, snapshot.ID)
	assert.False(t, snapshot.GeneratedAt.IsZero())
	require.Len(t, snapshot.Products, 2)
	// Products come out in deterministic order.
	assert.Equal(t, "Bread", snapshot.Products[0].ProductID)
	assert.Equal(t, "Milk", snapshot.Products[1].ProductID)

	for _, p := range snapshot.Products {
		assert.Len(t, p.Forecast.Points, 7)
		assert.NotEmpty(t, p.Classification.Category)
		assert.Greater(t, p.Metrics.CurrentAvg, 0.0)
	}

	// Identical sales shapes correlate perfectly, so the synergy analysis
	// picks up the pair.
	assert.Equal(t, 1, snapshot.Synergy.Summary.TotalSynergies)
}

func TestAnalyze_SkipsEmptyHistories(t *testing.T) {
	a := newTestAnalyzer()
	histories := testHistories()
	histories["Ghost"] = domain.ProductHistory{}

	snapshot := a.Analyze(histories)

	require.Len(t, snapshot.Products, 2, "empty histories are skipped, not fatal")
}

func TestAnalyze_ConstantDemandScenario(t *testing.T) {
	// 30 days at a flat 100 units/day, 300 on hand, $2.00 throughout.
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := make(domain.ProductHistory, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, domain.TimeSeriesPoint{
			Date:            start.AddDate(0, 0, i),
			ProductID:       "Milk",
			UnitsSold:       100,
			InventoryOnHand: 300,
			UnitPrice:       2.00,
		})
	}

	snapshot := newTestAnalyzer().Analyze(map[string]domain.ProductHistory{"Milk": history})
	require.Len(t, snapshot.Products, 1)
	p := snapshot.Products[0]

	assert.InDelta(t, 100.0, p.Metrics.CurrentAvg, 1e-9)
	assert.Equal(t, 0.0, p.Metrics.Trend7d)
	assert.Equal(t, 0.0, p.Metrics.Volatility)
	assert.InDelta(t, 3.0, p.Metrics.DaysOfStock, 1e-9, "300 on hand / 100 per day")
	// z = (300-100)/1e-6 is enormous, so the risk clamps to 0.
	assert.Equal(t, 0.0, p.Metrics.StockoutRisk)

	// Only the thin-coverage point fires: risk 0, opportunity 25.
	assert.Equal(t, 0, p.Classification.RiskScore)
	assert.Equal(t, 25, p.Classification.OpportunityScore)
	assert.Equal(t, scoring.CategoryModerateOpportunity, p.Classification.Category)
	assert.Equal(t, scoring.StockoutImminent, p.Classification.StockoutStatus)

	// A featureless history forecasts flat at the observed level.
	require.Len(t, p.Forecast.Points, 7)
	for _, pt := range p.Forecast.Points {
		assert.InDelta(t, 100.0, pt.Forecast, 1.0)
	}
}

func TestAnalyze_FreshSnapshotIDs(t *testing.T) {
	a := newTestAnalyzer()
	histories := testHistories()

	first := a.Analyze(histories)
	second := a.Analyze(histories)

	assert.NotEqual(t, first.ID, second.ID, "every run gets its own snapshot id")
}
