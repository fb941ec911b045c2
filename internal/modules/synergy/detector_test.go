package synergy

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/retailmind/internal/domain"
)

func makeDataset(sales map[string][]float64) domain.Dataset {
	var n int
	for _, s := range sales {
		n = len(s)
		break
	}
	dates := make([]time.Time, n)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return domain.Dataset{Dates: dates, Sales: sales}
}

// wave produces a positive oscillating series so correlation is well-defined
// and every day has nonzero sales.
func wave(n int, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 10 + 3*math.Sin(2*math.Pi*float64(i)/7+phase)
	}
	return out
}

func TestAnalyze_IdenticalSeriesScoreOne(t *testing.T) {
	d := NewDetector(Config{}, zerolog.Nop())
	a := wave(30, 0)
	b := make([]float64, len(a))
	copy(b, a)

	analysis := d.Analyze(makeDataset(map[string][]float64{"Milk": a, "Cereal": b}))

	require.Len(t, analysis.Synergies, 1)
	assert.NotEmpty(t, analysis.AnalysisID)
	pair := analysis.Synergies[0]
	assert.InDelta(t, 1.0, pair.Correlation, 1e-9)
	// Both sell every day and correlate perfectly: 0.6*1 + 0.4*1 = 1.0.
	assert.InDelta(t, 1.0, pair.Score, 1e-9)
	assert.InDelta(t, 100.0, pair.ExpectedLiftPct, 1e-9)
	assert.Equal(t, RelationshipComplementary, pair.Relationship)
}

func TestAnalyze_AntiCorrelatedAreSubstitutes(t *testing.T) {
	d := NewDetector(Config{}, zerolog.Nop())
	a := wave(30, 0)
	b := wave(30, math.Pi)

	analysis := d.Analyze(makeDataset(map[string][]float64{"Milk": a, "OatMilk": b}))

	require.Len(t, analysis.Synergies, 1)
	pair := analysis.Synergies[0]
	assert.Less(t, pair.Correlation, 0.0)
	assert.Equal(t, RelationshipSubstitute, pair.Relationship)

	require.NotEmpty(t, analysis.Recommendations)
	assert.Equal(t, RecommendationSeparate, analysis.Recommendations[0].Type)
}

func TestAnalyze_UncorrelatedYieldsNoSynergy(t *testing.T) {
	d := NewDetector(Config{}, zerolog.Nop())
	// Constant series have zero-defined correlation, which resolves to 0 and
	// stays below the gate.
	a := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	b := wave(14, 0)

	analysis := d.Analyze(makeDataset(map[string][]float64{"Milk": a, "Bread": b}))

	assert.Empty(t, analysis.Synergies)
	require.Len(t, analysis.Recommendations, 1)
	assert.Equal(t, RecommendationNone, analysis.Recommendations[0].Type)
	assert.Equal(t, 0, analysis.Summary.TotalSynergies)
	assert.Empty(t, analysis.RippleEffects)
}

func TestAnalyze_SortedByScore(t *testing.T) {
	d := NewDetector(Config{}, zerolog.Nop())
	a := wave(30, 0)
	identical := make([]float64, len(a))
	copy(identical, a)
	// Same shape with mild noise correlates strongly but below 1.
	noisy := make([]float64, len(a))
	for i, v := range a {
		noisy[i] = v + 0.5*math.Sin(float64(i)*1.3)
	}

	analysis := d.Analyze(makeDataset(map[string][]float64{
		"Milk":   a,
		"Cereal": identical,
		"Bread":  noisy,
	}))

	require.NotEmpty(t, analysis.Synergies)
	for i := 1; i < len(analysis.Synergies); i++ {
		assert.GreaterOrEqual(t, analysis.Synergies[i-1].Score, analysis.Synergies[i].Score)
	}
	assert.Equal(t, len(analysis.Synergies), analysis.Summary.TotalSynergies)
	assert.NotEmpty(t, analysis.Summary.TopPair)
}

func TestAnalyze_RippleOnTrendingProduct(t *testing.T) {
	d := NewDetector(Config{}, zerolog.Nop())
	// Two identical series whose last week jumps well above the prior week.
	a := make([]float64, 30)
	for i := range a {
		if i >= 23 {
			a[i] = 20
		} else {
			a[i] = 10
		}
	}
	b := make([]float64, len(a))
	copy(b, a)

	analysis := d.Analyze(makeDataset(map[string][]float64{"Milk": a, "Cereal": b}))

	require.Len(t, analysis.Synergies, 1)
	require.NotEmpty(t, analysis.RippleEffects)

	ripple := analysis.RippleEffects[0]
	assert.Greater(t, ripple.TrendPct, 10.0)
	assert.Equal(t, "Stock up on complements", ripple.Action)
	require.Len(t, ripple.Related, 1)
	assert.Greater(t, ripple.Related[0].PredictedChangePct, 0.0)
	assert.Equal(t, RelationshipComplementary, ripple.Related[0].Relationship)
}
