package forecasting

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/retailmind/internal/domain"
)

func makeHistory(productID string, start time.Time, sales []float64) domain.ProductHistory {
	h := make(domain.ProductHistory, 0, len(sales))
	for i, s := range sales {
		h = append(h, domain.TimeSeriesPoint{
			Date:      start.AddDate(0, 0, i),
			ProductID: productID,
			UnitsSold: s,
		})
	}
	return h
}

// seasonalSales generates n days with a weekly pattern on top of a base level,
// enough structure for the seasonal model to fit.
func seasonalSales(n int, base float64) []float64 {
	sales := make([]float64, n)
	for i := range sales {
		sales[i] = base + 5*math.Sin(2*math.Pi*float64(i)/7)
	}
	return sales
}

func TestForecast_EmptyHistoryFails(t *testing.T) {
	f := New(zerolog.Nop())

	_, err := f.Forecast("Milk", domain.ProductHistory{}, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestForecast_HorizonAndDates(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, seasonalSales(90, 50))

	result, err := f.Forecast("Milk", history, 7)
	require.NoError(t, err)

	require.Len(t, result.Points, 7)
	// Dates are contiguous daily steps starting the day after the last
	// observation, on both the seasonal and fallback paths.
	last := history.LastDate()
	for i, p := range result.Points {
		assert.Equal(t, last.AddDate(0, 0, i+1), p.Date)
	}
}

func TestForecast_BoundsInvariant(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, seasonalSales(120, 30))

	result, err := f.Forecast("Milk", history, 14)
	require.NoError(t, err)

	for _, p := range result.Points {
		assert.GreaterOrEqual(t, p.Forecast, 0.0)
		assert.LessOrEqual(t, p.Lower, p.Forecast, "lower bound must not exceed forecast")
		assert.GreaterOrEqual(t, p.Upper, p.Forecast, "upper bound must not fall below forecast")
	}
}

func TestForecast_ShortHistoryUsesFallback(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, []float64{10, 12, 11, 9, 13})

	result, err := f.Forecast("Milk", history, 7)
	require.NoError(t, err)

	assert.True(t, result.Fallback)
	assert.NotEmpty(t, result.Diagnostic)
	assert.Equal(t, 0.0, result.GrowthPct, "fallback assumes steady state")
	require.Len(t, result.Points, 7)
	for _, p := range result.Points {
		assert.GreaterOrEqual(t, p.Forecast, 0.0)
		assert.LessOrEqual(t, p.Lower, p.Forecast)
		assert.GreaterOrEqual(t, p.Upper, p.Forecast)
	}
}

func TestForecast_SingleObservationFallback(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, []float64{42})

	result, err := f.Forecast("Milk", history, 3)
	require.NoError(t, err)

	assert.True(t, result.Fallback)
	require.Len(t, result.Points, 3)
	// A single observation has zero spread, so the forecast is the value itself.
	for _, p := range result.Points {
		assert.Equal(t, 42.0, p.Forecast)
		assert.Equal(t, 42.0, p.Lower)
		assert.Equal(t, 42.0, p.Upper)
	}
}

func TestForecast_AllZeroHistory(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, make([]float64, 60))

	result, err := f.Forecast("Milk", history, 7)
	require.NoError(t, err)

	require.Len(t, result.Points, 7)
	for _, p := range result.Points {
		assert.Equal(t, 0.0, p.Forecast)
		assert.GreaterOrEqual(t, p.Upper, 0.0)
	}
	assert.Equal(t, 0.0, result.GrowthPct)
}

func TestForecast_CacheInvalidatedWhenHistoryGrows(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, seasonalSales(90, 50))

	first, err := f.Forecast("Milk", history, 7)
	require.NoError(t, err)

	// Extend the history by a day; forecast dates must follow the new end.
	grown := append(history, domain.TimeSeriesPoint{
		Date:      history.LastDate().AddDate(0, 0, 1),
		ProductID: "Milk",
		UnitsSold: 50,
	})
	second, err := f.Forecast("Milk", grown, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Points[0].Date.AddDate(0, 0, 1), second.Points[0].Date)
}

func TestForecast_MinimumHorizon(t *testing.T) {
	f := New(zerolog.Nop())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := makeHistory("Milk", start, seasonalSales(60, 20))

	result, err := f.Forecast("Milk", history, 0)
	require.NoError(t, err)

	assert.Len(t, result.Points, 1, "non-positive horizon clamps to one day")
}
