// Package forecasting produces multi-day demand forecasts with confidence
// bounds. The primary path is a seasonal regression over the full history; any
// fitting or prediction failure falls back to a trailing-mean forecast that
// never fails. Both paths return the same Result shape and callers must treat
// a fallback result as fully valid.
package forecasting

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/aristath/retailmind/internal/domain"
)

// Forecaster trains and caches per-product seasonal models. The cache is a
// performance optimization only: retraining on every call would be equally
// correct. Concurrent calls for different products never contend on training;
// two concurrent calls for the same uncached product may redundantly train.
type Forecaster struct {
	mu     sync.RWMutex
	models map[string]*seasonalModel
	log    zerolog.Logger
}

// New creates a forecaster with an empty model cache.
func New(log zerolog.Logger) *Forecaster {
	return &Forecaster{
		models: make(map[string]*seasonalModel),
		log:    log.With().Str("component", "forecaster").Logger(),
	}
}

// Forecast produces a horizonDays-day forecast for one product. The only
// failing input is an empty history; every other degenerate case degrades to
// the fallback path.
func (f *Forecaster) Forecast(productID string, history domain.ProductHistory, horizonDays int) (Result, error) {
	if len(history) == 0 {
		return Result{}, fmt.Errorf("forecast %s: %w", productID, domain.ErrInsufficientData)
	}
	if horizonDays < 1 {
		horizonDays = 1
	}

	model, err := f.modelFor(productID, history)
	if err != nil {
		f.log.Warn().Err(err).Str("product", productID).Msg("Seasonal model fit failed, using trailing-mean fallback")
		return trailingMeanForecast(productID, history, horizonDays, err.Error()), nil
	}

	points, err := model.predict(horizonDays)
	if err != nil {
		f.log.Warn().Err(err).Str("product", productID).Msg("Seasonal model predict failed, using trailing-mean fallback")
		f.Invalidate(productID)
		return trailingMeanForecast(productID, history, horizonDays, err.Error()), nil
	}

	recentAvg, _ := trailingStats(history)
	forecasts := make([]float64, len(points))
	peak := points[0].Date
	peakVal := points[0].Forecast
	for i, p := range points {
		forecasts[i] = p.Forecast
		if p.Forecast > peakVal {
			peakVal = p.Forecast
			peak = p.Date
		}
	}
	forecastAvg := stat.Mean(forecasts, nil)

	growthPct := 0.0
	if recentAvg > 0 {
		growthPct = (forecastAvg - recentAvg) / recentAvg * 100
	}

	return Result{
		ProductID:   productID,
		Points:      points,
		RecentAvg:   recentAvg,
		ForecastAvg: forecastAvg,
		GrowthPct:   growthPct,
		PeakDay:     peak,
	}, nil
}

// modelFor returns the cached model for a product, training one when absent.
func (f *Forecaster) modelFor(productID string, history domain.ProductHistory) (*seasonalModel, error) {
	f.mu.RLock()
	model, ok := f.models[productID]
	f.mu.RUnlock()
	// Reuse only while the history still ends where the model was trained;
	// otherwise forecast dates would no longer follow the last observation.
	if ok && model.lastDate.Equal(history.LastDate()) {
		return model, nil
	}

	model, err := fitSeasonalModel(history)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.models[productID] = model
	f.mu.Unlock()

	f.log.Debug().Str("product", productID).Int("observations", len(history)).Msg("Trained seasonal model")
	return model, nil
}

// Invalidate drops the cached model for a product, forcing retraining on the
// next forecast call.
func (f *Forecaster) Invalidate(productID string) {
	f.mu.Lock()
	delete(f.models, productID)
	f.mu.Unlock()
}
