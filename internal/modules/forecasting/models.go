package forecasting

import "time"

// ForecastPoint is a single forecasted day with its 85% prediction interval.
type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Forecast float64   `json:"forecast"`
	Lower    float64   `json:"forecast_lower"`
	Upper    float64   `json:"forecast_upper"`
}

// Result is the output of a forecast call. Fallback results are fully valid:
// Diagnostic only records why the seasonal model was not used.
type Result struct {
	ProductID   string          `json:"product_id"`
	Points      []ForecastPoint `json:"points"`
	RecentAvg   float64         `json:"recent_avg"`
	ForecastAvg float64         `json:"forecast_avg"`
	GrowthPct   float64         `json:"growth_pct"`
	PeakDay     time.Time       `json:"peak_day"`
	Fallback    bool            `json:"fallback"`
	Diagnostic  string          `json:"diagnostic,omitempty"`
}
