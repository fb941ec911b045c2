package forecasting

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aristath/retailmind/internal/domain"
)

// trailingWindow is the number of trailing observations the fallback (and the
// growth baseline) is computed over.
const trailingWindow = 30

// fallbackNoiseScale scales the trailing standard deviation into the Gaussian
// perturbation applied to each fallback forecast value.
const fallbackNoiseScale = 0.2

// trailingStats returns mean and standard deviation of sales over the trailing
// window. An empty history yields zeros.
func trailingStats(history domain.ProductHistory) (mean, std float64) {
	sales := history.Tail(trailingWindow).Sales()
	if len(sales) == 0 {
		return 0, 0
	}
	mean = stat.Mean(sales, nil)
	if len(sales) > 1 {
		std = stat.StdDev(sales, nil)
	}
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

// trailingMeanForecast is the deterministic fallback: a constant-mean forecast
// with Gaussian noise at 0.2x the trailing standard deviation and bounds one
// standard deviation around each value. It assumes steady state, so growth is
// pinned to zero. This path never fails; an empty trailing window degrades to
// an all-zero forecast.
func trailingMeanForecast(productID string, history domain.ProductHistory, horizonDays int, diagnostic string) Result {
	mean, std := trailingStats(history)

	var lastDate time.Time
	if len(history) > 0 {
		lastDate = history.LastDate()
	} else {
		lastDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	noise := distuv.Normal{Mu: mean, Sigma: std * fallbackNoiseScale}

	points := make([]ForecastPoint, 0, horizonDays)
	peak := lastDate.AddDate(0, 0, 1)
	peakVal := math.Inf(-1)
	for d := 1; d <= horizonDays; d++ {
		val := mean
		if noise.Sigma > 0 {
			val = math.Max(0, noise.Rand())
		}
		pt := ForecastPoint{
			Date:     lastDate.AddDate(0, 0, d),
			Forecast: val,
			Lower:    math.Max(0, val-std),
			Upper:    val + std,
		}
		if pt.Forecast > peakVal {
			peakVal = pt.Forecast
			peak = pt.Date
		}
		points = append(points, pt)
	}

	return Result{
		ProductID:   productID,
		Points:      points,
		RecentAvg:   mean,
		ForecastAvg: mean,
		GrowthPct:   0,
		PeakDay:     peak,
		Fallback:    true,
		Diagnostic:  diagnostic,
	}
}
