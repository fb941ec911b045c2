// Package scoring derives per-product demand metrics from a trailing history
// window and classifies each product into a risk/opportunity category with an
// additive scoring rule. Every degenerate numeric case (zero means, short
// windows) degrades to 0 rather than failing; only an empty history errors.
package scoring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/aristath/retailmind/internal/domain"
)

const (
	// metricsWindow is the trailing window all metrics are computed over.
	metricsWindow = 30

	// stockoutEpsilon keeps the z-score denominator finite on flat sales.
	stockoutEpsilon = 1e-6
)

// CalculateMetrics derives the assessment metrics for one product over the
// trailing 30-point window.
func CalculateMetrics(history domain.ProductHistory) (Metrics, error) {
	if len(history) == 0 {
		return Metrics{}, fmt.Errorf("calculate metrics: %w", domain.ErrInsufficientData)
	}

	recent := history.Tail(metricsWindow)
	sales := recent.Sales()
	inventories := recent.Inventories()
	prices := recent.Prices()

	salesMean := stat.Mean(sales, nil)
	salesStd := safeStdDev(sales)
	invMean := stat.Mean(inventories, nil)
	priceMean := stat.Mean(prices, nil)
	priceStd := safeStdDev(prices)

	m := Metrics{
		ProductID:  recent[0].ProductID,
		CurrentAvg: salesMean,
		Trend7d:    windowTrend(recent.Sales(), 7),
		Trend30d:   windowTrend(history.Sales(), 30),
	}

	if salesMean > 0 {
		m.Volatility = salesStd / salesMean
		m.DaysOfStock = invMean / salesMean
		m.StockoutRisk = stockoutRisk(salesMean, salesStd, invMean)
	}
	m.PriceStability = 1.0
	if priceMean > 0 {
		m.PriceStability = 1 - priceStd/priceMean
	}

	return m, nil
}

// windowTrend is the percent change between the mean of the most recent n
// points and the mean of the preceding n points. With fewer than 2n points the
// leading n points serve as the baseline; a zero baseline yields 0.
func windowTrend(sales []float64, n int) float64 {
	if len(sales) < n {
		return 0
	}

	recent := sales[len(sales)-n:]
	var older []float64
	if len(sales) >= 2*n {
		older = sales[len(sales)-2*n : len(sales)-n]
	} else {
		older = sales[:n]
	}

	olderMean := stat.Mean(older, nil)
	if olderMean == 0 {
		return 0
	}
	return (stat.Mean(recent, nil) - olderMean) / olderMean * 100
}

// stockoutRisk is a crude linear proxy for stockout probability, not a
// calibrated estimate. The exact formula is load-bearing: the classification
// thresholds elsewhere were tuned against it.
func stockoutRisk(salesMean, salesStd, invMean float64) float64 {
	z := (invMean - salesMean) / (salesStd + stockoutEpsilon)
	return clamp(0.5-0.2*z, 0, 1)
}

func safeStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	std := stat.StdDev(values, nil)
	if math.IsNaN(std) {
		return 0
	}
	return std
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
