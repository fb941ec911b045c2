// Package seasonality detects when recent sales deviate from the historical
// seasonal pattern for the same time of year. The expected pattern is the
// per-day-of-year mean smoothed with a short moving average; trailing-window
// observations that deviate beyond a threshold become break events.
package seasonality

import (
	"fmt"
	"math"

	"github.com/markcheno/go-talib"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/aristath/retailmind/internal/domain"
)

// Signal marks the direction of a seasonal deviation.
type Signal string

const (
	SignalAbove Signal = "ABOVE"
	SignalBelow Signal = "BELOW"
)

// Magnitude buckets a deviation by severity.
type Magnitude string

const (
	MagnitudeHigh   Magnitude = "HIGH"
	MagnitudeMedium Magnitude = "MEDIUM"
)

// Break is a single observation deviating from the expected seasonal level.
type Break struct {
	Date         string    `json:"date"`
	Actual       float64   `json:"actual"`
	Expected     float64   `json:"expected"`
	DeviationPct float64   `json:"deviation_pct"`
	Signal       Signal    `json:"signal"`
	Magnitude    Magnitude `json:"magnitude"`
}

// InsightType tags a generated insight.
type InsightType string

const (
	InsightNoBreak       InsightType = "NO_BREAK"
	InsightBreakDetected InsightType = "BREAK_DETECTED"
	InsightHypothesis    InsightType = "HYPOTHESIS"
	InsightAction        InsightType = "ACTION"
)

// Insight is a structured business observation derived from the breaks.
type Insight struct {
	Type     InsightType `json:"type"`
	Message  string      `json:"message"`
	Severity string      `json:"severity,omitempty"`
	Causes   []string    `json:"causes,omitempty"`
	Action   string      `json:"action,omitempty"`
}

// Report is the output of one break-detection run.
type Report struct {
	ProductID   string    `json:"product_id"`
	Breaks      []Break   `json:"breaks"`
	TotalBreaks int       `json:"total_breaks"`
	Insights    []Insight `json:"insights"`
}

// Config holds detection parameters. Zero values fall back to defaults.
type Config struct {
	WindowSize            int     // trailing observations inspected for breaks
	DeviationThresholdPct float64 // minimum |deviation| to count as a break
}

const (
	defaultWindowSize         = 30
	defaultDeviationThreshold = 25.0
	highDeviationThreshold    = 40.0
	patternSmoothingPeriod    = 7
	daysOfYear                = 366
)

// Detector compares recent sales against the historical seasonal pattern.
type Detector struct {
	cfg Config
	log zerolog.Logger
}

// NewDetector creates a seasonality break detector.
func NewDetector(cfg Config, log zerolog.Logger) *Detector {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = defaultWindowSize
	}
	if cfg.DeviationThresholdPct <= 0 {
		cfg.DeviationThresholdPct = defaultDeviationThreshold
	}
	return &Detector{
		cfg: cfg,
		log: log.With().Str("component", "seasonality_detector").Logger(),
	}
}

// DetectBreaks scans the trailing window of a product history for deviations
// from the expected seasonal level.
func (d *Detector) DetectBreaks(productID string, history domain.ProductHistory) (Report, error) {
	if len(history) == 0 {
		return Report{}, fmt.Errorf("detect breaks %s: %w", productID, domain.ErrInsufficientData)
	}

	expected := d.seasonalPattern(history)
	recent := history.Tail(d.cfg.WindowSize)

	breaks := make([]Break, 0)
	for _, pt := range recent {
		exp := expected[pt.Date.YearDay()-1]
		if math.IsNaN(exp) || exp <= 0 {
			continue
		}
		deviation := (pt.UnitsSold - exp) / exp * 100
		if math.Abs(deviation) <= d.cfg.DeviationThresholdPct {
			continue
		}

		signal := SignalBelow
		if deviation > 0 {
			signal = SignalAbove
		}
		magnitude := MagnitudeMedium
		if math.Abs(deviation) > highDeviationThreshold {
			magnitude = MagnitudeHigh
		}
		breaks = append(breaks, Break{
			Date:         pt.Date.Format("2006-01-02"),
			Actual:       pt.UnitsSold,
			Expected:     exp,
			DeviationPct: deviation,
			Signal:       signal,
			Magnitude:    magnitude,
		})
	}

	report := Report{
		ProductID:   productID,
		Breaks:      breaks,
		TotalBreaks: len(breaks),
		Insights:    d.buildInsights(productID, breaks),
	}

	d.log.Debug().Str("product", productID).Int("breaks", len(breaks)).Msg("Seasonality scan complete")
	return report, nil
}

// seasonalPattern computes the expected sales level per day of year: the mean
// across historical observations on that day, smoothed with a 7-point moving
// average to damp single-year noise. Days without observations are NaN.
func (d *Detector) seasonalPattern(history domain.ProductHistory) []float64 {
	sums := make([]float64, daysOfYear)
	counts := make([]float64, daysOfYear)
	for _, pt := range history {
		idx := pt.Date.YearDay() - 1
		sums[idx] += pt.UnitsSold
		counts[idx]++
	}

	means := make([]float64, daysOfYear)
	for i := range means {
		if counts[i] > 0 {
			means[i] = sums[i] / counts[i]
		} else {
			means[i] = math.NaN()
		}
	}

	// talib.Sma cannot digest NaN gaps, so smooth over the observed days only
	// and scatter the smoothed values back onto the day-of-year axis.
	observedIdx := make([]int, 0, daysOfYear)
	observed := make([]float64, 0, daysOfYear)
	for i, m := range means {
		if !math.IsNaN(m) {
			observedIdx = append(observedIdx, i)
			observed = append(observed, m)
		}
	}
	if len(observed) >= patternSmoothingPeriod {
		smoothed := talib.Sma(observed, patternSmoothingPeriod)
		for j, i := range observedIdx {
			if !math.IsNaN(smoothed[j]) && smoothed[j] > 0 {
				means[i] = smoothed[j]
			}
		}
	}
	return means
}

// buildInsights turns break events into business-facing observations with the
// same rounding rules the dashboard copy was written for.
func (d *Detector) buildInsights(productID string, breaks []Break) []Insight {
	if len(breaks) == 0 {
		return []Insight{{
			Type:    InsightNoBreak,
			Message: fmt.Sprintf("%s: Seasonality pattern holding steady", productID),
			Action:  "Monitor as usual",
		}}
	}

	deviations := make([]float64, len(breaks))
	for i, b := range breaks {
		deviations[i] = b.DeviationPct
	}
	avgDeviation := stat.Mean(deviations, nil)

	direction := "decreasing"
	if avgDeviation > 0 {
		direction = "increasing"
	}
	severity := "MEDIUM"
	if math.Abs(avgDeviation) > highDeviationThreshold {
		severity = "HIGH"
	}

	insights := []Insight{{
		Type:     InsightBreakDetected,
		Message:  fmt.Sprintf("Recent sales are %.1f%% %s vs historical pattern", math.Abs(avgDeviation), direction),
		Severity: severity,
	}}

	switch {
	case avgDeviation > defaultDeviationThreshold:
		insights = append(insights, Insight{
			Type:    InsightHypothesis,
			Message: fmt.Sprintf("Potential causes for %s", productID),
			Causes: []string{
				"New social media trend or viral content",
				"Supply chain issue resolved (better availability)",
				"Competitor stockout driving customers to you",
				"New recipe/usage trend emerging",
			},
			Action: "Investigate cause",
		})
		units := int(math.Abs(avgDeviation)/10) * 10
		insights = append(insights, Insight{
			Type:    InsightAction,
			Message: fmt.Sprintf("Increase orders by %d%% immediately", units),
			Action:  "Capitalize on emerging trend",
		})
	case avgDeviation < -defaultDeviationThreshold:
		insights = append(insights, Insight{
			Type:    InsightHypothesis,
			Message: fmt.Sprintf("Potential causes for %s", productID),
			Causes: []string{
				"New substitute product entered market",
				"Negative review/news affecting perception",
				"Quality issues reported",
				"Changing consumer preferences",
			},
			Action: "Quality check needed",
		})
		units := int(math.Abs(avgDeviation)/20) * 10
		insights = append(insights, Insight{
			Type:    InsightAction,
			Message: fmt.Sprintf("Reduce next order by %d%%", units),
			Action:  "Prevent overstock from declining demand",
		})
	}
	return insights
}
