// Package competitive evaluates price positioning against competitor quotes
// and projects demand shifts from price gaps using per-product elasticity
// assumptions.
package competitive

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

const (
	defaultElasticity = 1.0

	// A price gap translates into demand at a tenth of its elasticity-scaled
	// magnitude; gaps are slow-acting compared with own price changes.
	gapDemandFactor = -0.1

	positionShiftGatePct = 5.0
	maxRaiseHeadroomPct  = 2.0
)

// Analyzer evaluates competitive standing from price quotes.
type Analyzer struct {
	elasticity map[string]float64
	log        zerolog.Logger
}

// NewAnalyzer creates an analyzer with a per-product elasticity table. A nil
// map is treated as empty; unknown products assume elasticity 1.0.
func NewAnalyzer(elasticity map[string]float64, log zerolog.Logger) *Analyzer {
	if elasticity == nil {
		elasticity = map[string]float64{}
	}
	return &Analyzer{
		elasticity: elasticity,
		log:        log.With().Str("component", "competitive_analyzer").Logger(),
	}
}

func (a *Analyzer) elasticityFor(productID string) float64 {
	if e, ok := a.elasticity[productID]; ok {
		return e
	}
	return defaultElasticity
}

// AnalyzePosition evaluates the standing of every quoted product and emits
// pricing recommendations for the products losing or gaining share.
func (a *Analyzer) AnalyzePosition(quotes []Quote) Report {
	standings := make([]Standing, 0, len(quotes))
	gaps := make([]float64, 0, len(quotes))

	for _, q := range quotes {
		gap := 0.0
		if q.CompetitorPrice > 0 {
			gap = (q.YourPrice - q.CompetitorPrice) / q.CompetitorPrice * 100
		}
		shift := a.elasticityFor(q.ProductID) * gap * gapDemandFactor

		standings = append(standings, Standing{
			ProductID:       q.ProductID,
			YourPrice:       q.YourPrice,
			CompetitorPrice: q.CompetitorPrice,
			PriceGapPct:     gap,
			MarketSharePct:  q.MarketSharePct,
			DemandShiftPct:  shift,
			Position:        classifyPosition(shift),
		})
		gaps = append(gaps, gap)
	}

	report := Report{
		Standings:       standings,
		Recommendations: a.buildRecommendations(standings),
		Summary:         buildSummary(standings, gaps),
	}

	a.log.Info().
		Int("products", len(standings)).
		Int("losing_share", report.Summary.LosingShare).
		Int("gaining_share", report.Summary.GainingShare).
		Msg("Competitive position analysis complete")

	return report
}

func classifyPosition(demandShiftPct float64) Position {
	switch {
	case demandShiftPct < -positionShiftGatePct:
		return PositionLosingShare
	case demandShiftPct > positionShiftGatePct:
		return PositionGainingShare
	case demandShiftPct > 0:
		return PositionSlightlyAhead
	default:
		return PositionNeutral
	}
}

// buildRecommendations advises on products losing share (match price when
// demand is price sensitive, add value otherwise) and products gaining share
// (hold or raise within a small headroom).
func (a *Analyzer) buildRecommendations(standings []Standing) []Recommendation {
	recs := make([]Recommendation, 0)
	for _, s := range standings {
		switch s.Position {
		case PositionLosingShare:
			if a.elasticityFor(s.ProductID) > 1.0 {
				recs = append(recs, Recommendation{
					ProductID: s.ProductID,
					Action:    ActionMatchPrice,
					Reason:    fmt.Sprintf("Competitor undercutting by %.1f%%", math.Abs(s.PriceGapPct)),
					Impact:    fmt.Sprintf("Regain %.1f%% demand", math.Abs(s.DemandShiftPct)),
					Priority:  "HIGH",
				})
			} else {
				recs = append(recs, Recommendation{
					ProductID: s.ProductID,
					Action:    ActionValueAdd,
					Reason:    "Low price sensitivity",
					Impact:    "Focus on quality/bundling instead",
					Priority:  "MEDIUM",
				})
			}
		case PositionGainingShare:
			recs = append(recs, Recommendation{
				ProductID: s.ProductID,
				Action:    ActionMaintainOrIncrease,
				Reason:    fmt.Sprintf("Price advantage of %.1f%%", s.PriceGapPct),
				Impact:    fmt.Sprintf("Could raise price by %.1f%%", math.Min(maxRaiseHeadroomPct, s.PriceGapPct/2)),
				Priority:  "LOW",
			})
		}
	}
	return recs
}

func buildSummary(standings []Standing, gaps []float64) Summary {
	s := Summary{}
	for _, st := range standings {
		switch st.Position {
		case PositionLosingShare:
			s.LosingShare++
		case PositionGainingShare:
			s.GainingShare++
		}
	}
	if len(gaps) > 0 {
		s.AvgPriceGapPct = stat.Mean(gaps, nil)
	}
	return s
}

// SimulateCompetitorPriceChange projects own-demand impact when a competitor
// moves their price. A competitor raising price shifts demand toward us, so
// the impact carries the same sign as the competitor's change.
func (a *Analyzer) SimulateCompetitorPriceChange(productID string, competitorChangePct float64) PriceChangeImpact {
	impact := a.elasticityFor(productID) * competitorChangePct

	verb := "lowers"
	if competitorChangePct > 0 {
		verb = "raises"
	}
	direction := "decrease"
	if impact > 0 {
		direction = "increase"
	}

	return PriceChangeImpact{
		ProductID:                productID,
		CompetitorPriceChangePct: competitorChangePct,
		DemandChangePct:          impact,
		Interpretation: fmt.Sprintf("If competitor %s price by %.1f%%, your demand will %s by %.1f%%",
			verb, math.Abs(competitorChangePct), direction, math.Abs(impact)),
	}
}
