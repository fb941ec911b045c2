package scoring

import (
	"fmt"
	"math"
)

// Scoring thresholds. Risk and opportunity points are additive; the category
// decision below depends on the resulting 0-100 scores.
const (
	highRiskTrendPct        = -10 // weekly decline
	highOpportunityTrendPct = 15  // weekly growth
	overstockDays           = 25
	understockDays          = 7
	highVolatility          = 0.4
	lowVolatility           = 0.2
	forecastGrowthThreshold = 10
)

// Classify assigns a risk/opportunity category from the derived metrics and
// the forecast growth percentage. The category decision is evaluated in strict
// priority order; ties fall through to NEUTRAL.
func Classify(m Metrics, forecastGrowthPct float64) Classification {
	riskScore := 0
	if m.Trend7d < highRiskTrendPct {
		riskScore += 30
	}
	if m.DaysOfStock > overstockDays {
		riskScore += 25
	}
	if m.StockoutRisk > 0.3 {
		riskScore += 20
	}
	if m.Volatility > highVolatility {
		riskScore += 15
	}

	opportunityScore := 0
	if m.Trend7d > highOpportunityTrendPct {
		opportunityScore += 30
	}
	if m.DaysOfStock < understockDays {
		opportunityScore += 25
	}
	if forecastGrowthPct > forecastGrowthThreshold {
		opportunityScore += 20
	}
	if m.Volatility < lowVolatility && m.Trend7d > 5 {
		opportunityScore += 15
	}

	var category Category
	var priority int
	switch {
	case riskScore >= 60 && opportunityScore < 30:
		category = CategoryHighRisk
		priority = 1
	case opportunityScore >= 60 && riskScore < 30:
		category = CategoryHighOpportunity
		priority = 1
	case riskScore > opportunityScore:
		category = CategoryModerateRisk
		priority = 2
	case opportunityScore > riskScore:
		category = CategoryModerateOpportunity
		priority = 2
	default:
		category = CategoryNeutral
		priority = 3
	}

	arrow := TrendFlat
	trendText := fmt.Sprintf("%.1f%%", m.Trend7d)
	switch {
	case m.Trend7d > 5:
		arrow = TrendUp
		trendText = fmt.Sprintf("+%.1f%%", m.Trend7d)
	case m.Trend7d < -5:
		arrow = TrendDown
	}

	status := StockoutSafe
	switch {
	case m.DaysOfStock <= 3:
		status = StockoutImminent
	case m.DaysOfStock <= understockDays:
		status = StockoutSoon
	}

	return Classification{
		Category:          category,
		RiskScore:         riskScore,
		OpportunityScore:  opportunityScore,
		Priority:          priority,
		TrendArrow:        arrow,
		TrendText:         trendText,
		DaysOfStock:       m.DaysOfStock,
		StockoutStatus:    status,
		RecommendedAction: recommendedAction(category, m),
	}
}

// recommendedAction interpolates one category-specific figure into a fixed
// per-category action template.
func recommendedAction(category Category, m Metrics) string {
	switch category {
	case CategoryHighRisk:
		excess := int(m.CurrentAvg * math.Max(0, m.DaysOfStock-14))
		return fmt.Sprintf("Discount by 15-20%% to clear %d excess units", excess)
	case CategoryHighOpportunity:
		increase := int(math.Min(50, m.Trend7d*2))
		return fmt.Sprintf("Increase inventory by %d%%", increase)
	case CategoryModerateRisk:
		return "Monitor closely for 7 days"
	case CategoryModerateOpportunity:
		return "Increase promotion frequency"
	default:
		return "Maintain current levels"
	}
}
