package scoring

// Category is the five-level risk/opportunity classification.
type Category string

const (
	CategoryHighRisk            Category = "HIGH RISK"
	CategoryModerateRisk        Category = "MODERATE RISK"
	CategoryNeutral             Category = "NEUTRAL"
	CategoryModerateOpportunity Category = "MODERATE OPPORTUNITY"
	CategoryHighOpportunity     Category = "HIGH OPPORTUNITY"
)

// StockoutStatus is the coverage-horizon classification.
type StockoutStatus string

const (
	StockoutImminent StockoutStatus = "IMMINENT"
	StockoutSoon     StockoutStatus = "SOON"
	StockoutSafe     StockoutStatus = "SAFE"
)

// TrendArrow is the coarse direction of the 7-day trend.
type TrendArrow string

const (
	TrendUp   TrendArrow = "up"
	TrendDown TrendArrow = "down"
	TrendFlat TrendArrow = "flat"
)

// Metrics are the per-product figures derived from a trailing history window.
// They are recomputed fresh on every call and carry no state beyond the
// product key.
type Metrics struct {
	ProductID      string  `json:"product_id"`
	CurrentAvg     float64 `json:"current_avg"`
	Trend7d        float64 `json:"trend_7d_pct"`
	Trend30d       float64 `json:"trend_30d_pct"`
	Volatility     float64 `json:"volatility"`
	DaysOfStock    float64 `json:"days_of_stock"`
	StockoutRisk   float64 `json:"stockout_risk"`
	PriceStability float64 `json:"price_stability"`
}

// Classification is the scored category assignment for one product. It is a
// pure function of (Metrics, forecast growth) with no stored lifecycle.
type Classification struct {
	Category          Category       `json:"category"`
	RiskScore         int            `json:"risk_score"`
	OpportunityScore  int            `json:"opportunity_score"`
	Priority          int            `json:"priority"`
	TrendArrow        TrendArrow     `json:"trend_arrow"`
	TrendText         string         `json:"trend_text"`
	DaysOfStock       float64        `json:"days_of_stock"`
	StockoutStatus    StockoutStatus `json:"stockout_status"`
	RecommendedAction string         `json:"recommended_action"`
}
