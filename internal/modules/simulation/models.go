package simulation

// Recommendation tags the advisory attached to a simulation outcome.
type Recommendation string

const (
	RecommendIncrease Recommendation = "INCREASE"
	RecommendDecrease Recommendation = "DECREASE"
	RecommendHold     Recommendation = "HOLD"
	RecommendRun      Recommendation = "RUN"
	RecommendModify   Recommendation = "MODIFY"
	RecommendAvoid    Recommendation = "AVOID"
)

// CrossEffect is a first-order demand effect on a product paired with the
// simulated one in the cross-elasticity table.
type CrossEffect struct {
	ProductID       string  `json:"product_id"`
	DemandChangePct float64 `json:"demand_change_pct"`
}

// PriceChangeResult projects the outcome of moving a product to a new price.
type PriceChangeResult struct {
	Scenario         string         `json:"scenario"`
	ProductID        string         `json:"product_id"`
	PriceChangePct   float64        `json:"price_change_pct"`
	DemandChangePct  float64        `json:"demand_change_pct"`
	NewDemand        float64        `json:"new_demand"`
	NewForecast      float64        `json:"new_forecast"`
	RevenueChangePct float64        `json:"revenue_change_pct"`
	ProfitChangePct  float64        `json:"profit_change_pct"`
	CrossEffects     []CrossEffect  `json:"cross_effects"`
	Recommendation   Recommendation `json:"recommendation"`
}

// PromotionResult projects the outcome of a limited-time discount.
type PromotionResult struct {
	Scenario        string         `json:"scenario"`
	ProductID       string         `json:"product_id"`
	DiscountPct     float64        `json:"discount_pct"`
	DurationDays    int            `json:"duration_days"`
	LiftPct         float64        `json:"lift_pct"`
	PostPromoDipPct float64        `json:"post_promo_dip_pct"`
	AdditionalUnits float64        `json:"additional_units"`
	PromotionCost   float64        `json:"promotion_cost"`
	NetProfit       float64        `json:"net_profit"`
	ROIPct          float64        `json:"roi_pct"`
	Recommendation  Recommendation `json:"recommendation"`
}

// InventoryChangeResult projects the outcome of changing the stock coverage
// target.
type InventoryChangeResult struct {
	Scenario              string         `json:"scenario"`
	ProductID             string         `json:"product_id"`
	StockChangePct        float64        `json:"stock_change_pct"`
	StockoutRiskChangePct float64        `json:"stockout_risk_change_pct"`
	HoldingCostChangePct  float64        `json:"holding_cost_change_pct"`
	LostSalesRiskPct      float64        `json:"lost_sales_risk_pct"`
	NetDailyImpact        float64        `json:"net_daily_impact"`
	Recommendation        Recommendation `json:"recommendation"`
}
