package competitive

// Quote is one product's pricing snapshot against the competition.
type Quote struct {
	ProductID       string  `json:"product_id"`
	YourPrice       float64 `json:"your_price"`
	CompetitorPrice float64 `json:"competitor_price"`
	MarketSharePct  float64 `json:"market_share_pct"`
}

// Position classifies a product's competitive standing from its projected
// demand shift.
type Position string

const (
	PositionLosingShare   Position = "Losing Share"
	PositionGainingShare  Position = "Gaining Share"
	PositionSlightlyAhead Position = "Slightly Ahead"
	PositionNeutral       Position = "Neutral"
)

// Standing is the evaluated competitive position for one product.
type Standing struct {
	ProductID       string   `json:"product_id"`
	YourPrice       float64  `json:"your_price"`
	CompetitorPrice float64  `json:"competitor_price"`
	PriceGapPct     float64  `json:"price_gap_pct"`
	MarketSharePct  float64  `json:"market_share_pct"`
	DemandShiftPct  float64  `json:"demand_shift_pct"`
	Position        Position `json:"position"`
}

// Action tags a pricing recommendation.
type Action string

const (
	ActionMatchPrice         Action = "MATCH_PRICE"
	ActionValueAdd           Action = "VALUE_ADD"
	ActionMaintainOrIncrease Action = "MAINTAIN_OR_INCREASE"
)

// Recommendation is a pricing advisory for one product.
type Recommendation struct {
	ProductID string `json:"product_id"`
	Action    Action `json:"action"`
	Reason    string `json:"reason"`
	Impact    string `json:"impact"`
	Priority  string `json:"priority"`
}

// Summary aggregates one position analysis.
type Summary struct {
	LosingShare    int     `json:"losing_share"`
	GainingShare   int     `json:"gaining_share"`
	AvgPriceGapPct float64 `json:"avg_price_gap_pct"`
}

// Report is the output of AnalyzePosition.
type Report struct {
	Standings       []Standing       `json:"standings"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}

// PriceChangeImpact projects how a competitor's price move shifts own demand.
type PriceChangeImpact struct {
	ProductID                string  `json:"product_id"`
	CompetitorPriceChangePct float64 `json:"competitor_price_change_pct"`
	DemandChangePct          float64 `json:"demand_change_pct"`
	Interpretation           string  `json:"interpretation"`
}
