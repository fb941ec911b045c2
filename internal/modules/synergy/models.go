package synergy

// Relationship describes how two correlated products move together.
type Relationship string

const (
	RelationshipComplementary Relationship = "complementary"
	RelationshipSubstitute    Relationship = "substitute"
)

// Pair is a detected product relationship. Correlation is the Pearson
// correlation of the two daily sales series; Score blends co-occurrence with
// correlation strength; ExpectedLiftPct is a bundling-uplift estimate, not a
// causal one.
type Pair struct {
	ProductA        string       `json:"product_a"`
	ProductB        string       `json:"product_b"`
	Correlation     float64      `json:"correlation"`
	Score           float64      `json:"synergy_score"`
	Relationship    Relationship `json:"relationship"`
	ExpectedLiftPct float64      `json:"expected_lift_pct"`
}

// RecommendationType tags the merchandising advisory derived from a pair.
type RecommendationType string

const (
	RecommendationBundle   RecommendationType = "BUNDLE_RECOMMENDATION"
	RecommendationSeparate RecommendationType = "SEPARATE_MERCHANDISING"
	RecommendationNone     RecommendationType = "NO_SYNERGY"
)

// Recommendation is a fixed-template merchandising advisory for one pair.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	ProductA string             `json:"product_a,omitempty"`
	ProductB string             `json:"product_b,omitempty"`
	Message  string             `json:"message"`
	Action   string             `json:"action"`
	Priority string             `json:"priority,omitempty"`
}

// RippleEffect projects the secondary demand change on a partner product when
// a trigger product's recent trend is significant.
type RippleEffect struct {
	TriggerProduct string          `json:"trigger_product"`
	TrendPct       float64         `json:"trend_pct"`
	Related        []RelatedEffect `json:"related_products"`
	Action         string          `json:"action"`
}

// RelatedEffect is the projected change on a single partner.
type RelatedEffect struct {
	ProductID          string       `json:"product_id"`
	PredictedChangePct float64      `json:"predicted_change_pct"`
	Relationship       Relationship `json:"relationship"`
	Confidence         float64      `json:"confidence"`
}

// Summary aggregates an analysis run.
type Summary struct {
	TotalSynergies   int     `json:"total_synergies"`
	TopPair          string  `json:"top_pair,omitempty"`
	AvgLiftPotential float64 `json:"avg_lift_potential"`
}

// Analysis is the full output of one detector run over a dataset. It is
// generated per call and never persisted.
type Analysis struct {
	AnalysisID      string           `json:"analysis_id"`
	Synergies       []Pair           `json:"synergies"`
	Recommendations []Recommendation `json:"recommendations"`
	RippleEffects   []RippleEffect   `json:"ripple_effects"`
	Summary         Summary          `json:"summary"`
}
