// Package synergy discovers pairwise product relationships from aligned daily
// sales series: complementary and substitute pairs, merchandising
// recommendations for the strongest pairs, and ripple-effect projections for
// products with significant recent trends.
package synergy

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/aristath/retailmind/internal/domain"
)

// Config holds the detection thresholds. Zero values fall back to defaults.
type Config struct {
	CorrelationThreshold float64 // minimum |correlation| for a candidate pair
	SynergyThreshold     float64 // minimum blended score to retain a pair
}

const (
	defaultCorrelationThreshold = 0.6
	defaultSynergyThreshold     = 0.7

	// Blend weights for the synergy score.
	coOccurrenceWeight = 0.6
	correlationWeight  = 0.4

	// Ripple projection.
	rippleTrendWindow      = 30
	rippleTrendGatePct     = 10
	complementRippleFactor = 0.5
	substituteRippleFactor = -0.3

	maxRecommendations = 3
)

// Detector computes synergy analyses. It is stateless between calls.
type Detector struct {
	cfg Config
	log zerolog.Logger
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(cfg Config, log zerolog.Logger) *Detector {
	if cfg.CorrelationThreshold <= 0 {
		cfg.CorrelationThreshold = defaultCorrelationThreshold
	}
	if cfg.SynergyThreshold <= 0 {
		cfg.SynergyThreshold = defaultSynergyThreshold
	}
	return &Detector{
		cfg: cfg,
		log: log.With().Str("component", "synergy_detector").Logger(),
	}
}

// Analyze runs the full pairwise analysis over a pivoted dataset.
func (d *Detector) Analyze(dataset domain.Dataset) Analysis {
	products := dataset.Products()

	pairs := make([]Pair, 0)
	for i := 0; i < len(products); i++ {
		for j := i + 1; j < len(products); j++ {
			a, b := products[i], products[j]
			corr := correlation(dataset.Sales[a], dataset.Sales[b])
			if math.Abs(corr) <= d.cfg.CorrelationThreshold {
				continue
			}

			score := coOccurrenceWeight*coOccurrenceRate(dataset.Sales[a], dataset.Sales[b]) +
				correlationWeight*math.Abs(corr)
			if score <= d.cfg.SynergyThreshold {
				continue
			}

			relationship := RelationshipSubstitute
			if corr > 0 {
				relationship = RelationshipComplementary
			}

			pairs = append(pairs, Pair{
				ProductA:        a,
				ProductB:        b,
				Correlation:     corr,
				Score:           score,
				Relationship:    relationship,
				ExpectedLiftPct: score * 100,
			})

			d.log.Debug().
				Str("product_a", a).
				Str("product_b", b).
				Float64("correlation", corr).
				Float64("score", score).
				Msg("Synergy pair retained")
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Score > pairs[j].Score })

	analysis := Analysis{
		AnalysisID:      uuid.NewString(),
		Synergies:       pairs,
		Recommendations: buildRecommendations(pairs),
		RippleEffects:   d.projectRipples(dataset, pairs),
		Summary:         buildSummary(pairs),
	}

	d.log.Info().
		Int("products", len(products)).
		Int("synergies", len(pairs)).
		Int("ripples", len(analysis.RippleEffects)).
		Msg("Synergy analysis complete")

	return analysis
}

// correlation is the Pearson correlation of two equal-length series, with
// degenerate (constant) series resolving to 0.
func correlation(a, b []float64) float64 {
	if len(a) < 2 || len(a) != len(b) {
		return 0
	}
	corr := stat.Correlation(a, b, nil)
	if math.IsNaN(corr) {
		return 0
	}
	return corr
}

// coOccurrenceRate is the fraction of days on which both products recorded
// nonzero sales.
func coOccurrenceRate(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	both := 0
	for i := range a {
		if a[i] > 0 && b[i] > 0 {
			both++
		}
	}
	return float64(both) / float64(len(a))
}

// buildRecommendations emits advisories for the top retained pairs.
func buildRecommendations(pairs []Pair) []Recommendation {
	if len(pairs) == 0 {
		return []Recommendation{{
			Type:    RecommendationNone,
			Message: "No strong product synergies detected",
			Action:  "Continue current merchandising",
		}}
	}

	top := pairs
	if len(top) > maxRecommendations {
		top = top[:maxRecommendations]
	}

	recs := make([]Recommendation, 0, len(top))
	for _, p := range top {
		if p.Relationship == RelationshipComplementary {
			recs = append(recs, Recommendation{
				Type:     RecommendationBundle,
				ProductA: p.ProductA,
				ProductB: p.ProductB,
				Message:  fmt.Sprintf("Create bundle: '%s & %s Combo' (expected lift +%.1f%%)", p.ProductA, p.ProductB, p.ExpectedLiftPct),
				Action:   "Implement bundle pricing",
				Priority: "HIGH",
			})
		} else {
			recs = append(recs, Recommendation{
				Type:     RecommendationSeparate,
				ProductA: p.ProductA,
				ProductB: p.ProductB,
				Message:  fmt.Sprintf("Separate display: %s and %s are substitutes", p.ProductA, p.ProductB),
				Action:   "Separate in store layout",
				Priority: "MEDIUM",
			})
		}
	}
	return recs
}

// projectRipples projects partner effects for products whose recent trend
// exceeds the gate and that participate in at least one retained pair.
func (d *Detector) projectRipples(dataset domain.Dataset, pairs []Pair) []RippleEffect {
	ripples := make([]RippleEffect, 0)
	if len(pairs) == 0 {
		return ripples
	}

	for _, product := range dataset.Products() {
		trend, ok := recentTrend(dataset.Sales[product])
		if !ok || math.Abs(trend) <= rippleTrendGatePct {
			continue
		}

		related := make([]RelatedEffect, 0)
		for _, p := range pairs {
			var partner string
			switch product {
			case p.ProductA:
				partner = p.ProductB
			case p.ProductB:
				partner = p.ProductA
			default:
				continue
			}

			factor := complementRippleFactor
			if p.Relationship == RelationshipSubstitute {
				// Substitutes move opposite the trigger.
				factor = substituteRippleFactor
			}
			related = append(related, RelatedEffect{
				ProductID:          partner,
				PredictedChangePct: trend * p.Correlation * factor,
				Relationship:       p.Relationship,
				Confidence:         p.Score,
			})
		}

		if len(related) == 0 {
			continue
		}

		action := "Watch substitute demand"
		if trend > 0 {
			action = "Stock up on complements"
		}
		ripples = append(ripples, RippleEffect{
			TriggerProduct: product,
			TrendPct:       trend,
			Related:        related,
			Action:         action,
		})
	}
	return ripples
}

// recentTrend compares the mean of the last 7 points against the prior 7
// within a trailing 30-point window. It requires at least 14 points.
func recentTrend(sales []float64) (float64, bool) {
	window := sales
	if len(window) > rippleTrendWindow {
		window = window[len(window)-rippleTrendWindow:]
	}
	if len(window) < 14 {
		return 0, false
	}

	recent := window[len(window)-7:]
	prior := window[len(window)-14 : len(window)-7]
	priorMean := stat.Mean(prior, nil)
	if priorMean == 0 {
		return 0, false
	}
	return (stat.Mean(recent, nil) - priorMean) / priorMean * 100, true
}

func buildSummary(pairs []Pair) Summary {
	s := Summary{TotalSynergies: len(pairs)}
	if len(pairs) == 0 {
		return s
	}
	s.TopPair = pairs[0].ProductA + " + " + pairs[0].ProductB
	total := 0.0
	for _, p := range pairs {
		total += p.ExpectedLiftPct
	}
	s.AvgLiftPotential = total / float64(len(pairs))
	return s
}
