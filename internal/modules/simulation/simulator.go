// Package simulation projects what-if business scenarios (price changes,
// promotions, inventory-level changes) from elasticity assumptions. All three
// scenario calls are pure functions of their inputs plus the elasticity tables
// injected at construction; division-by-zero cases produce zeros, never errors.
package simulation

import (
	"math"
	"sort"

	"github.com/rs/zerolog"
)

const (
	// Margin assumed on every unit when projecting profit.
	marginRate = 0.3

	// Reference unit price used when the caller supplies none.
	referencePrice = 2.99

	// Promotion lift model: base lift plus a per-discount-point increment.
	promoBaseLiftPct     = 20.0
	promoDiscountLift    = 0.8
	promoHangoverFactor  = -0.3
	crossEffectDamping   = 0.5
	defaultElasticity    = 1.0
	stockoutReductionPer = 0.8
	stockoutReductionCap = 40.0
	holdingCostPer       = 0.5
	lostSalesPer         = 0.6
	lostSalesCap         = 30.0
)

// ProductPair keys the cross-elasticity table: a price change on Driver moves
// demand for Affected.
type ProductPair struct {
	Driver   string
	Affected string
}

// Simulator evaluates what-if scenarios against per-product elasticity
// assumptions. Unknown products use a documented default elasticity of 1.0.
type Simulator struct {
	elasticity      map[string]float64
	crossElasticity map[ProductPair]float64
	log             zerolog.Logger
}

// NewSimulator creates a simulator with explicit elasticity tables. Nil maps
// are treated as empty.
func NewSimulator(elasticity map[string]float64, crossElasticity map[ProductPair]float64, log zerolog.Logger) *Simulator {
	if elasticity == nil {
		elasticity = map[string]float64{}
	}
	if crossElasticity == nil {
		crossElasticity = map[ProductPair]float64{}
	}
	return &Simulator{
		elasticity:      elasticity,
		crossElasticity: crossElasticity,
		log:             log.With().Str("component", "simulator").Logger(),
	}
}

// Elasticity returns the demand elasticity assumed for a product.
func (s *Simulator) Elasticity(productID string) float64 {
	if e, ok := s.elasticity[productID]; ok {
		return e
	}
	return defaultElasticity
}

// SimulatePriceChange projects demand, revenue and profit deltas for moving a
// product from currentPrice to newPrice, plus first-order cross effects on
// paired products.
func (s *Simulator) SimulatePriceChange(productID string, currentPrice, newPrice, currentDemand, forecastDemand float64) PriceChangeResult {
	result := PriceChangeResult{
		Scenario:     "price_change",
		ProductID:    productID,
		CrossEffects: []CrossEffect{},
	}
	if currentPrice <= 0 {
		result.Recommendation = RecommendHold
		return result
	}

	priceChangePct := (newPrice - currentPrice) / currentPrice * 100
	elasticity := s.Elasticity(productID)
	demandChangePct := -elasticity * priceChangePct

	newDemand := currentDemand * (1 + demandChangePct/100)
	newForecast := forecastDemand * (1 + demandChangePct/100)

	currentRevenue := currentDemand * currentPrice
	newRevenue := newDemand * newPrice
	revenueChangePct := 0.0
	if currentRevenue > 0 {
		revenueChangePct = (newRevenue - currentRevenue) / currentRevenue * 100
	}

	currentProfit := currentRevenue * marginRate
	newProfit := newRevenue * marginRate
	profitChangePct := 0.0
	if currentProfit > 0 {
		profitChangePct = (newProfit - currentProfit) / currentProfit * 100
	}

	recommendation := RecommendHold
	switch {
	case profitChangePct > 0:
		recommendation = RecommendIncrease
	case profitChangePct < -5:
		recommendation = RecommendDecrease
	}

	result.PriceChangePct = priceChangePct
	result.DemandChangePct = demandChangePct
	result.NewDemand = newDemand
	result.NewForecast = newForecast
	result.RevenueChangePct = revenueChangePct
	result.ProfitChangePct = profitChangePct
	result.CrossEffects = s.crossEffects(productID, priceChangePct)
	result.Recommendation = recommendation
	return result
}

// crossEffects applies the cross-elasticity table for pairs driven by the
// simulated product, damped to first order. Output is sorted by affected
// product so repeated calls serialize identically.
func (s *Simulator) crossEffects(productID string, priceChangePct float64) []CrossEffect {
	effects := []CrossEffect{}
	for pair, elasticity := range s.crossElasticity {
		if pair.Driver != productID {
			continue
		}
		effects = append(effects, CrossEffect{
			ProductID:       pair.Affected,
			DemandChangePct: elasticity * priceChangePct * crossEffectDamping,
		})
	}
	sort.Slice(effects, func(i, j int) bool { return effects[i].ProductID < effects[j].ProductID })
	return effects
}

// SimulatePromotion projects the outcome of a discount promotion. avgPrice of
// zero or below falls back to the reference price; callers should prefer
// passing the actual current price.
func (s *Simulator) SimulatePromotion(productID string, discountPct float64, durationDays int, currentDemand, forecastDemand, avgPrice float64) PromotionResult {
	if avgPrice <= 0 {
		avgPrice = referencePrice
	}

	liftPct := promoBaseLiftPct + discountPct*promoDiscountLift
	promoDemand := currentDemand * (1 + liftPct/100)
	additionalUnits := (promoDemand - currentDemand) * float64(durationDays)

	cost := additionalUnits * avgPrice * discountPct / 100
	incrementalProfit := additionalUnits * avgPrice * marginRate
	netProfit := incrementalProfit - cost

	roi := 0.0
	if cost > 0 {
		roi = netProfit / cost * 100
	}

	recommendation := RecommendAvoid
	switch {
	case roi > 30:
		recommendation = RecommendRun
	case roi > 10:
		recommendation = RecommendModify
	}

	return PromotionResult{
		Scenario:        "promotion",
		ProductID:       productID,
		DiscountPct:     discountPct,
		DurationDays:    durationDays,
		LiftPct:         liftPct,
		PostPromoDipPct: promoHangoverFactor * liftPct,
		AdditionalUnits: additionalUnits,
		PromotionCost:   cost,
		NetProfit:       netProfit,
		ROIPct:          roi,
		Recommendation:  recommendation,
	}
}

// SimulateInventoryChange projects the tradeoff between stockout risk and
// holding cost for moving the coverage target from currentStockDays to
// newStockDays.
func (s *Simulator) SimulateInventoryChange(productID string, currentStockDays, newStockDays, currentDemand float64) InventoryChangeResult {
	result := InventoryChangeResult{
		Scenario:       "inventory_change",
		ProductID:      productID,
		Recommendation: RecommendHold,
	}
	if currentStockDays <= 0 {
		return result
	}

	stockChangePct := (newStockDays - currentStockDays) / currentStockDays * 100

	stockoutRiskReduction := 0.0
	lostSalesRisk := 0.0
	if stockChangePct > 0 {
		stockoutRiskReduction = math.Min(stockoutReductionCap, math.Abs(stockChangePct)*stockoutReductionPer)
	} else if stockChangePct < 0 {
		lostSalesRisk = math.Min(lostSalesCap, math.Abs(stockChangePct)*lostSalesPer)
	}
	holdingCostPct := math.Abs(stockChangePct) * holdingCostPer

	dailySalesValue := currentDemand * referencePrice
	holdingCostChange := dailySalesValue * holdingCostPct / 100
	lostSalesValue := dailySalesValue * lostSalesRisk / 100

	recommendation := RecommendHold
	switch {
	case stockChangePct > 0 && stockoutRiskReduction > 20:
		recommendation = RecommendIncrease
	case stockChangePct < 0 && holdingCostPct > 10:
		recommendation = RecommendDecrease
	}

	result.StockChangePct = stockChangePct
	result.StockoutRiskChangePct = -stockoutRiskReduction
	result.HoldingCostChangePct = holdingCostPct
	result.LostSalesRiskPct = lostSalesRisk
	result.NetDailyImpact = -holdingCostChange - lostSalesValue
	result.Recommendation = recommendation
	return result
}
