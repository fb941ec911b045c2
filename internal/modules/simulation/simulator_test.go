package simulation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	return NewSimulator(
		map[string]float64{"Milk": 0.8, "Bananas": 1.8},
		map[ProductPair]float64{
			{Driver: "Milk", Affected: "Cereal"}: 0.7,
		},
		zerolog.Nop(),
	)
}

func TestElasticity_DefaultForUnknownProduct(t *testing.T) {
	s := newTestSimulator()

	assert.Equal(t, 0.8, s.Elasticity("Milk"))
	assert.Equal(t, 1.0, s.Elasticity("Unknown"))
}

func TestSimulatePriceChange_Increase(t *testing.T) {
	s := newTestSimulator()

	// +10% price with elasticity 0.8: demand -8%, revenue 0.92*1.10-1 = +1.2%.
	r := s.SimulatePriceChange("Milk", 3.00, 3.30, 100, 100)

	assert.InDelta(t, 10.0, r.PriceChangePct, 1e-9)
	assert.InDelta(t, -8.0, r.DemandChangePct, 1e-9)
	assert.InDelta(t, 92.0, r.NewDemand, 1e-9)
	assert.InDelta(t, 1.2, r.RevenueChangePct, 1e-9)
	assert.InDelta(t, 1.2, r.ProfitChangePct, 1e-9, "fixed margin keeps profit change equal to revenue change")
	assert.Equal(t, RecommendIncrease, r.Recommendation)
}

func TestSimulatePriceChange_ElasticProductLosesRevenue(t *testing.T) {
	s := newTestSimulator()

	// +10% price with elasticity 1.8: demand -18%, revenue 0.82*1.10-1 = -9.8%.
	r := s.SimulatePriceChange("Bananas", 1.00, 1.10, 100, 100)

	assert.InDelta(t, -18.0, r.DemandChangePct, 1e-9)
	assert.InDelta(t, -9.8, r.RevenueChangePct, 1e-9)
	assert.Equal(t, RecommendDecrease, r.Recommendation)
}

func TestSimulatePriceChange_ZeroPriceHolds(t *testing.T) {
	s := newTestSimulator()

	r := s.SimulatePriceChange("Milk", 0, 3.30, 100, 100)

	assert.Equal(t, RecommendHold, r.Recommendation)
	assert.Equal(t, 0.0, r.PriceChangePct)
	assert.Equal(t, 0.0, r.RevenueChangePct)
}

func TestSimulatePriceChange_ZeroDemandGuards(t *testing.T) {
	s := newTestSimulator()

	r := s.SimulatePriceChange("Milk", 3.00, 3.30, 0, 0)

	assert.Equal(t, 0.0, r.RevenueChangePct)
	assert.Equal(t, 0.0, r.ProfitChangePct)
	assert.Equal(t, RecommendHold, r.Recommendation)
}

func TestSimulatePriceChange_CrossEffects(t *testing.T) {
	s := newTestSimulator()

	r := s.SimulatePriceChange("Milk", 3.00, 3.30, 100, 100)

	require.Len(t, r.CrossEffects, 1)
	assert.Equal(t, "Cereal", r.CrossEffects[0].ProductID)
	// 0.7 elasticity * +10% * 0.5 damping = +3.5%.
	assert.InDelta(t, 3.5, r.CrossEffects[0].DemandChangePct, 1e-9)

	// No cross effects registered for Bananas as driver.
	r2 := s.SimulatePriceChange("Bananas", 1.00, 1.10, 100, 100)
	assert.Empty(t, r2.CrossEffects)
}

func TestSimulatePriceChange_SweptPriceRange(t *testing.T) {
	s := newTestSimulator()

	// Milk elasticity 0.8 from a $3.00 base. The linear demand response makes
	// revenue a downward parabola in price with its peak at 3.00*1.8/1.6 =
	// 3.375, interior to the swept range.
	var demands, revenues []float64
	for i := 0; i <= 10; i++ {
		p := 2.00 + 0.30*float64(i)
		r := s.SimulatePriceChange("Milk", 3.00, p, 100, 100)
		demands = append(demands, r.DemandChangePct)
		revenues = append(revenues, r.RevenueChangePct)
	}

	for i := 1; i < len(demands); i++ {
		assert.Less(t, demands[i], demands[i-1], "raising price always cuts demand further")
	}

	peak := 0
	for i := range revenues {
		if revenues[i] > revenues[peak] {
			peak = i
		}
	}
	require.Greater(t, peak, 0, "revenue peak is interior, not at the low end")
	require.Less(t, peak, len(revenues)-1, "revenue peak is interior, not at the high end")
	for i := 1; i <= peak; i++ {
		assert.Greater(t, revenues[i], revenues[i-1], "revenue rises up to the peak")
	}
	for i := peak + 1; i < len(revenues); i++ {
		assert.Less(t, revenues[i], revenues[i-1], "revenue falls past the peak")
	}
}

func TestCrossEffects_StableOrder(t *testing.T) {
	s := NewSimulator(
		map[string]float64{"Milk": 0.8},
		map[ProductPair]float64{
			{Driver: "Milk", Affected: "Yogurt"}: 0.5,
			{Driver: "Milk", Affected: "Cereal"}: 0.7,
			{Driver: "Milk", Affected: "Bread"}:  0.3,
		},
		zerolog.Nop(),
	)

	r := s.SimulatePriceChange("Milk", 3.00, 3.30, 100, 100)

	require.Len(t, r.CrossEffects, 3)
	assert.Equal(t, "Bread", r.CrossEffects[0].ProductID)
	assert.Equal(t, "Cereal", r.CrossEffects[1].ProductID)
	assert.Equal(t, "Yogurt", r.CrossEffects[2].ProductID)

	again := s.SimulatePriceChange("Milk", 3.00, 3.30, 100, 100)
	assert.Equal(t, r.CrossEffects, again.CrossEffects)
}

func TestSimulatePromotion(t *testing.T) {
	s := newTestSimulator()

	// 20% discount: lift = 20 + 0.8*20 = 36%. Extra units = 100*0.36*7 = 252.
	// Cost = 252 * 3.00 * 0.20 = 151.2; incremental profit = 252*3.00*0.3 = 226.8.
	// Net = 75.6; ROI = 50% -> RUN.
	r := s.SimulatePromotion("Milk", 20, 7, 100, 100, 3.00)

	assert.InDelta(t, 36.0, r.LiftPct, 1e-9)
	assert.InDelta(t, 252.0, r.AdditionalUnits, 1e-9)
	assert.InDelta(t, 151.2, r.PromotionCost, 1e-6)
	assert.InDelta(t, 75.6, r.NetProfit, 1e-6)
	assert.InDelta(t, 50.0, r.ROIPct, 1e-6)
	assert.Equal(t, RecommendRun, r.Recommendation)
	assert.InDelta(t, -10.8, r.PostPromoDipPct, 1e-9, "hangover at -0.3x lift")
}

func TestSimulatePromotion_DeepDiscountAvoided(t *testing.T) {
	s := newTestSimulator()

	// 60% discount: lift 68%, but cost dominates margin. ROI = 0.3/0.6 - 1 = -50%.
	r := s.SimulatePromotion("Milk", 60, 7, 100, 100, 3.00)

	assert.Less(t, r.ROIPct, 0.0)
	assert.Equal(t, RecommendAvoid, r.Recommendation)
}

func TestSimulatePromotion_ZeroPriceFallsBackToReference(t *testing.T) {
	s := newTestSimulator()

	r := s.SimulatePromotion("Milk", 20, 7, 100, 100, 0)

	assert.Greater(t, r.PromotionCost, 0.0, "reference price substitutes for a missing average price")
}

func TestSimulateInventoryChange_Increase(t *testing.T) {
	s := newTestSimulator()

	// +50% coverage: stockout reduction min(40, 50*0.8) = 40, holding +25%.
	r := s.SimulateInventoryChange("Milk", 10, 15, 100)

	assert.InDelta(t, 50.0, r.StockChangePct, 1e-9)
	assert.InDelta(t, -40.0, r.StockoutRiskChangePct, 1e-9)
	assert.InDelta(t, 25.0, r.HoldingCostChangePct, 1e-9)
	assert.Equal(t, 0.0, r.LostSalesRiskPct)
	assert.Equal(t, RecommendIncrease, r.Recommendation)
	assert.Less(t, r.NetDailyImpact, 0.0, "carrying more stock costs money every day")
}

func TestSimulateInventoryChange_Decrease(t *testing.T) {
	s := newTestSimulator()

	// -30% coverage: lost sales min(30, 30*0.6) = 18%, holding 15%.
	r := s.SimulateInventoryChange("Milk", 10, 7, 100)

	assert.InDelta(t, -30.0, r.StockChangePct, 1e-9)
	assert.Equal(t, 0.0, r.StockoutRiskChangePct)
	assert.InDelta(t, 18.0, r.LostSalesRiskPct, 1e-9)
	assert.InDelta(t, 15.0, r.HoldingCostChangePct, 1e-9)
	assert.Equal(t, RecommendDecrease, r.Recommendation)
}

func TestSimulateInventoryChange_ZeroCurrentHolds(t *testing.T) {
	s := newTestSimulator()

	r := s.SimulateInventoryChange("Milk", 0, 10, 100)

	assert.Equal(t, RecommendHold, r.Recommendation)
	assert.Equal(t, 0.0, r.StockChangePct)
}
