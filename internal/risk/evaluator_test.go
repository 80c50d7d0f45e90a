package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMaxPositionSizeForLeverage tests the tier table lookups including gaps
func TestMaxPositionSizeForLeverage(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	tests := []struct {
		name     string
		leverage int
		want     float64
	}{
		{"minimum leverage", 1, 10000},
		{"exact tier boundary", 5, 4000},
		{"gap maps to next tier up", 7, 2000},
		{"high tier", 50, 500},
		{"maximum tier", 125, 200},
		{"beyond last tier clamps", 200, 200},
		{"zero leverage uses first tier", 0, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.MaxPositionSizeForLeverage(tt.leverage))
		})
	}
}

// TestMaxPositionSizeForLeverage_Monotonic tests that limits never grow with leverage
func TestMaxPositionSizeForLeverage_Monotonic(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	prev := e.MaxPositionSizeForLeverage(1)
	for lev := 2; lev <= 150; lev++ {
		cur := e.MaxPositionSizeForLeverage(lev)
		assert.LessOrEqual(t, cur, prev, "limit grew at leverage %d", lev)
		prev = cur
	}
}

// TestRiskLevelForLeverage tests the qualitative buckets and their boundaries
func TestRiskLevelForLeverage(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	tests := []struct {
		leverage int
		want     Level
	}{
		{1, LevelVeryLow},
		{2, LevelLow},
		{3, LevelLow},
		{4, LevelModerate},
		{5, LevelModerate},
		{6, LevelHigh},
		{10, LevelHigh},
		{11, LevelVeryHigh},
		{20, LevelVeryHigh},
		{21, LevelExtreme},
		{125, LevelExtreme},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.RiskLevelForLeverage(tt.leverage), "leverage %d", tt.leverage)
	}
}

// TestLiquidationDistance tests both sides plus the degenerate inputs
func TestLiquidationDistance(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	// Long: liquidation below entry
	assert.InDelta(t, 10.0, e.LiquidationDistance(100, 90, SideLong), 1e-9)
	// Short: liquidation above entry
	assert.InDelta(t, 10.0, e.LiquidationDistance(100, 110, SideShort), 1e-9)
	// Breached liquidation floors at 0
	assert.Equal(t, 0.0, e.LiquidationDistance(100, 110, SideLong))
	// Unknown liquidation price reads as fully safe
	assert.Equal(t, 100.0, e.LiquidationDistance(100, 0, SideLong))
	assert.Equal(t, 100.0, e.LiquidationDistance(100, -5, SideShort))
	// Unknown entry price reads as fully safe too
	assert.Equal(t, 100.0, e.LiquidationDistance(0, 90, SideLong))
}

// TestLiquidationDistance_Bounded tests that the result stays within [0, 100] for longs
func TestLiquidationDistance_Bounded(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	for liq := 0.0; liq <= 200; liq += 12.5 {
		d := e.LiquidationDistance(100, liq, SideLong)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 100.0)
	}
}

// TestEvaluatePosition tests that the four warnings fire independently
func TestEvaluatePosition(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	// Everything within limits
	w := e.EvaluatePosition(5, 1000, 50, 50)
	assert.False(t, w.Any())

	// Leverage over the recommended maximum
	w = e.EvaluatePosition(20, 500, 50, 50)
	assert.True(t, w.HighLeverage)
	assert.False(t, w.LargePosition)

	// Size over the tier limit for 10x (2000)
	w = e.EvaluatePosition(10, 2500, 50, 50)
	assert.False(t, w.HighLeverage)
	assert.True(t, w.LargePosition)

	// Margin ratio past the warning threshold
	w = e.EvaluatePosition(5, 1000, 85, 50)
	assert.True(t, w.HighMarginRatio)

	// Price close to liquidation
	w = e.EvaluatePosition(5, 1000, 50, 8)
	assert.True(t, w.NearLiquidation)

	// All at once
	w = e.EvaluatePosition(50, 9999, 95, 2)
	assert.True(t, w.HighLeverage)
	assert.True(t, w.LargePosition)
	assert.True(t, w.HighMarginRatio)
	assert.True(t, w.NearLiquidation)
}

// TestSuggestedStops_Long tests stop and target prices for a 5x long
func TestSuggestedStops_Long(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	stops := e.SuggestedStops(100, SideLong, 5)

	assert.InDelta(t, 2.0, stops.StopLossPct, 1e-9)
	assert.InDelta(t, 5.0, stops.TakeProfitPct, 1e-9)
	assert.InDelta(t, 98.0, stops.StopLoss, 1e-9)
	assert.InDelta(t, 105.0, stops.TakeProfit, 1e-9)
}

// TestSuggestedStops_Short tests that the prices mirror for shorts
func TestSuggestedStops_Short(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	stops := e.SuggestedStops(100, SideShort, 5)

	assert.InDelta(t, 102.0, stops.StopLoss, 1e-9)
	assert.InDelta(t, 95.0, stops.TakeProfit, 1e-9)
}

// TestSuggestedStops_LeverageScaling tests the stop tightening and its clamps
func TestSuggestedStops_LeverageScaling(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	// 10x halves the default 2% stop
	assert.InDelta(t, 1.0, e.SuggestedStops(100, SideLong, 10).StopLossPct, 1e-9)
	// Extreme leverage clamps at 0.5%
	assert.InDelta(t, 0.5, e.SuggestedStops(100, SideLong, 125).StopLossPct, 1e-9)
	// 1x widens the stop but clamps at 5%
	assert.InDelta(t, 5.0, e.SuggestedStops(100, SideLong, 1).StopLossPct, 1e-9)
}

// TestSuggestedStops_Rounding tests the 6-decimal price rounding
func TestSuggestedStops_Rounding(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	stops := e.SuggestedStops(0.123456789, SideLong, 5)

	assert.Equal(t, 0.120988, stops.StopLoss)
	assert.Equal(t, 0.12963, stops.TakeProfit)
}

// TestCheckEmergency tests that each condition reads exactly one input
func TestCheckEmergency(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	// Nothing triggered
	c := e.CheckEmergency(-5, 50, 50, 500)
	assert.False(t, c.Any())

	// Daily loss at the limit
	c = e.CheckEmergency(-12, 50, 50, 500)
	assert.True(t, c.MaxDailyLossReached)
	assert.False(t, c.MarginRatioCritical)
	assert.False(t, c.LiquidationImminent)
	assert.False(t, c.AccountBalanceLow)

	// Margin ratio at the danger threshold (inclusive)
	c = e.CheckEmergency(-5, 90, 50, 500)
	assert.True(t, c.MarginRatioCritical)

	// Liquidation distance at the critical threshold (inclusive)
	c = e.CheckEmergency(-5, 50, 5, 500)
	assert.True(t, c.LiquidationImminent)

	// Balance at the minimum (inclusive)
	c = e.CheckEmergency(-5, 50, 50, 100)
	assert.True(t, c.AccountBalanceLow)

	// All four at once
	c = e.CheckEmergency(-15, 95, 1, 50)
	assert.True(t, c.MaxDailyLossReached)
	assert.True(t, c.MarginRatioCritical)
	assert.True(t, c.LiquidationImminent)
	assert.True(t, c.AccountBalanceLow)
}

// TestDefaultConfig_TiersSorted tests the tier table stays sorted ascending
func TestDefaultConfig_TiersSorted(t *testing.T) {
	cfg := DefaultConfig()

	for i := 1; i < len(cfg.PositionTiers); i++ {
		assert.Greater(t, cfg.PositionTiers[i].MaxLeverage, cfg.PositionTiers[i-1].MaxLeverage)
		assert.Less(t, cfg.PositionTiers[i].MaxUSDT, cfg.PositionTiers[i-1].MaxUSDT)
	}
}

func BenchmarkEvaluatePosition(b *testing.B) {
	e := NewEvaluator(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvaluatePosition(10, 1500, 75, 12)
	}
}
