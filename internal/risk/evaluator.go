package risk

import "math"

// Evaluator classifies leveraged positions against a fixed risk threshold
// table. All methods are pure and safe for concurrent use; degenerate inputs
// degrade to a defined sentinel instead of returning an error.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an evaluator over the given threshold table.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Config returns the threshold table the evaluator was built with.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// MaxPositionSizeForLeverage returns the recommended maximum notional for the
// given leverage: the limit of the smallest tier whose ceiling is >= leverage.
// Leverage beyond the last tier clamps to that tier's limit.
func (e *Evaluator) MaxPositionSizeForLeverage(leverage int) float64 {
	tiers := e.cfg.PositionTiers
	if len(tiers) == 0 {
		return e.cfg.MaxPositionSizeUSDT
	}
	for _, tier := range tiers {
		if leverage <= tier.MaxLeverage {
			return tier.MaxUSDT
		}
	}
	return tiers[len(tiers)-1].MaxUSDT
}

// RiskLevelForLeverage buckets leverage into a qualitative tier. Boundaries
// are inclusive on the upper end of each bucket.
func (e *Evaluator) RiskLevelForLeverage(leverage int) Level {
	switch {
	case leverage <= 1:
		return LevelVeryLow
	case leverage <= 3:
		return LevelLow
	case leverage <= 5:
		return LevelModerate
	case leverage <= 10:
		return LevelHigh
	case leverage <= 20:
		return LevelVeryHigh
	default:
		return LevelExtreme
	}
}

// LiquidationDistance returns how far the entry price sits from forced
// liquidation, in percent of entry. A missing or zero liquidation price (or
// entry price) reads as 100: no liquidation risk known. An already-breached
// liquidation reads as 0, never negative.
func (e *Evaluator) LiquidationDistance(entryPrice, liquidationPrice float64, side Side) float64 {
	if liquidationPrice <= 0 || entryPrice <= 0 {
		return 100
	}

	var distance float64
	if side == SideLong {
		distance = (entryPrice - liquidationPrice) / entryPrice * 100
	} else {
		distance = (liquidationPrice - entryPrice) / entryPrice * 100
	}

	return math.Max(0, distance)
}

// PositionWarnings flags the independent ways a proposed position breaches
// the recommended limits. Any subset may be set at once.
type PositionWarnings struct {
	HighLeverage    bool `json:"high_leverage"`
	LargePosition   bool `json:"large_position"`
	HighMarginRatio bool `json:"high_margin_ratio"`
	NearLiquidation bool `json:"near_liquidation"`
}

// Any reports whether at least one warning fired.
func (w PositionWarnings) Any() bool {
	return w.HighLeverage || w.LargePosition || w.HighMarginRatio || w.NearLiquidation
}

// EvaluatePosition checks a proposed position against the recommended
// leverage, size, margin and liquidation-distance limits.
func (e *Evaluator) EvaluatePosition(leverage int, positionSizeUSDT, marginRatio, liquidationDistance float64) PositionWarnings {
	return PositionWarnings{
		HighLeverage:    leverage > e.cfg.MaxRecommendedLeverage,
		LargePosition:   positionSizeUSDT > e.MaxPositionSizeForLeverage(leverage),
		HighMarginRatio: marginRatio > e.cfg.MarginRatioWarning,
		NearLiquidation: liquidationDistance < e.cfg.LiquidationDistanceWarning,
	}
}

// StopTargets carries the suggested protective prices for a position.
type StopTargets struct {
	StopLoss      float64 `json:"stop_loss"`
	TakeProfit    float64 `json:"take_profit"`
	StopLossPct   float64 `json:"stop_loss_pct"`
	TakeProfitPct float64 `json:"take_profit_pct"`
}

// SuggestedStops derives stop-loss and take-profit prices for an entry.
// Higher leverage tightens the stop proportionally (the 5x baseline keeps the
// default stop), clamped to [0.5%, 5%]. The take-profit percent is the fixed
// configured default. Prices are rounded to 6 decimals.
func (e *Evaluator) SuggestedStops(entryPrice float64, side Side, leverage int) StopTargets {
	stopLossPct := e.cfg.DefaultStopLossPct / (float64(leverage) / float64(e.cfg.DefaultLeverage))
	stopLossPct = math.Max(0.5, math.Min(stopLossPct, 5.0))
	takeProfitPct := e.cfg.DefaultTakeProfitPct

	var stopLoss, takeProfit float64
	if side == SideLong {
		stopLoss = entryPrice * (1 - stopLossPct/100)
		takeProfit = entryPrice * (1 + takeProfitPct/100)
	} else {
		stopLoss = entryPrice * (1 + stopLossPct/100)
		takeProfit = entryPrice * (1 - takeProfitPct/100)
	}

	return StopTargets{
		StopLoss:      round6(stopLoss),
		TakeProfit:    round6(takeProfit),
		StopLossPct:   stopLossPct,
		TakeProfitPct: takeProfitPct,
	}
}

// EmergencyConditions flags the independent account-level emergencies. Each
// check reads exactly one input; any subset may fire.
type EmergencyConditions struct {
	MaxDailyLossReached bool `json:"max_daily_loss_reached"`
	MarginRatioCritical bool `json:"margin_ratio_critical"`
	LiquidationImminent bool `json:"liquidation_imminent"`
	AccountBalanceLow   bool `json:"account_balance_low"`
}

// Any reports whether at least one emergency condition fired.
func (c EmergencyConditions) Any() bool {
	return c.MaxDailyLossReached || c.MarginRatioCritical || c.LiquidationImminent || c.AccountBalanceLow
}

// CheckEmergency evaluates the four emergency conditions. dailyPnLPct is a
// signed percent where losses are negative, so the daily-loss check compares
// against the negated configured limit.
func (e *Evaluator) CheckEmergency(dailyPnLPct, marginRatio, liquidationDistance, accountBalance float64) EmergencyConditions {
	return EmergencyConditions{
		MaxDailyLossReached: dailyPnLPct <= -e.cfg.MaxDailyLossPct,
		MarginRatioCritical: marginRatio >= e.cfg.MarginRatioDanger,
		LiquidationImminent: liquidationDistance <= e.cfg.LiquidationDistanceCritical,
		AccountBalanceLow:   accountBalance <= e.cfg.MinAccountBalance,
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
