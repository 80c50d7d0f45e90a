package risk

// Side is the direction of a leveraged position.
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Level is a qualitative risk tier derived from leverage.
type Level string

const (
	LevelVeryLow  Level = "VERY_LOW"
	LevelLow      Level = "LOW"
	LevelModerate Level = "MODERATE"
	LevelHigh     Level = "HIGH"
	LevelVeryHigh Level = "VERY_HIGH"
	LevelExtreme  Level = "EXTREME"
)

// LeverageTier maps a leverage ceiling to the recommended maximum notional.
// Tiers are kept sorted ascending by MaxLeverage; position limits shrink as
// leverage grows, so lookups stay monotonically non-increasing.
type LeverageTier struct {
	MaxLeverage int
	MaxUSDT     float64
}

// Config is the process-wide risk threshold table. It is built once at
// startup and treated as read-only afterwards; evaluators receive it by
// value.
type Config struct {
	MaxRecommendedLeverage int
	MaxAllowedLeverage     int
	DefaultLeverage        int

	MaxPositionSizeUSDT float64
	MaxTotalPositions   int

	DefaultStopLossPct   float64
	DefaultTakeProfitPct float64
	MaxDailyLossPct      float64

	MarginRatioWarning float64
	MarginRatioDanger  float64

	HighFundingRateThreshold    float64
	LiquidationDistanceWarning  float64
	LiquidationDistanceCritical float64

	MinAccountBalance float64

	PositionTiers []LeverageTier
}

// DefaultConfig returns the standard USDT-M futures risk table.
func DefaultConfig() Config {
	return Config{
		MaxRecommendedLeverage: 10,
		MaxAllowedLeverage:     125,
		DefaultLeverage:        5,

		MaxPositionSizeUSDT: 5000,
		MaxTotalPositions:   5,

		DefaultStopLossPct:   2.0,
		DefaultTakeProfitPct: 5.0,
		MaxDailyLossPct:      10.0,

		MarginRatioWarning: 80.0,
		MarginRatioDanger:  90.0,

		HighFundingRateThreshold:    0.1,
		LiquidationDistanceWarning:  10.0,
		LiquidationDistanceCritical: 5.0,

		MinAccountBalance: 100.0,

		PositionTiers: []LeverageTier{
			{MaxLeverage: 1, MaxUSDT: 10000},
			{MaxLeverage: 2, MaxUSDT: 8000},
			{MaxLeverage: 3, MaxUSDT: 6000},
			{MaxLeverage: 5, MaxUSDT: 4000},
			{MaxLeverage: 10, MaxUSDT: 2000},
			{MaxLeverage: 20, MaxUSDT: 1000},
			{MaxLeverage: 50, MaxUSDT: 500},
			{MaxLeverage: 125, MaxUSDT: 200},
		},
	}
}
