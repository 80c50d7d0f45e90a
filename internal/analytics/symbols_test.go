package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// TestBySymbol_SortedByPnL tests grouping and descending PnL order
func TestBySymbol_SortedByPnL(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	trades := []types.Trade{
		{Timestamp: base, Symbol: "BTCUSDT", TradeAmount: 500, PnL: 50},
		{Timestamp: base.Add(time.Hour), Symbol: "ETHUSDT", TradeAmount: 200, PnL: -20},
		{Timestamp: base.Add(2 * time.Hour), Symbol: "BTCUSDT", TradeAmount: 300, PnL: 30},
		{Timestamp: base.Add(3 * time.Hour), Symbol: "ADAUSDT", PnL: 100, TradeAmount: 100},
	}

	stats := BySymbol(trades)

	assert.Len(t, stats, 3)
	assert.Equal(t, "ADAUSDT", stats[0].Symbol)
	assert.Equal(t, "BTCUSDT", stats[1].Symbol)
	assert.Equal(t, "ETHUSDT", stats[2].Symbol)

	assert.Equal(t, 2, stats[1].TradeCount)
	assert.InDelta(t, 80.0, stats[1].TotalPnL, 1e-9)
	assert.InDelta(t, 40.0, stats[1].AvgPnL, 1e-9)
	assert.InDelta(t, 800.0, stats[1].TotalVolume, 1e-9)
}

// TestBySymbol_TieBreaksAlphabetically tests the deterministic order for equal PnL
func TestBySymbol_TieBreaksAlphabetically(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	trades := []types.Trade{
		{Timestamp: base, Symbol: "ETHUSDT", TradeAmount: 100, PnL: 10},
		{Timestamp: base, Symbol: "BTCUSDT", TradeAmount: 100, PnL: 10},
	}

	stats := BySymbol(trades)

	assert.Equal(t, "BTCUSDT", stats[0].Symbol)
	assert.Equal(t, "ETHUSDT", stats[1].Symbol)
}

// TestBySymbol_Empty tests the empty history case
func TestBySymbol_Empty(t *testing.T) {
	assert.Empty(t, BySymbol(nil))
}
