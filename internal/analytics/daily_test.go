package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// TestReportForDay_MixedSymbols tests the single-day aggregation
func TestReportForDay_MixedSymbols(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	trades := []types.Trade{
		{Timestamp: day.Add(1 * time.Hour), Symbol: "ETHUSDT", TradeAmount: 200, PnL: -20, Fees: 0.2},
		{Timestamp: day.Add(3 * time.Hour), Symbol: "BTCUSDT", TradeAmount: 500, PnL: 50, Fees: 0.5},
		{Timestamp: day.Add(5 * time.Hour), Symbol: "BTCUSDT", TradeAmount: 300, PnL: 15, Fees: 0.3},
		// Next day, must be excluded
		{Timestamp: day.Add(26 * time.Hour), Symbol: "ADAUSDT", TradeAmount: 100, PnL: 99, Fees: 0.1},
	}

	report := ReportForDay(trades, day)

	assert.Equal(t, "2026-08-15", report.Date)
	assert.Equal(t, 3, report.TotalTrades)
	assert.Equal(t, 2, report.WinningTrades)
	assert.InDelta(t, 45.0, report.TotalPnL, 1e-9)
	assert.InDelta(t, 1.0, report.TotalFees, 1e-9)
	assert.InDelta(t, 1000.0, report.TotalVolume, 1e-9)
	assert.InDelta(t, 66.6667, report.WinRate, 1e-3)
	assert.Equal(t, 50.0, report.BestTrade.PnL)
	assert.Equal(t, -20.0, report.WorstTrade.PnL)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, report.SymbolsTraded)
}

// TestReportForDay_NoTrades tests that an empty day yields a zeroed report
func TestReportForDay_NoTrades(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	trades := []types.Trade{
		{Timestamp: day.Add(48 * time.Hour), Symbol: "BTCUSDT", TradeAmount: 100, PnL: 10},
	}

	report := ReportForDay(trades, day)

	assert.Equal(t, 0, report.TotalTrades)
	assert.Equal(t, 0.0, report.WinRate)
	assert.Empty(t, report.SymbolsTraded)
}

// TestReportForDay_SingleLoss tests that best and worst can be the same trade
func TestReportForDay_SingleLoss(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	trades := []types.Trade{
		{Timestamp: day.Add(time.Hour), Symbol: "BTCUSDT", TradeAmount: 100, PnL: -5},
	}

	report := ReportForDay(trades, day)

	assert.Equal(t, 1, report.TotalTrades)
	assert.Equal(t, 0, report.WinningTrades)
	assert.Equal(t, -5.0, report.BestTrade.PnL)
	assert.Equal(t, -5.0, report.WorstTrade.PnL)
}
