package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestCSVProvider_LoadTrades tests parsing a well-formed history file
func TestCSVProvider_LoadTrades(t *testing.T) {
	path := writeTempCSV(t, `timestamp,symbol,trade_amount,pnl,pnl_percentage,fees
2026-08-01 10:00:00,BTCUSDT,500.0,50.0,10.0,0.5
2026-08-01 14:00:00,ETHUSDT,200.0,-20.0,-10.0,0.2
2026-08-02 09:30:00,BTCUSDT,300.0,15.0,5.0,0.3
`)

	provider := NewCSVProvider()
	trades, err := provider.LoadTrades(path)

	require.NoError(t, err)
	require.Len(t, trades, 3)
	assert.Equal(t, "BTCUSDT", trades[0].Symbol)
	assert.Equal(t, 500.0, trades[0].TradeAmount)
	assert.Equal(t, 50.0, trades[0].PnL)
	assert.Equal(t, 10.0, trades[0].PnLPercentage)
	assert.Equal(t, 0.5, trades[0].Fees)
	assert.Equal(t, "2026-08-01 10:00:00", trades[0].Timestamp.Format("2006-01-02 15:04:05"))

	assert.NoError(t, provider.ValidateTrades(trades))
}

// TestCSVProvider_SkipsMalformedRows tests that bad rows are dropped, not fatal
func TestCSVProvider_SkipsMalformedRows(t *testing.T) {
	path := writeTempCSV(t, `timestamp,symbol,trade_amount,pnl,pnl_percentage,fees
2026-08-01 10:00:00,BTCUSDT,500.0,50.0,10.0,0.5
not-a-date,BTCUSDT,500.0,50.0,10.0,0.5
2026-08-01 12:00:00,BTCUSDT,bogus,50.0,10.0,0.5
2026-08-01 13:00:00,BTCUSDT,-10.0,50.0,10.0,0.5
2026-08-01 14:00:00,BTCUSDT,500.0,50.0,10.0,-0.5
2026-08-01 15:00:00,ETHUSDT,200.0,-20.0,-10.0,0.2
`)

	provider := NewCSVProvider()
	trades, err := provider.LoadTrades(path)

	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "BTCUSDT", trades[0].Symbol)
	assert.Equal(t, "ETHUSDT", trades[1].Symbol)
}

// TestCSVProvider_MissingFileFallsBack tests the sample data fallback
func TestCSVProvider_MissingFileFallsBack(t *testing.T) {
	provider := NewCSVProvider()
	trades, err := provider.LoadTrades(filepath.Join(t.TempDir(), "nope.csv"))

	require.NoError(t, err)
	assert.Len(t, trades, DefaultSampleOptions().Count)
	assert.NoError(t, provider.ValidateTrades(trades))
}

// TestValidateTrades_OutOfOrder tests the shared chronological check
func TestValidateTrades_OutOfOrder(t *testing.T) {
	path := writeTempCSV(t, `timestamp,symbol,trade_amount,pnl,pnl_percentage,fees
2026-08-02 10:00:00,BTCUSDT,500.0,50.0,10.0,0.5
2026-08-01 10:00:00,BTCUSDT,500.0,50.0,10.0,0.5
`)

	provider := NewCSVProvider()
	trades, err := provider.LoadTrades(path)

	require.NoError(t, err)
	assert.Error(t, provider.ValidateTrades(trades))
}
