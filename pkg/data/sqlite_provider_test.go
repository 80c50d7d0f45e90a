package data

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// TestSQLiteProvider_RoundTrip tests saving and reloading a history
func TestSQLiteProvider_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.db")
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	saved := []types.Trade{
		{Timestamp: base, Symbol: "BTCUSDT", TradeAmount: 500, PnL: 50, PnLPercentage: 10, Fees: 0.5},
		{Timestamp: base.Add(4 * time.Hour), Symbol: "ETHUSDT", TradeAmount: 200, PnL: -20, PnLPercentage: -10, Fees: 0.2},
	}

	provider := NewSQLiteProvider()
	require.NoError(t, provider.SaveTrades(path, saved))

	loaded, err := provider.LoadTrades(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "BTCUSDT", loaded[0].Symbol)
	assert.Equal(t, 500.0, loaded[0].TradeAmount)
	assert.Equal(t, 50.0, loaded[0].PnL)
	assert.True(t, loaded[0].Timestamp.Equal(base))
	assert.Equal(t, "ETHUSDT", loaded[1].Symbol)

	assert.NoError(t, provider.ValidateTrades(loaded))
}

// TestSQLiteProvider_MissingTable tests loading from a database with no trades table
func TestSQLiteProvider_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	provider := NewSQLiteProvider()
	require.NoError(t, provider.SaveTrades(path, nil)) // creates the table only

	loaded, err := provider.LoadTrades(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
