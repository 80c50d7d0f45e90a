package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrade_IsWin tests that only a strictly positive PnL is a win
func TestTrade_IsWin(t *testing.T) {
	assert.True(t, Trade{PnL: 0.01}.IsWin())
	assert.False(t, Trade{PnL: 0}.IsWin())
	assert.False(t, Trade{PnL: -0.01}.IsWin())
}

// TestTrade_NetPnL tests the fee-adjusted PnL
func TestTrade_NetPnL(t *testing.T) {
	assert.Equal(t, 9.5, Trade{PnL: 10, Fees: 0.5}.NetPnL())
	assert.Equal(t, -10.5, Trade{PnL: -10, Fees: 0.5}.NetPnL())
}

// TestTrade_JSONShape tests that trades serialize with snake_case keys
func TestTrade_JSONShape(t *testing.T) {
	trade := Trade{
		Timestamp:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Symbol:        "BTCUSDT",
		TradeAmount:   500,
		PnL:           50,
		PnLPercentage: 10,
		Fees:          0.5,
	}

	raw, err := json.Marshal(trade)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, key := range []string{"timestamp", "symbol", "trade_amount", "pnl", "pnl_percentage", "fees"} {
		assert.Contains(t, keys, key)
	}
	assert.NotContains(t, keys, "TradeAmount")
}
