package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantlab/trade-analyzer/internal/risk"
)

// Registered once; a second NewPositionFlags call would panic on redefinition.
var defaultFlags = NewPositionFlags()

// TestDefaults_NoSpuriousEmergency tests that a run omitting the account
// flags does not trip any emergency condition
func TestDefaults_NoSpuriousEmergency(t *testing.T) {
	assert.Equal(t, 1000.0, *defaultFlags.AccountBalance)
	assert.Equal(t, 0.0, *defaultFlags.DailyPnLPct)
	assert.Equal(t, 0.0, *defaultFlags.LiquidationPrice)

	e := risk.NewEvaluator(risk.DefaultConfig())

	// Unknown liquidation price reads as fully safe
	liqDistance := e.LiquidationDistance(50000, *defaultFlags.LiquidationPrice, risk.SideLong)
	assert.Equal(t, 100.0, liqDistance)

	conditions := e.CheckEmergency(*defaultFlags.DailyPnLPct, *defaultFlags.MarginRatio,
		liqDistance, *defaultFlags.AccountBalance)
	assert.False(t, conditions.Any())
	assert.False(t, conditions.AccountBalanceLow)
}

// TestValidatePositionFlags_Defaults tests that only the entry price is required
func TestValidatePositionFlags_Defaults(t *testing.T) {
	// Defaults alone fail: an entry price must be supplied
	assert.Error(t, ValidatePositionFlags(defaultFlags))

	entry := 50000.0
	flags := *defaultFlags
	flags.EntryPrice = &entry
	assert.NoError(t, ValidatePositionFlags(&flags))
}
