package data

import (
	"math/rand"
	"time"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// SampleOptions controls the synthetic trade generator.
type SampleOptions struct {
	Seed    int64
	Count   int
	Start   time.Time
	Step    time.Duration
	Symbols []string
	WinRate float64
}

// DefaultSampleOptions mirrors the sample history the dashboard used for
// demos: 50 trades over 30 days, roughly 60% winners.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Seed:    42,
		Count:   50,
		Start:   time.Now().AddDate(0, 0, -30).Truncate(time.Hour),
		Step:    12 * time.Hour,
		Symbols: []string{"BTCUSDT", "ETHUSDT", "ADAUSDT", "DOTUSDT", "LINKUSDT"},
		WinRate: 0.6,
	}
}

// GenerateSampleTrades builds a deterministic synthetic trade history for the
// given options. Winners average +2.5% returns, losers -1.8%, with notional
// sizes between 10 and 100 and a 0.1% fee.
func GenerateSampleTrades(opts SampleOptions) []types.Trade {
	rng := rand.New(rand.NewSource(opts.Seed))

	trades := make([]types.Trade, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		timestamp := opts.Start.Add(time.Duration(i) * opts.Step)
		symbol := opts.Symbols[rng.Intn(len(opts.Symbols))]

		var pnlPct float64
		if rng.Float64() < opts.WinRate {
			pnlPct = rng.NormFloat64()*1.5 + 2.5
		} else {
			pnlPct = rng.NormFloat64()*1.0 - 1.8
		}

		amount := 10 + rng.Float64()*90
		trades = append(trades, types.Trade{
			Timestamp:     timestamp,
			Symbol:        symbol,
			TradeAmount:   amount,
			PnL:           amount * pnlPct / 100,
			PnLPercentage: pnlPct,
			Fees:          amount * 0.001,
		})
	}

	return trades
}
