package analytics

import (
	"sort"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// SymbolStats aggregates performance for one traded instrument.
type SymbolStats struct {
	Symbol      string  `json:"symbol"`
	TotalPnL    float64 `json:"total_pnl"`
	AvgPnL      float64 `json:"avg_pnl"`
	TradeCount  int     `json:"trade_count"`
	TotalVolume float64 `json:"total_volume"`
}

// BySymbol groups trades per symbol and returns the per-symbol totals sorted
// by descending total PnL (ties broken alphabetically for stable output).
func BySymbol(trades []types.Trade) []SymbolStats {
	bySym := make(map[string]*SymbolStats)
	for _, t := range trades {
		s, ok := bySym[t.Symbol]
		if !ok {
			s = &SymbolStats{Symbol: t.Symbol}
			bySym[t.Symbol] = s
		}
		s.TotalPnL += t.PnL
		s.TotalVolume += t.TradeAmount
		s.TradeCount++
	}

	stats := make([]SymbolStats, 0, len(bySym))
	for _, s := range bySym {
		s.AvgPnL = s.TotalPnL / float64(s.TradeCount)
		stats = append(stats, *s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalPnL != stats[j].TotalPnL {
			return stats[i].TotalPnL > stats[j].TotalPnL
		}
		return stats[i].Symbol < stats[j].Symbol
	})

	return stats
}
