package analytics

import (
	"sort"
	"time"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// DailyReport summarizes the trades closed on a single calendar day.
type DailyReport struct {
	Date          string      `json:"date"`
	TotalTrades   int         `json:"total_trades"`
	WinningTrades int         `json:"winning_trades"`
	TotalPnL      float64     `json:"total_pnl"`
	TotalFees     float64     `json:"total_fees"`
	WinRate       float64     `json:"win_rate"`
	BestTrade     types.Trade `json:"best_trade"`
	WorstTrade    types.Trade `json:"worst_trade"`
	SymbolsTraded []string    `json:"symbols_traded"`
	TotalVolume   float64     `json:"total_volume"`
}

// ReportForDay builds a summary of all trades whose timestamp falls on the
// given calendar day. A day with no trades yields a zeroed report.
func ReportForDay(trades []types.Trade, day time.Time) DailyReport {
	report := DailyReport{Date: day.Format("2006-01-02")}

	symbols := make(map[string]struct{})
	first := true
	for _, t := range trades {
		if t.Timestamp.Format("2006-01-02") != report.Date {
			continue
		}

		report.TotalTrades++
		report.TotalPnL += t.PnL
		report.TotalFees += t.Fees
		report.TotalVolume += t.TradeAmount
		if t.IsWin() {
			report.WinningTrades++
		}
		symbols[t.Symbol] = struct{}{}

		if first {
			report.BestTrade = t
			report.WorstTrade = t
			first = false
			continue
		}
		if t.PnL > report.BestTrade.PnL {
			report.BestTrade = t
		}
		if t.PnL < report.WorstTrade.PnL {
			report.WorstTrade = t
		}
	}

	if report.TotalTrades > 0 {
		report.WinRate = float64(report.WinningTrades) / float64(report.TotalTrades) * 100
	}

	for s := range symbols {
		report.SymbolsTraded = append(report.SymbolsTraded, s)
	}
	sort.Strings(report.SymbolsTraded)

	return report
}
