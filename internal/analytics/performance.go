package analytics

import (
	"math"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// tradingDaysPerYear is the annualization factor for the daily Sharpe ratio.
const tradingDaysPerYear = 252

// Metrics holds the aggregate performance statistics for a trade history.
type Metrics struct {
	TotalTrades       int     `json:"total_trades"`
	WinningTrades     int     `json:"winning_trades"`
	LosingTrades      int     `json:"losing_trades"`
	TotalPnL          float64 `json:"total_pnl"`
	TotalFees         float64 `json:"total_fees"`
	NetPnL            float64 `json:"net_pnl"`
	TotalReturnPct    float64 `json:"total_return_pct"`
	WinRate           float64 `json:"win_rate"`
	AvgWin            float64 `json:"avg_win"`
	AvgLoss           float64 `json:"avg_loss"`
	ProfitFactor      float64 `json:"profit_factor"`
	ConsecutiveWins   int     `json:"consecutive_wins"`
	ConsecutiveLosses int     `json:"consecutive_losses"`
	MaxDrawdown       float64 `json:"max_drawdown"`
	SharpeRatio       float64 `json:"sharpe_ratio"`
}

// Compute derives aggregate performance metrics from a chronologically ordered
// trade history. initialCapital is the capital base for return and drawdown
// percentages. The input is never mutated, and every degenerate case (empty
// history, zero variance, zero denominator) yields a zero value instead of an
// error.
func Compute(trades []types.Trade, initialCapital float64) Metrics {
	var m Metrics

	if len(trades) == 0 {
		return m
	}

	var winSum, lossSum float64
	for _, t := range trades {
		m.TotalTrades++
		m.TotalPnL += t.PnL
		m.TotalFees += t.Fees
		if t.IsWin() {
			m.WinningTrades++
			winSum += t.PnL
		} else {
			m.LosingTrades++
			lossSum += t.PnL
		}
	}

	m.NetPnL = m.TotalPnL - m.TotalFees
	if initialCapital > 0 {
		m.TotalReturnPct = m.NetPnL / initialCapital * 100
	}
	m.WinRate = float64(m.WinningTrades) / float64(m.TotalTrades) * 100

	if m.WinningTrades > 0 {
		m.AvgWin = winSum / float64(m.WinningTrades)
	}
	if m.LosingTrades > 0 {
		m.AvgLoss = lossSum / float64(m.LosingTrades)
	}
	if m.AvgLoss != 0 {
		m.ProfitFactor = math.Abs(m.AvgWin / m.AvgLoss)
	}

	m.ConsecutiveWins, m.ConsecutiveLosses = longestStreaks(trades)
	m.MaxDrawdown = maxDrawdown(trades, initialCapital)
	m.SharpeRatio = sharpeRatio(trades)

	return m
}

// longestStreaks returns the longest run of consecutive wins and the longest
// run of consecutive losses in trade order.
func longestStreaks(trades []types.Trade) (maxWins, maxLosses int) {
	var wins, losses int
	for _, t := range trades {
		if t.IsWin() {
			wins++
			losses = 0
		} else {
			losses++
			wins = 0
		}
		if wins > maxWins {
			maxWins = wins
		}
		if losses > maxLosses {
			maxLosses = losses
		}
	}
	return maxWins, maxLosses
}

// maxDrawdown walks the cumulative-return curve and returns the deepest gap
// below its running peak, in percent of initial capital. The result is always
// ≤ 0; it is 0 when the curve never dips under its own peak.
func maxDrawdown(trades []types.Trade, initialCapital float64) float64 {
	if initialCapital <= 0 {
		return 0
	}

	var cumPnL, maxDD float64
	peak := math.Inf(-1)
	for _, t := range trades {
		cumPnL += t.PnL
		cumReturn := cumPnL / initialCapital * 100
		if cumReturn > peak {
			peak = cumReturn
		}
		if dd := cumReturn - peak; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// sharpeRatio computes the annualized Sharpe ratio over daily PnL sums.
// Returns 0 when fewer than two distinct trading days exist or the daily
// returns have zero variance.
func sharpeRatio(trades []types.Trade) float64 {
	daily := make(map[string]float64)
	var order []string
	for _, t := range trades {
		day := t.Timestamp.Format("2006-01-02")
		if _, seen := daily[day]; !seen {
			order = append(order, day)
		}
		daily[day] += t.PnL
	}

	if len(order) < 2 {
		return 0
	}

	mean := 0.0
	for _, day := range order {
		mean += daily[day]
	}
	mean /= float64(len(order))

	// Sample variance over the daily PnL series.
	variance := 0.0
	for _, day := range order {
		diff := daily[day] - mean
		variance += diff * diff
	}
	variance /= float64(len(order) - 1)

	stdDev := math.Sqrt(variance)
	if stdDev == 0 || stdDev < 1e-10 {
		return 0
	}

	return mean / stdDev * math.Sqrt(tradingDaysPerYear)
}
