package analytics

// BacktestReference holds the headline numbers of a backtest run used as the
// baseline when judging live results.
type BacktestReference struct {
	TotalReturnPct float64 `json:"total_return"`
	SharpeRatio    float64 `json:"sharpe_ratio"`
	MaxDrawdown    float64 `json:"max_drawdown"`
	WinRate        float64 `json:"win_rate"`
	TotalTrades    int     `json:"total_trades"`
}

// FieldDiff is the gap between a live value and its backtest baseline.
// PercentDiff is 0 when the baseline is 0 (nothing meaningful to scale by).
type FieldDiff struct {
	Live        float64 `json:"live"`
	Backtest    float64 `json:"backtest"`
	Absolute    float64 `json:"absolute"`
	PercentDiff float64 `json:"percentage"`
}

// Comparison lines up live metrics against a backtest reference field by
// field.
type Comparison struct {
	TotalReturnPct FieldDiff `json:"total_return"`
	SharpeRatio    FieldDiff `json:"sharpe_ratio"`
	MaxDrawdown    FieldDiff `json:"max_drawdown"`
	WinRate        FieldDiff `json:"win_rate"`
	TotalTrades    FieldDiff `json:"total_trades"`
}

// CompareWithBacktest measures how far live performance deviates from the
// backtest it was expected to reproduce.
func CompareWithBacktest(live Metrics, ref BacktestReference) Comparison {
	return Comparison{
		TotalReturnPct: diff(live.TotalReturnPct, ref.TotalReturnPct),
		SharpeRatio:    diff(live.SharpeRatio, ref.SharpeRatio),
		MaxDrawdown:    diff(live.MaxDrawdown, ref.MaxDrawdown),
		WinRate:        diff(live.WinRate, ref.WinRate),
		TotalTrades:    diff(float64(live.TotalTrades), float64(ref.TotalTrades)),
	}
}

func diff(live, backtest float64) FieldDiff {
	d := FieldDiff{
		Live:     live,
		Backtest: backtest,
		Absolute: live - backtest,
	}
	if backtest != 0 {
		d.PercentDiff = d.Absolute / backtest * 100
	}
	return d
}
