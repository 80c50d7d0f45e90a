package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantlab/trade-analyzer/internal/analytics"
	"github.com/quantlab/trade-analyzer/pkg/types"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteTradesCSV writes the trade history plus a trailing summary row to a
// CSV file. An .xlsx path delegates to the Excel writer.
func (r *DefaultCSVReporter) WriteTradesCSV(trades []types.Trade, metrics analytics.Metrics, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteReportXLSX(trades, metrics, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Timestamp",
		"Symbol",
		"Trade_Amount",
		"PnL_$",
		"PnL_%",
		"Fees",
		"Win_Loss",
	}); err != nil {
		return err
	}

	for _, t := range trades {
		winLoss := "W"
		if !t.IsWin() {
			winLoss = "L"
		}

		row := []string{
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Symbol,
			fmt.Sprintf("%.2f", t.TradeAmount),
			fmt.Sprintf("%.2f", t.PnL),
			fmt.Sprintf("%.2f", t.PnLPercentage),
			fmt.Sprintf("%.4f", t.Fees),
			winLoss,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("SUMMARY: net_pnl=$%.2f; win_rate=%.2f%%; profit_factor=%.2f; sharpe=%.2f; total_trades=%d",
		metrics.NetPnL, metrics.WinRate, metrics.ProfitFactor, metrics.SharpeRatio, metrics.TotalTrades)

	summaryRow := make([]string, 7) // Match header count
	summaryRow[6] = summary
	return w.Write(summaryRow)
}

// Package-level convenience function
func WriteTradesCSV(trades []types.Trade, metrics analytics.Metrics, path string) error {
	reporter := NewDefaultCSVReporter()
	return reporter.WriteTradesCSV(trades, metrics, path)
}
