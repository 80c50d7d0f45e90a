package reporting

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantlab/trade-analyzer/internal/analytics"
	"github.com/quantlab/trade-analyzer/internal/risk"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputMetrics prints the performance summary to console
func (r *DefaultConsoleReporter) OutputMetrics(metrics analytics.Metrics) {
	r.OutputMetricsWithContext(metrics, "", "")
}

// OutputMetricsWithContext prints the performance summary with symbol and
// period context in the title
func (r *DefaultConsoleReporter) OutputMetricsWithContext(metrics analytics.Metrics, symbol, period string) {
	title := "PERFORMANCE SUMMARY"
	if symbol != "" {
		title = fmt.Sprintf("PERFORMANCE SUMMARY - %s", strings.ToUpper(symbol))
	}
	if period != "" {
		title += fmt.Sprintf(" (%s)", period)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🔄 Total Trades", fmt.Sprintf("%d", metrics.TotalTrades)},
		{"✅ Winning Trades", fmt.Sprintf("%d", metrics.WinningTrades)},
		{"❌ Losing Trades", fmt.Sprintf("%d", metrics.LosingTrades)},
		{"🎯 Win Rate", fmt.Sprintf("%.2f%%", metrics.WinRate)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"💰 Total PnL", fmt.Sprintf("$%.2f", metrics.TotalPnL)},
		{"💸 Total Fees", fmt.Sprintf("$%.2f", metrics.TotalFees)},
		{"💰 Net PnL", fmt.Sprintf("$%.2f", metrics.NetPnL)},
		{"📈 Total Return", fmt.Sprintf("%.2f%%", metrics.TotalReturnPct)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"📈 Avg Win", fmt.Sprintf("$%.2f", metrics.AvgWin)},
		{"📉 Avg Loss", fmt.Sprintf("$%.2f", metrics.AvgLoss)},
		{"💹 Profit Factor", fmt.Sprintf("%.2f", metrics.ProfitFactor)},
		{"🔥 Max Win Streak", fmt.Sprintf("%d", metrics.ConsecutiveWins)},
		{"🧊 Max Loss Streak", fmt.Sprintf("%d", metrics.ConsecutiveLosses)},
		{"📉 Max Drawdown", fmt.Sprintf("%.2f%%", metrics.MaxDrawdown)},
		{"📊 Sharpe Ratio", fmt.Sprintf("%.2f", metrics.SharpeRatio)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 20, WidthMax: 20, Align: text.AlignLeft},
		{Number: 2, WidthMin: 15, WidthMax: 25, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// OutputSymbolBreakdown prints per-symbol performance to console
func (r *DefaultConsoleReporter) OutputSymbolBreakdown(stats []analytics.SymbolStats) {
	if len(stats) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SYMBOL BREAKDOWN")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Symbol", "Trades", "Total PnL", "Avg PnL", "Volume"})
	for _, s := range stats {
		t.AppendRow(table.Row{
			s.Symbol,
			s.TradeCount,
			fmt.Sprintf("$%.2f", s.TotalPnL),
			fmt.Sprintf("$%.2f", s.AvgPnL),
			fmt.Sprintf("$%.2f", s.TotalVolume),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// OutputDailyReport prints a single-day summary to console
func (r *DefaultConsoleReporter) OutputDailyReport(report analytics.DailyReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("DAILY REPORT - %s", report.Date))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🔄 Trades", fmt.Sprintf("%d", report.TotalTrades)},
		{"🎯 Win Rate", fmt.Sprintf("%.2f%%", report.WinRate)},
		{"💰 Total PnL", fmt.Sprintf("$%.2f", report.TotalPnL)},
		{"💸 Total Fees", fmt.Sprintf("$%.2f", report.TotalFees)},
		{"📊 Volume", fmt.Sprintf("$%.2f", report.TotalVolume)},
	})

	if report.TotalTrades > 0 {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"🏆 Best Trade", fmt.Sprintf("%s $%.2f", report.BestTrade.Symbol, report.BestTrade.PnL)},
			{"💀 Worst Trade", fmt.Sprintf("%s $%.2f", report.WorstTrade.Symbol, report.WorstTrade.PnL)},
			{"📊 Symbols", strings.Join(report.SymbolsTraded, ", ")},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 40, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// OutputWarnings prints active position warnings to console
func (r *DefaultConsoleReporter) OutputWarnings(warnings risk.PositionWarnings) {
	if !warnings.Any() {
		fmt.Println("✅ No position warnings")
		return
	}

	fmt.Println("⚠️  POSITION WARNINGS:")
	if warnings.HighLeverage {
		fmt.Println("  ⚠️  Leverage exceeds the recommended maximum")
	}
	if warnings.LargePosition {
		fmt.Println("  ⚠️  Position size exceeds the tier limit for this leverage")
	}
	if warnings.HighMarginRatio {
		fmt.Println("  ⚠️  Margin ratio is approaching dangerous levels")
	}
	if warnings.NearLiquidation {
		fmt.Println("  ⚠️  Price is close to the liquidation level")
	}
}

// OutputEmergency prints triggered emergency conditions to console
func (r *DefaultConsoleReporter) OutputEmergency(conditions risk.EmergencyConditions) {
	if !conditions.Any() {
		fmt.Println("✅ No emergency conditions triggered")
		return
	}

	fmt.Println("🚨 EMERGENCY CONDITIONS:")
	if conditions.MaxDailyLossReached {
		fmt.Println("  🚨 Daily loss limit reached, trading should stop")
	}
	if conditions.MarginRatioCritical {
		fmt.Println("  🚨 Margin ratio at critical level")
	}
	if conditions.LiquidationImminent {
		fmt.Println("  🚨 Liquidation imminent, reduce exposure now")
	}
	if conditions.AccountBalanceLow {
		fmt.Println("  🚨 Account balance below the minimum threshold")
	}
}

// Package-level convenience function
func OutputConsole(metrics analytics.Metrics) {
	reporter := NewDefaultConsoleReporter()
	reporter.OutputMetrics(metrics)
}
